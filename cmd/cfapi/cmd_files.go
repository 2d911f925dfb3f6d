package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/odvcencio/cfapi/pkg/schema"
	"github.com/spf13/cobra"
)

func newFilesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "files <mod-id>",
		Short: "List the files of a mod, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modID, err := parseID("mod", args[0])
			if err != nil {
				return err
			}
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}
			files, err := client.GetModFiles(cmd.Context(), modID)
			if err != nil {
				return err
			}

			sort.SliceStable(files, func(i, j int) bool {
				return files[i].FileDate.After(files[j].FileDate)
			})
			renderFiles(cmd.OutOrStdout(), files)
			return nil
		},
	}
}

func newFileCmd(opts *globalOptions) *cobra.Command {
	var changelog bool
	cmd := &cobra.Command{
		Use:   "file <mod-id> <file-id>",
		Short: "Show a file of a mod",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			modID, err := parseID("mod", args[0])
			if err != nil {
				return err
			}
			fileID, err := parseID("file", args[1])
			if err != nil {
				return err
			}
			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			if changelog {
				text, err := client.GetModFileChangelog(cmd.Context(), modID, fileID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			file, err := client.GetModFile(cmd.Context(), modID, fileID)
			if err != nil {
				return err
			}
			printFile(cmd.OutOrStdout(), file)
			return nil
		},
	}
	cmd.Flags().BoolVar(&changelog, "changelog", false, "print the HTML changelog")
	return cmd
}

func renderFiles(w io.Writer, files []schema.File) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Release", "Date", "Size", "File"})
	for _, f := range files {
		t.AppendRow(table.Row{f.ID, f.ReleaseType.String(), f.FileDate.Format("2006-01-02"), humanize.Bytes(uint64(f.FileLength)), f.FileName})
	}
	t.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d file(s)", len(files))})
	t.Render()
}

func printFile(w io.Writer, f *schema.File) {
	fmt.Fprintf(w, "%s (%s)\n", f.DisplayName, f.FileName)
	fmt.Fprintf(w, "id:          %d (mod %d)\n", f.ID, f.ModID)
	fmt.Fprintf(w, "release:     %s\n", f.ReleaseType)
	fmt.Fprintf(w, "status:      %s\n", f.FileStatus)
	fmt.Fprintf(w, "date:        %s\n", f.FileDate.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "size:        %s (%d bytes)\n", humanize.Bytes(uint64(f.FileLength)), f.FileLength)
	fmt.Fprintf(w, "downloads:   %s\n", humanize.Comma(f.DownloadCount))
	fmt.Fprintf(w, "fingerprint: %d\n", f.FileFingerprint)
	for _, h := range f.Hashes {
		fmt.Fprintf(w, "%-12s %s\n", h.Algo.String()+":", h.Value)
	}
	if len(f.GameVersions) > 0 {
		fmt.Fprintf(w, "versions:    %s\n", strings.Join(f.GameVersions, ", "))
	}
	if u, ok := f.DownloadURL.Get(); ok {
		fmt.Fprintf(w, "download:    %s\n", u)
	} else {
		fmt.Fprintln(w, "download:    unavailable (third-party downloads disabled)")
	}
	for _, d := range f.Dependencies {
		fmt.Fprintf(w, "depends:     mod %d (%s)\n", d.ModID, d.RelationType)
	}
}
