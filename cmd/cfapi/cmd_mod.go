package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/odvcencio/cfapi/pkg/schema"
	"github.com/spf13/cobra"
)

func newModCmd(opts *globalOptions) *cobra.Command {
	var description bool
	cmd := &cobra.Command{
		Use:   "mod <mod-id>",
		Short: "Show a mod",
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

			if description {
				desc, err := client.GetModDescription(cmd.Context(), modID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), desc)
				return nil
			}

			mod, err := client.GetMod(cmd.Context(), modID)
			if err != nil {
				return err
			}
			printMod(cmd.OutOrStdout(), mod)
			return nil
		},
	}
	cmd.Flags().BoolVar(&description, "description", false, "print the HTML description")
	return cmd
}

func printMod(w io.Writer, mod *schema.Mod) {
	authors := make([]string, len(mod.Authors))
	for i, a := range mod.Authors {
		authors[i] = a.Name
	}

	fmt.Fprintf(w, "%s (%s)\n", mod.Name, mod.Slug)
	fmt.Fprintf(w, "id:        %d\n", mod.ID)
	fmt.Fprintf(w, "status:    %s\n", mod.Status)
	fmt.Fprintf(w, "downloads: %s\n", humanize.Comma(mod.DownloadCount))
	fmt.Fprintf(w, "authors:   %s\n", strings.Join(authors, ", "))
	fmt.Fprintf(w, "updated:   %s (%s)\n", mod.DateModified.Format("2006-01-02"), humanize.Time(mod.DateModified))
	fmt.Fprintf(w, "website:   %s\n", mod.Links.WebsiteURL)
	if src, ok := mod.Links.SourceURL.Get(); ok {
		fmt.Fprintf(w, "source:    %s\n", src)
	}
	if mod.AllowModDistribution != nil && !*mod.AllowModDistribution {
		fmt.Fprintln(w, "third-party downloads disabled by the author")
	}
	if mod.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", mod.Summary)
	}
}
