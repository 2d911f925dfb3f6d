package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/odvcencio/cfapi/pkg/api"
	"github.com/spf13/cobra"
)

func newDownloadCmd(opts *globalOptions) *cobra.Command {
	var (
		output   string
		noVerify bool
	)
	cmd := &cobra.Command{
		Use:   "download <mod-id> <file-id>",
		Short: "Download and verify a file",
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

			file, err := client.GetModFile(cmd.Context(), modID, fileID)
			if err != nil {
				return err
			}
			data, err := client.DownloadFile(cmd.Context(), *file)
			if err != nil {
				return err
			}
			if !noVerify {
				if err := api.VerifyFile(*file, data); err != nil {
					return err
				}
			}

			dest, err := downloadPath(output, file.FileName)
			if err != nil {
				return err
			}
			if err := writeFileAtomic(dest, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", dest, humanize.Bytes(uint64(len(data))))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file or directory (default: the file's name)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip hash and fingerprint verification")
	return cmd
}

// downloadPath resolves the destination. The service-provided name is
// reduced to its base so it cannot escape the target directory.
func downloadPath(output, fileName string) (string, error) {
	name := filepath.Base(filepath.Clean("/" + fileName))
	if name == "/" || name == "." {
		return "", fmt.Errorf("download: file has no usable name %q", fileName)
	}
	if output == "" {
		return name, nil
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, name), nil
	}
	return output, nil
}

// writeFileAtomic writes data to a temp file beside path and renames it into
// place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cfapi-download-*")
	if err != nil {
		return fmt.Errorf("write %s: tmpfile: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: chmod: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: close: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: rename: %w", path, err)
	}
	return nil
}
