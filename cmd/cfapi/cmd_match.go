package main

import (
	"fmt"

	"github.com/odvcencio/cfapi/pkg/api"
	"github.com/odvcencio/cfapi/pkg/fingerprint"
	"github.com/spf13/cobra"
)

func newMatchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <file>...",
		Short: "Identify local files by fingerprint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fps := make([]fingerprint.Fingerprint, len(args))
			for i, path := range args {
				fp, err := fingerprint.ComputeFile(path)
				if err != nil {
					return err
				}
				fps[i] = fp
			}

			client, err := opts.newClient(cmd)
			if err != nil {
				return err
			}
			results, err := client.MatchFingerprints(cmd.Context(), fps)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			matched := 0
			for i, res := range results {
				if res.Kind == api.Unmatched {
					fmt.Fprintf(out, "%s\t%d\tunmatched\n", args[i], res.Fingerprint)
					continue
				}
				matched++
				fmt.Fprintf(out, "%s\t%d\t%s\tmod %d\tfile %d\t%s\n",
					args[i], res.Fingerprint, res.Kind, res.Match.ModID, res.Match.File.ID, res.Match.File.FileName)
			}
			fmt.Fprintf(out, "matched %d of %d file(s)\n", matched, len(results))
			return nil
		},
	}
}
