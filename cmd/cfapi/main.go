package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	apiKey     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "cfapi",
		Short:         "Query the CurseForge API and fingerprint mod files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $CFAPI_CONFIG, then $XDG_CONFIG_HOME/cfapi/config.toml)")
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "API key (overrides config and $CURSEFORGE_API_KEY)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log HTTP requests to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newFingerprintCmd())
	root.AddCommand(newMatchCmd(opts))
	root.AddCommand(newModCmd(opts))
	root.AddCommand(newFilesCmd(opts))
	root.AddCommand(newFileCmd(opts))
	root.AddCommand(newDownloadCmd(opts))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cfapi %s\n", version)
		},
	}
}

// parseID parses a positive numeric mod or file ID argument.
func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, arg)
	}
	return id, nil
}
