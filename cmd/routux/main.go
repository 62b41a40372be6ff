package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type globalOptions struct {
	routes  string
	verbose bool
}

// logger returns a development logger writing to stderr when verbose,
// and a no-op logger otherwise.
func (o *globalOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "routux",
		Short: "Inspect route tables",
		Long: `routux loads a YAML route table and answers questions about it:
which routes match a path, in which order their middlewares would run,
and which URL a named route produces.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.routes, "routes", "r", "routes.yaml", "Route table file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log router activity to stderr")

	rootCmd.AddCommand(
		matchCmd(opts),
		urlCmd(opts),
		versionCmd(),
	)

	return rootCmd
}
