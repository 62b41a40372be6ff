package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func urlCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url NAME [KEY=VALUE...]",
		Short: "Build the URLs of a named route",
		Long: `Build the path, the relative URL and the absolute URL of the route
NAME from the given parameters, using the location configured in the
route table.

Examples:
  routux url home
  routux url user id=42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runURL(cmd.OutOrStdout(), opts, args[0], args[1:])
		},
	}

	return cmd
}

func runURL(w io.Writer, opts *globalOptions, name string, pairs []string) error {
	params, err := parseParams(pairs)
	if err != nil {
		return err
	}

	table, err := loadTable(opts.routes)
	if err != nil {
		return err
	}

	r, err := newRouter(table, table.Config, opts.logger(), passThrough())
	if err != nil {
		return err
	}

	path, err := r.GetPath(name, params)
	if err != nil {
		return err
	}
	url, err := r.GetURL(name, params)
	if err != nil {
		return err
	}
	full, err := r.GetFullURL(name, params)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "path:     %s\n", path)
	fmt.Fprintf(w, "url:      %s\n", url)
	fmt.Fprintf(w, "full url: %s\n", full)

	return nil
}
