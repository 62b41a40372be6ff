package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vitalvas/routux/router"
)

func matchCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match PATH",
		Short: "List the routes matching a path",
		Long: `List the routes of the route table matching PATH, in the order
their middlewares run, with the parameters each route captured.

Examples:
  routux match /users/42
  routux match --routes app.yaml "/search?q=go"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd.OutOrStdout(), opts, args[0])
		},
	}

	return cmd
}

func runMatch(w io.Writer, opts *globalOptions, path string) error {
	table, err := loadTable(opts.routes)
	if err != nil {
		return err
	}

	cfg := table.Config
	cfg.Location.Adapter = "memory"
	cfg.Location.Options.Initial = path

	var order []*router.Route
	record := router.Handler(func(req *router.Request, next router.Next) {
		order = append(order, req.Route())
		next(nil)
	})

	r, err := newRouter(table, cfg, opts.logger(), record)
	if err != nil {
		return err
	}
	r.Run()

	if len(order) == 0 {
		return fmt.Errorf("no route matches %q", r.Current())
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tPATTERN\tPARAMS")
	for _, route := range order {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", route.Name(), route.Pattern(), formatParams(route.Params()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if q := r.Request().Query; len(q) > 0 {
		fmt.Fprintf(w, "\nquery: %s\n", q.Encode())
	}

	return nil
}
