package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hoistdb/hoist"
	"github.com/hoistdb/hoist/schema/load"
)

func newResolveCmd() *cobra.Command {
	var (
		schemaPath string
		roots      []string
		depth      int
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the include-path set for one or more root types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := load.File(schemaPath)
			if err != nil {
				return err
			}
			if len(roots) == 1 {
				paths, err := hoist.ResolvePaths(g, roots[0], hoist.WithMaxDepth(depth))
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			}
			results, err := hoist.ResolveMany(cmd.Context(), g, roots, hoist.WithMaxDepth(depth))
			if err != nil {
				return err
			}
			names := make([]string, 0, len(results))
			for root := range results {
				names = append(names, root)
			}
			sort.Strings(names)
			for _, root := range names {
				for _, p := range results[root] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", root, p)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the schema document")
	cmd.Flags().StringArrayVarP(&roots, "root", "r", nil, "root entity type (repeatable)")
	cmd.Flags().IntVarP(&depth, "depth", "d", hoist.DefaultMaxDepth, "maximum path depth")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}
