package main

import (
	"github.com/spf13/cobra"

	"github.com/hoistdb/hoist"
	"github.com/hoistdb/hoist/gen"
	"github.com/hoistdb/hoist/schema/load"
)

func newGenCmd() *cobra.Command {
	var (
		schemaPath string
		outDir     string
		pkg        string
		depth      int
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate include-path helper code from a schema document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := load.File(schemaPath)
			if err != nil {
				return err
			}
			return gen.NewGenerator(g, outDir).
				WithPackage(pkg).
				WithMaxDepth(depth).
				WithWorkers(workers).
				Generate(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the schema document")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory")
	cmd.Flags().StringVar(&pkg, "pkg", "", "output package name (defaults to the directory name)")
	cmd.Flags().IntVarP(&depth, "depth", "d", hoist.DefaultMaxDepth, "maximum path depth")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (defaults to GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
