package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hoistdb/hoist"
	"github.com/hoistdb/hoist/schema/load"
)

func newWatchCmd() *cobra.Command {
	var (
		schemaPath string
		root       string
		depth      int
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve the include-path set whenever the schema document changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			reprint := func() {
				g, err := load.File(schemaPath)
				if err != nil {
					log.Warn("schema reload failed", zap.Error(err))
					return
				}
				paths, err := hoist.ResolvePaths(g, root, hoist.WithMaxDepth(depth))
				if err != nil {
					log.Warn("resolution failed", zap.Error(err))
					return
				}
				for _, p := range paths {
					fmt.Fprintln(cmd.OutOrStdout(), p)
				}
			}
			reprint()

			w, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer w.Close()
			// Watch the directory: editors typically replace the file,
			// which drops a watch registered on the file itself.
			if err := w.Add(filepath.Dir(schemaPath)); err != nil {
				return err
			}
			target := filepath.Clean(schemaPath)
			log.Info("watching schema document", zap.String("path", target))
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case ev, ok := <-w.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(ev.Name) != target {
						continue
					}
					if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
						log.Info("schema changed", zap.String("op", ev.Op.String()))
						reprint()
					}
				case err, ok := <-w.Errors:
					if !ok {
						return nil
					}
					log.Warn("watch error", zap.Error(err))
				}
			}
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to the schema document")
	cmd.Flags().StringVarP(&root, "root", "r", "", "root entity type")
	cmd.Flags().IntVarP(&depth, "depth", "d", hoist.DefaultMaxDepth, "maximum path depth")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}
