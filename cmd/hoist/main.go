// Command hoist resolves eager-fetch include paths for a schema document,
// generates include helpers, and runs the bookstore demonstration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hoist",
		Short:         "Eager-fetch include-path resolution for relational entity graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newResolveCmd(),
		newWatchCmd(),
		newGenCmd(),
		newDemoCmd(),
	)
	return cmd
}
