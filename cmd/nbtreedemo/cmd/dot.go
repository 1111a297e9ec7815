package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nbst/pkg/dot"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Print a set seeded via --seed as a Graphviz DOT digraph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newDemoTree()
		if err != nil {
			return fmt.Errorf("construct set: %w", err)
		}
		if err := seedTree(tr); err != nil {
			return err
		}

		return dot.Write[int64](os.Stdout, tr)
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)
}
