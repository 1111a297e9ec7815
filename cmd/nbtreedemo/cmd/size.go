package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Report the approximate cardinality of a set seeded via --seed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newDemoTree()
		if err != nil {
			return fmt.Errorf("construct set: %w", err)
		}
		if err := seedTree(tr); err != nil {
			return err
		}

		fmt.Println(tr.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
