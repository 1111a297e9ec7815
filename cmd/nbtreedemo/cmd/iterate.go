package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var iterateCmd = &cobra.Command{
	Use:   "iterate",
	Short: "Print the ascending snapshot of a set seeded via --seed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newDemoTree()
		if err != nil {
			return fmt.Errorf("construct set: %w", err)
		}
		if err := seedTree(tr); err != nil {
			return err
		}

		it, err := tr.NewIterator()
		if err != nil {
			return fmt.Errorf("new iterator: %w", err)
		}
		for {
			k, ok := it.Next()
			if !ok {
				break
			}
			fmt.Println(k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iterateCmd)
}
