package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var insertCmd = &cobra.Command{
	Use:   "insert <key> [key...]",
	Short: "Insert one or more keys, in order, into a set seeded via --seed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := parseKeys(args)
		if err != nil {
			return err
		}

		tr, err := newDemoTree()
		if err != nil {
			return fmt.Errorf("construct set: %w", err)
		}
		if err := seedTree(tr); err != nil {
			return err
		}

		for _, k := range keys {
			added, err := tr.Insert(k)
			if err != nil {
				return fmt.Errorf("insert(%d): %w", k, err)
			}
			fmt.Printf("insert(%d) = %v\n", k, added)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insertCmd)
}
