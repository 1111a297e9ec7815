package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var containsCmd = &cobra.Command{
	Use:   "contains <key> [key...]",
	Short: "Test membership of one or more keys in a set seeded via --seed",
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
			present, err := tr.Contains(k)
			if err != nil {
				return fmt.Errorf("contains(%d): %w", k, err)
			}
			fmt.Printf("contains(%d) = %v\n", k, present)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(containsCmd)
}
