package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <key> [key...]",
	Short: "Delete one or more keys from a set seeded via --seed",
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
			removed, err := tr.Delete(k)
			if err != nil {
				return fmt.Errorf("delete(%d): %w", k, err)
			}
			fmt.Printf("delete(%d) = %v\n", k, removed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
