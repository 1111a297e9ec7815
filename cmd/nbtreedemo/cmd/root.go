package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nbst/pkg/nbtree"
)

const (
	defaultSentinel1 = int64(1<<31 - 2)
	defaultSentinel2 = int64(1<<31 - 1)
)

var rootCmd = &cobra.Command{
	Use:   "nbtreedemo",
	Short: "Demonstrator for the nbst lock-free ordered set",
	Long: `nbtreedemo drives the nbst non-blocking binary search tree
through its public operations: insert, delete, contains, snapshot and
size. Every subcommand (except "serve") starts from a fresh, empty
set - the core carries no persisted state across process invocations.`,
}

var seedFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFlag, "seed", "", "comma-separated keys to insert before the subcommand's own action")
}

// seedTree inserts the keys named by --seed (if any) into tr.
func seedTree(tr interface {
	Insert(int64) (bool, error)
}) error {
	if seedFlag == "" {
		return nil
	}
	var keys []int64
	start := 0
	for i := 0; i <= len(seedFlag); i++ {
		if i == len(seedFlag) || seedFlag[i] == ',' {
			if i > start {
				var k int64
				if _, err := fmt.Sscanf(seedFlag[start:i], "%d", &k); err != nil {
					return fmt.Errorf("invalid --seed key %q: %w", seedFlag[start:i], err)
				}
				keys = append(keys, k)
			}
			start = i + 1
		}
	}
	for _, k := range keys {
		if _, err := tr.Insert(k); err != nil {
			return fmt.Errorf("seed insert(%d): %w", k, err)
		}
	}
	return nil
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newDemoTree constructs the int64-keyed set every subcommand operates
// on, using the sentinel pair spec.md's scenarios recommend for 32-bit
// user key ranges.
func newDemoTree() (*nbtree.Tree[int64], error) {
	return nbtree.New(defaultSentinel1, defaultSentinel2)
}

func parseKeys(args []string) ([]int64, error) {
	keys := make([]int64, len(args))
	for i, a := range args {
		var key int64
		if _, err := fmt.Sscanf(a, "%d", &key); err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", a, err)
		}
		keys[i] = key
	}
	return keys, nil
}
