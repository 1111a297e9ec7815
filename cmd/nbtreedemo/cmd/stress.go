package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nbst/pkg/nbtree"
	"nbst/pkg/workload"
)

var (
	stressWorkers      int
	stressOpsPerWorker int
	stressKeySpace     int64
	stressInsertBias   float64
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Run a randomized concurrent workload and report quiescent invariants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := newDemoTree()
		if err != nil {
			return fmt.Errorf("construct set: %w", err)
		}

		result := workload.Run(tr, workload.Config{
			Workers:      stressWorkers,
			OpsPerWorker: stressOpsPerWorker,
			KeySpace:     stressKeySpace,
			InsertBias:   stressInsertBias,
		})

		fmt.Printf("inserted=%d deleted=%d final_size=%d\n", result.Inserted, result.Deleted, tr.Size())

		if err := nbtree.CheckQuiescent(tr); err != nil {
			return fmt.Errorf("quiescent invariants violated: %w", err)
		}
		fmt.Println("quiescent invariants hold")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stressCmd)
	stressCmd.Flags().IntVar(&stressWorkers, "workers", 8, "number of concurrent goroutines")
	stressCmd.Flags().IntVar(&stressOpsPerWorker, "ops", 10000, "operations per goroutine")
	stressCmd.Flags().Int64Var(&stressKeySpace, "keyspace", 1000, "keys are drawn from [0, keyspace)")
	stressCmd.Flags().Float64Var(&stressInsertBias, "insert-bias", 0.5, "probability of choosing insert over delete")
}
