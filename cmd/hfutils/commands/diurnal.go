package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/store"
)

// diurnal <dataset.csv>: average the dataset by approximate local time.
func diurnalCmd() *cobra.Command {
	var (
		out    string
		center bool
		noKeep bool
	)

	cmd := &cobra.Command{
		Use:   "diurnal <dataset.csv>",
		Short: "Compute the average diurnal cycle of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := domain.LocalTimeOptions{KeepResolution: !noKeep, Center: center}

			cycle, err := appCtx.Cycles.ComputeFile(args[0], out, opts)
			if err != nil {
				return err
			}
			if out == "" {
				return store.EncodeCycle(os.Stdout, cycle)
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV (default stdout)")
	cmd.Flags().BoolVar(&center, "center", false, "center local times within a sampling interval")
	cmd.Flags().BoolVar(&noKeep, "no-keep-resolution", false, "do not snap local times to the sampling resolution")
	return cmd
}
