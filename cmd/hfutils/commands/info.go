package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HF7weatherman/hfutils/internal/diurnal"
)

// info <dataset.csv>: summarise the dataset's axes and variables.
func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <dataset.csv>",
		Short: "Summarise a dataset CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := appCtx.Datasets.LoadDataset(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("dataset:    %s\n", ds.Name)
			fmt.Printf("times:      %d (%s .. %s)\n", len(ds.Times),
				ds.Times[0].Format(time.RFC3339),
				ds.Times[len(ds.Times)-1].Format(time.RFC3339))
			fmt.Printf("longitudes: %d (%v .. %v)\n", len(ds.Lons),
				ds.Lons[0], ds.Lons[len(ds.Lons)-1])

			if res, err := diurnal.Resolution(ds.Times); err == nil {
				fmt.Printf("resolution: %ds\n", res)
			} else {
				fmt.Println("resolution: uneven")
			}

			for _, name := range ds.VarNames() {
				fmt.Printf("variable:   %s\n", name)
			}
			return nil
		},
	}
}
