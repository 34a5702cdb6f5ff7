package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// export <cycle.csv>: push a computed diurnal cycle back to InfluxDB.
func exportCmd() *cobra.Command {
	var measurement string

	cmd := &cobra.Command{
		Use:   "export <cycle.csv>",
		Short: "Push a computed diurnal cycle back to InfluxDB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Exporter == nil {
				return fmt.Errorf("no influxdb configured; set influx in %s", configPath)
			}

			cycle, err := appCtx.Results.LoadCycle(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Exporter.ExportCycle(cmd.Context(), measurement, cycle); err != nil {
				return err
			}
			fmt.Printf("exported %d local-time keys to %s\n", len(cycle.Keys), measurement)
			return nil
		},
	}

	cmd.Flags().StringVar(&measurement, "measurement", "", "target measurement")
	_ = cmd.MarkFlagRequired("measurement")
	return cmd
}
