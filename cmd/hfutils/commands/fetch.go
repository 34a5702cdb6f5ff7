package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/timeutil"
)

// fetch: pull a gridded variable from InfluxDB into a dataset CSV.
func fetchCmd() *cobra.Command {
	var (
		measurement string
		field       string
		start, stop string
		out         string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Pull a gridded variable from InfluxDB into a dataset CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Source == nil {
				return fmt.Errorf("no influxdb configured; set influx in %s", configPath)
			}

			startTime, err := parseTimeFlag(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			stopTime, err := parseTimeFlag(stop)
			if err != nil {
				return fmt.Errorf("--stop: %w", err)
			}
			if !startTime.Before(stopTime) {
				return fmt.Errorf("--start must be before --stop")
			}

			spec := domain.FetchSpec{
				Measurement: measurement,
				Field:       field,
				Start:       startTime,
				Stop:        stopTime,
			}
			ds, err := appCtx.Source.FetchGrid(cmd.Context(), spec)
			if err != nil {
				return err
			}

			if out == "" {
				out = fmt.Sprintf("%s_%s_%s.csv",
					measurement, field, timeutil.FileDatestamp(startTime))
			}
			if err := appCtx.Datasets.SaveDataset(out, ds); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d times, %d longitudes)\n",
				out, len(ds.Times), len(ds.Lons))
			return nil
		},
	}

	cmd.Flags().StringVar(&measurement, "measurement", "", "source measurement")
	cmd.Flags().StringVar(&field, "field", "", "field to fetch")
	cmd.Flags().StringVar(&start, "start", "", "window start (RFC 3339 or YYYYMMDDTHHMMSSZ)")
	cmd.Flags().StringVar(&stop, "stop", "", "window stop (exclusive)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV (default <measurement>_<field>_<start>.csv)")
	_ = cmd.MarkFlagRequired("measurement")
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("stop")
	return cmd
}
