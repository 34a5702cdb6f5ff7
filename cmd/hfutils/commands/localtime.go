package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HF7weatherman/hfutils/internal/diurnal"
	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/timeutil"
)

// localtime: approximate the local time of a UTC instant at a longitude.
func localtimeCmd() *cobra.Command {
	var (
		timeArg    string
		lon        float64
		resolution int
		center     bool
		noKeep     bool
	)

	cmd := &cobra.Command{
		Use:   "localtime",
		Short: "Approximate the local time for a longitude",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseTimeFlag(timeArg)
			if err != nil {
				return err
			}

			opts := domain.LocalTimeOptions{KeepResolution: !noKeep, Center: center}
			local := diurnal.ApproxLocalTime(ref, lon, resolution, opts)

			fmt.Printf("local time: %s\n", local.UTC().Format(time.RFC3339))
			fmt.Printf("datestamp:  %s\n", timeutil.FileDatestamp(local))
			return nil
		},
	}

	cmd.Flags().StringVar(&timeArg, "time", "", "UTC reference time (RFC 3339 or YYYYMMDDTHHMMSSZ)")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees east")
	cmd.Flags().IntVar(&resolution, "resolution", 3600, "sampling resolution in seconds")
	cmd.Flags().BoolVar(&center, "center", false, "center the offset within a sampling interval")
	cmd.Flags().BoolVar(&noKeep, "no-keep-resolution", false, "do not snap the offset to the sampling resolution")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
