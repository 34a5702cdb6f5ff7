package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/histogram"
	"github.com/HF7weatherman/hfutils/internal/store"
)

// hist2d <samples.csv>: bin two sample columns into a 2-D histogram.
func hist2dCmd() *cobra.Command {
	var (
		xColumn, yColumn string
		xSpec, ySpec     string
		norm             string
		out              string
	)

	cmd := &cobra.Command{
		Use:   "hist2d <samples.csv>",
		Short: "Compute a compound or conditional 2-D histogram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xEdges, err := parseEdgeSpec(xSpec)
			if err != nil {
				return fmt.Errorf("--x-edges: %w", err)
			}
			yEdges, err := parseEdgeSpec(ySpec)
			if err != nil {
				return fmt.Errorf("--y-edges: %w", err)
			}
			if norm != "" && norm != "x" && norm != "y" {
				return fmt.Errorf("--norm must be x or y, got %q", norm)
			}

			spec := domain.HistSpec{
				XColumn: xColumn,
				YColumn: yColumn,
				XEdges:  xEdges,
				YEdges:  yEdges,
				Norm:    domain.NormAxis(norm),
			}
			h, err := appCtx.Hists.ComputeFile(args[0], out, spec)
			if err != nil {
				return err
			}
			if out == "" {
				return store.EncodeHist(os.Stdout, h)
			}
			fmt.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&xColumn, "x", "", "column holding x samples")
	cmd.Flags().StringVar(&yColumn, "y", "", "column holding y samples")
	cmd.Flags().StringVar(&xSpec, "x-edges", "", "x bin edges as min:max:nbins")
	cmd.Flags().StringVar(&ySpec, "y-edges", "", "y bin edges as min:max:nbins")
	cmd.Flags().StringVar(&norm, "norm", "", "conditional normalisation axis (x or y)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output CSV (default stdout)")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
	_ = cmd.MarkFlagRequired("x-edges")
	_ = cmd.MarkFlagRequired("y-edges")
	return cmd
}

// parseEdgeSpec expands a min:max:nbins flag into linear bin edges.
func parseEdgeSpec(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("want min:max:nbins, got %q", s)
	}
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, fmt.Errorf("bad min %q", parts[0])
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("bad max %q", parts[1])
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("bad bin count %q", parts[2])
	}
	return histogram.Edges(min, max, n)
}
