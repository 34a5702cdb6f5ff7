package commands

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/watch"
)

// watch <dir>: compute diurnal cycles for dataset granules as they arrive.
func watchCmd() *cobra.Command {
	var (
		out      string
		debounce string
		center   bool
		noKeep   bool
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Process incoming dataset granules as they arrive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := out
			if outDir == "" {
				outDir = appCtx.Config.OutputDir
			}
			if outDir == "" {
				outDir = "."
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			delay := appCtx.Config.DebounceDelay()
			if debounce != "" {
				d, err := time.ParseDuration(debounce)
				if err != nil {
					return err
				}
				delay = d
			}

			opts := domain.LocalTimeOptions{KeepResolution: !noKeep, Center: center}
			handler := func(path string) error {
				stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				outPath := filepath.Join(outDir, stem+"_diurnal.csv")
				_, err := appCtx.Cycles.ComputeFile(path, outPath, opts)
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			w, err := watch.New(args[0], delay, logger, handler)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output dir (default from config, else .)")
	cmd.Flags().StringVar(&debounce, "debounce", "", "settle delay before processing, e.g. 2s")
	cmd.Flags().BoolVar(&center, "center", false, "center local times within a sampling interval")
	cmd.Flags().BoolVar(&noKeep, "no-keep-resolution", false, "do not snap local times to the sampling resolution")
	return cmd
}
