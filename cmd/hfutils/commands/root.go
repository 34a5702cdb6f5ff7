package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/HF7weatherman/hfutils/internal/app"
	"github.com/HF7weatherman/hfutils/internal/domain"
	"github.com/HF7weatherman/hfutils/internal/services/cycle"
	"github.com/HF7weatherman/hfutils/internal/services/hist"
	"github.com/HF7weatherman/hfutils/internal/source/influx"
	"github.com/HF7weatherman/hfutils/internal/store"
	"github.com/HF7weatherman/hfutils/internal/timeutil"
)

var (
	home       string
	configPath string
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "hfutils",
		Short: "Toolbox for climate data operations",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".hfutils")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if configPath == "" {
				configPath = filepath.Join(home, "config.yaml")
			}
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}

			fs := store.NewFileStore()
			cycles := cycle.New(fs, fs)
			hists := hist.New(fs, fs)

			var source domain.DatasetSource
			var exporter domain.CycleExporter
			if cfg.Influx.URL != "" {
				client, err := influx.NewClient(cfg.Influx)
				if err != nil {
					return err
				}
				source, exporter = client, client
			}

			appCtx = app.New(fs, fs, fs, cycles, hists, source, exporter, cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.hfutils)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")

	root.AddCommand(
		versionCmd(), infoCmd(), localtimeCmd(), diurnalCmd(),
		hist2dCmd(), fetchCmd(), exportCmd(), watchCmd(),
	)
	return root.Execute()
}

// parseTimeFlag accepts either RFC 3339 or a compact file datestamp.
func parseTimeFlag(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := timeutil.ParseFileDatestamp(s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf(
		"bad time %q (want RFC 3339 or YYYYMMDDTHHMMSSZ)", s)
}
