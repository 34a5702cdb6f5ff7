package app

import "github.com/HF7weatherman/hfutils/internal/domain"

// App bundles the dependencies shared by all subcommands. Source and
// Exporter are nil when no InfluxDB instance is configured.
type App struct {
	Datasets domain.DatasetStore
	Samples  domain.SampleStore
	Results  domain.ResultStore
	Cycles   domain.CycleService
	Hists    domain.HistService
	Source   domain.DatasetSource
	Exporter domain.CycleExporter
	Config   Config
}

// New assembles an App from its parts.
func New(
	datasets domain.DatasetStore,
	samples domain.SampleStore,
	results domain.ResultStore,
	cycles domain.CycleService,
	hists domain.HistService,
	source domain.DatasetSource,
	exporter domain.CycleExporter,
	cfg Config,
) *App {
	return &App{
		Datasets: datasets,
		Samples:  samples,
		Results:  results,
		Cycles:   cycles,
		Hists:    hists,
		Source:   source,
		Exporter: exporter,
		Config:   cfg,
	}
}
