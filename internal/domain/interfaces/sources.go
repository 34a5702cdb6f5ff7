package interfaces

import (
	"context"

	domaintypes "github.com/HF7weatherman/hfutils/internal/domain/types"
)

// DatasetSource fetches a gridded variable from a remote time-series store.
type DatasetSource interface {
	FetchGrid(ctx context.Context, spec domaintypes.FetchSpec) (domaintypes.Dataset, error)
}

// CycleExporter writes a computed diurnal cycle back to a remote store.
type CycleExporter interface {
	ExportCycle(ctx context.Context, measurement string, c domaintypes.DiurnalCycle) error
}
