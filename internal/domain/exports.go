package domain

import (
	interfaces "github.com/HF7weatherman/hfutils/internal/domain/interfaces"
	types "github.com/HF7weatherman/hfutils/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	VarName          = types.VarName
	SecondOfDay      = types.SecondOfDay
	NormAxis         = types.NormAxis
	Grid             = types.Grid
	Dataset          = types.Dataset
	Sample           = types.Sample
	DiurnalCycle     = types.DiurnalCycle
	Hist2D           = types.Hist2D
	LocalTimeOptions = types.LocalTimeOptions
	FetchSpec        = types.FetchSpec
	HistSpec         = types.HistSpec
)

// Constants re-exported from the types subpackage.
const (
	SecondsPerDay = types.SecondsPerDay
	NormX         = types.NormX
	NormY         = types.NormY
)

// NewGrid and FromSamples are re-exported constructors.
var (
	NewGrid     = types.NewGrid
	FromSamples = types.FromSamples
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DatasetStore  = interfaces.DatasetStore
	SampleStore   = interfaces.SampleStore
	ResultStore   = interfaces.ResultStore
	CycleService  = interfaces.CycleService
	HistService   = interfaces.HistService
	DatasetSource = interfaces.DatasetSource
	CycleExporter = interfaces.CycleExporter
)
