package cost

import (
	"math"

	"github.com/katalvlaran/wdt/image"
)

// FieldOracle wraps a per-destination-pixel base cost field. GetCost
// returns Base's value at dst, scaled by Diagonal for the 4 diagonal
// directions — the natural bridge from a heatmap-derived cost field
// (see package heatmap) to the wdt.Run cost.Oracle parameter.
type FieldOracle struct {
	// Base holds one non-negative cost per pixel.
	Base *image.Image[float64]

	// Diagonal scales the base cost for diagonal steps. Zero is treated
	// as the default, √2, matching UnitOracle's axial/diagonal ratio.
	Diagonal float64
}

// NewFieldOracle wraps base with the default diagonal scale factor √2.
func NewFieldOracle(base *image.Image[float64]) *FieldOracle {
	return &FieldOracle{Base: base, Diagonal: math.Sqrt2}
}

// GetCost returns Base.At(dst), scaled by Diagonal for diagonal
// directions.
func (f *FieldOracle) GetCost(dst int, d Direction) float64 {
	base := f.Base.At(dst)
	if !d.Diagonal() {
		return base
	}

	scale := f.Diagonal
	if scale == 0 {
		scale = math.Sqrt2
	}

	return base * scale
}
