package heatmap

import (
	"math"

	"github.com/katalvlaran/wdt/cost"
	"github.com/katalvlaran/wdt/image"
)

// GradientCost builds a cost.Oracle whose per-pixel cost is cheapest at
// img's strongest signal and rises toward its weakest, so a weighted
// distance transform run against it prefers paths that hug the ridge of
// the heatmap rather than cutting across low-confidence territory.
//
// Complexity: O(W×H) time and memory to build the field; GetCost calls
// against the result are O(1).
func GradientCost(img *image.Image[float64]) *cost.FieldOracle {
	span := img.Span()

	maxV := math.Inf(-1)
	for i := 0; i < span; i++ {
		if v := img.At(i); v > maxV {
			maxV = v
		}
	}

	size := img.Size()
	field, _ := image.New[float64](size.Width, size.Height) // size already validated by img
	for i := 0; i < span; i++ {
		field.Set(i, 1+(maxV-img.At(i)))
	}

	return cost.NewFieldOracle(field)
}
