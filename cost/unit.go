package cost

import "math"

// UnitOracle is the simplest cost oracle: every axial step costs 1 and
// every diagonal step costs √2, independent of the destination pixel.
// It is the oracle used by the S1–S6 scenarios of the weighted distance
// transform's correctness tests, and the same unit weight
// gridgraph.ToCoreGraph assigns its grid edges.
type UnitOracle struct{}

// GetCost returns 1 for axial directions and √2 for diagonal ones.
func (UnitOracle) GetCost(_ int, d Direction) float64 {
	if d.Diagonal() {
		return math.Sqrt2
	}

	return 1
}
