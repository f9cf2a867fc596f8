package folioscan

import "fmt"

// Percent is a display-oriented percentage value (25.0 means 25%).
type Percent float64

// WeightPercent converts a normalized weight fraction into a Percent.
func WeightPercent(weight float64) Percent { return Percent(weight * 100) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
