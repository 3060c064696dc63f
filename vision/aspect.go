package vision

import (
	"fmt"
	"math"
)

// Custom is the label for ratios that match no table entry.
const Custom = "custom"

// DefaultTolerance is the maximum ratio distance for a match.
const DefaultTolerance = 0.08

// AspectRatio is one named entry of the classification table.
type AspectRatio struct {
	Label string
	W, H  int
}

// Ratio returns W/H.
func (a AspectRatio) Ratio() float64 {
	return float64(a.W) / float64(a.H)
}

// AspectRatios is the classification table: landscape ratios and their
// portrait inverses.
var AspectRatios = []AspectRatio{
	{"1:1", 1, 1},
	{"5:4", 5, 4},
	{"4:3", 4, 3},
	{"3:2", 3, 2},
	{"16:10", 16, 10},
	{"16:9", 16, 9},
	{"2:1", 2, 1},
	{"21:9", 21, 9},
	{"4:5", 4, 5},
	{"3:4", 3, 4},
	{"2:3", 2, 3},
	{"10:16", 10, 16},
	{"9:16", 9, 16},
	{"1:2", 1, 2},
	{"9:21", 9, 21},
}

// Classification is the result of ClassifyAspectRatio.
type Classification struct {
	Label string  `json:"label"`
	Ratio float64 `json:"ratio"`
}

// ClassifyAspectRatio labels width/height with the nearest table entry, or
// Custom when the nearest entry is further than tolerance away. A negative
// tolerance uses DefaultTolerance.
func ClassifyAspectRatio(width, height int, tolerance float64) (Classification, error) {
	if width <= 0 || height <= 0 {
		return Classification{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if tolerance < 0 {
		tolerance = DefaultTolerance
	}

	ratio := float64(width) / float64(height)
	best, bestDiff := Custom, math.Inf(1)
	for _, ar := range AspectRatios {
		if d := math.Abs(ratio - ar.Ratio()); d < bestDiff {
			best, bestDiff = ar.Label, d
		}
	}
	if bestDiff > tolerance {
		best = Custom
	}
	return Classification{Label: best, Ratio: ratio}, nil
}
