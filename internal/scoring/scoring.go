// Package scoring maps heterogeneous provider score scales to a canonical
// 0-100 score and a letter grade.
package scoring

import (
	"fmt"
	"math"
	"sort"
)

// Normalize maps a raw provider score onto the canonical 0-100 scale.
// Values in [0,10] are treated as a ten-point scale and multiplied by 10;
// everything else is treated as already canonical and clamped to [0,100].
// A genuine "7 out of 100" is therefore rescaled to 70; that ambiguity is
// accepted rather than guessed at.
func Normalize(raw float64) int {
	if math.IsNaN(raw) {
		return 0
	}
	if raw >= 0 && raw <= 10 {
		raw *= 10
	}
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return int(math.Round(raw))
}

// Band maps every canonical score at or above Min to Label, until a higher
// band takes over.
type Band struct {
	Min   int
	Label string
}

// Scale is a total, monotonic mapping from canonical scores to grade labels.
// The zero value is not usable; construct with NewScale or DefaultScale.
type Scale struct {
	bands []Band // sorted by Min descending
}

// DefaultScale returns the standard A-F grading thresholds.
func DefaultScale() Scale {
	s, err := NewScale([]Band{
		{Min: 90, Label: "A"},
		{Min: 75, Label: "B"},
		{Min: 60, Label: "C"},
		{Min: 40, Label: "D"},
		{Min: 0, Label: "F"},
	})
	if err != nil {
		panic(fmt.Sprintf("default grade scale invalid: %v", err))
	}
	return s
}

// NewScale builds a Scale from bands. The bands must be total (some band
// must have Min 0 so every score in [0,100] maps to exactly one label) and
// have distinct thresholds within [0,100].
func NewScale(bands []Band) (Scale, error) {
	if len(bands) == 0 {
		return Scale{}, fmt.Errorf("grade scale requires at least one band")
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min > sorted[j].Min })

	seen := make(map[int]bool, len(sorted))
	for _, b := range sorted {
		if b.Min < 0 || b.Min > 100 {
			return Scale{}, fmt.Errorf("band %q threshold %d outside [0,100]", b.Label, b.Min)
		}
		if b.Label == "" {
			return Scale{}, fmt.Errorf("band with threshold %d has empty label", b.Min)
		}
		if seen[b.Min] {
			return Scale{}, fmt.Errorf("duplicate band threshold %d", b.Min)
		}
		seen[b.Min] = true
	}

	if sorted[len(sorted)-1].Min != 0 {
		return Scale{}, fmt.Errorf("grade scale is not total: lowest band starts at %d, not 0", sorted[len(sorted)-1].Min)
	}

	return Scale{bands: sorted}, nil
}

// Grade returns the label of the band containing score. Scores outside
// [0,100] are clamped first, so Grade is total over all integers.
func (s Scale) Grade(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	for _, b := range s.bands {
		if score >= b.Min {
			return b.Label
		}
	}
	// Unreachable: NewScale guarantees a band with Min 0.
	return s.bands[len(s.bands)-1].Label
}

// Labels returns the grade labels from best to worst.
func (s Scale) Labels() []string {
	labels := make([]string, len(s.bands))
	for i, b := range s.bands {
		labels[i] = b.Label
	}
	return labels
}
