package engine

import (
	"strconv"

	"github.com/lixenwraith/whale-simulator/constants"
)

// Score tracks krill eaten and deaths for the krill/death ratio
type Score struct {
	Krill  int
	Deaths int
}

// Ratio returns krill eaten per death; ok is false while the whale has never died
func (s Score) Ratio() (ratio float64, ok bool) {
	if s.Deaths == 0 {
		return 0, false
	}
	return float64(s.Krill) / float64(s.Deaths), true
}

// RatioString formats the ratio with three decimals, or infinity without deaths
func (s Score) RatioString() string {
	ratio, ok := s.Ratio()
	if !ok {
		return constants.GlyphInfinity
	}
	return strconv.FormatFloat(ratio, 'f', 3, 64)
}

// Improving reports whether krill are keeping up with deaths
func (s Score) Improving() bool {
	return s.Deaths <= s.Krill
}
