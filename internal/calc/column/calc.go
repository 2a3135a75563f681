package column

import (
	"math"
)

type Regime string

const (
	RegimeLong  Regime = "long"
	RegimeShort Regime = "short"
)

// Formula names the critical-load formula used for the regime.
func (r Regime) Formula() string {
	if r == RegimeLong {
		return "Euler"
	}
	return "Johnson"
}

type Classification struct {
	SlendernessRatio float64 `json:"slenderness_ratio"`
	ColumnConstant   float64 `json:"column_constant"`
	Regime           Regime  `json:"regime"`
}

func SlendernessRatio(endFixity, length, radiusOfGyration float64) float64 {
	return (endFixity * length) / radiusOfGyration
}

func ColumnConstant(yieldStrength, elasticModulus float64) float64 {
	return math.Sqrt((2.0 * math.Pi * math.Pi * elasticModulus) / yieldStrength)
}

// SelectRegime picks Euler only when the column is strictly more slender than
// the column constant; a tie is short.
func SelectRegime(slendernessRatio, columnConstant float64) Regime {
	if slendernessRatio > columnConstant {
		return RegimeLong
	}
	return RegimeShort
}

func Classify(endFixity, length, radiusOfGyration, yieldStrength, elasticModulus float64) (Classification, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"end_fixity", endFixity},
		{"length", length},
		{"radius_of_gyration", radiusOfGyration},
		{"yield_strength", yieldStrength},
		{"elastic_modulus", elasticModulus},
	} {
		if err := positive(p.name, p.v); err != nil {
			return Classification{}, err
		}
	}
	sr := SlendernessRatio(endFixity, length, radiusOfGyration)
	if err := finite("slenderness_ratio", sr); err != nil {
		return Classification{}, err
	}
	cc := ColumnConstant(yieldStrength, elasticModulus)
	if err := finite("column_constant", cc); err != nil {
		return Classification{}, err
	}
	return Classification{
		SlendernessRatio: sr,
		ColumnConstant:   cc,
		Regime:           SelectRegime(sr, cc),
	}, nil
}

// EulerLoad: P = pi^2 E A / (KL/r)^2
func EulerLoad(elasticModulus, area, slendernessRatio float64) float64 {
	return (math.Pi * math.Pi * elasticModulus * area) / (slendernessRatio * slendernessRatio)
}

// JohnsonLoad: P = A S (1 - S (KL/r)^2 / (4 pi^2 E))
func JohnsonLoad(area, yieldStrength, slendernessRatio, elasticModulus float64) float64 {
	return (area * yieldStrength) *
		(1.0 - (yieldStrength*slendernessRatio*slendernessRatio)/(4.0*math.Pi*math.Pi*elasticModulus))
}

func CriticalLoad(regime Regime, area float64, m Material, slendernessRatio float64) float64 {
	if regime == RegimeLong {
		return EulerLoad(m.ElasticModulus, area, slendernessRatio)
	}
	return JohnsonLoad(area, m.YieldStrength, slendernessRatio, m.ElasticModulus)
}
