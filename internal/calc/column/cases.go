package column

import (
	"strconv"
	"strings"
)

type Case string

const (
	CaseStraight  Case = "straight"
	CaseCrooked   Case = "crooked"
	CaseEccentric Case = "eccentric"
)

// CaseFromSelector maps the menu numbers 1, 2 and 3 to a loading case.
func CaseFromSelector(n int) (Case, error) {
	switch n {
	case 1:
		return CaseStraight, nil
	case 2:
		return CaseCrooked, nil
	case 3:
		return CaseEccentric, nil
	}
	return "", &InvalidSelectionError{What: "case", Value: strconv.Itoa(n)}
}

// ParseCase accepts a case name or its menu number.
func ParseCase(s string) (Case, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return CaseFromSelector(n)
	}
	c := Case(strings.ToLower(s))
	switch c {
	case CaseStraight, CaseCrooked, CaseEccentric:
		return c, nil
	}
	return "", &InvalidSelectionError{What: "case", Value: s}
}

type Material struct {
	YieldStrength  float64 `json:"yield_strength" yaml:"yield_strength"`
	ElasticModulus float64 `json:"elastic_modulus" yaml:"elastic_modulus"`
}

func (m Material) Validate() error {
	if err := positive("yield_strength", m.YieldStrength); err != nil {
		return err
	}
	return positive("elastic_modulus", m.ElasticModulus)
}

// Loading holds end conditions and, for crooked and eccentric columns, the
// imperfection and design factor. Eccentricity is reported but never enters
// a formula.
type Loading struct {
	EndFixity          float64 `json:"end_fixity" yaml:"end_fixity"`
	Length             float64 `json:"length" yaml:"length"`
	InitialCrookedness float64 `json:"initial_crookedness,omitempty" yaml:"initial_crookedness,omitempty"`
	DesignFactor       float64 `json:"design_factor,omitempty" yaml:"design_factor,omitempty"`
	Eccentricity       float64 `json:"eccentricity,omitempty" yaml:"eccentricity,omitempty"`
}

// Input is one complete calculation request.
type Input struct {
	Case     Case         `json:"case" yaml:"case"`
	Section  CrossSection `json:"section" yaml:"section"`
	Material Material     `json:"material" yaml:"material"`
	Loading  Loading      `json:"loading" yaml:"loading"`
}

type Allowable struct {
	C1   float64 `json:"c1"`
	C2   float64 `json:"c2"`
	Load float64 `json:"load"`
}

type Evaluation struct {
	Case       Case              `json:"case"`
	Section    CrossSection      `json:"section"`
	Properties SectionProperties `json:"properties"`
	Classification
	CriticalLoad    float64    `json:"critical_load"`
	Allowable       *Allowable `json:"allowable,omitempty"`
	Eccentricity    float64    `json:"eccentricity,omitempty"`
	ApproxMaxStress float64    `json:"approx_max_stress,omitempty"`
}

// Shape is the cross-section shape the evaluation was computed for.
func (e Evaluation) Shape() Shape { return e.Section.Shape }

// Straight evaluates a concentrically loaded column.
func Straight(sec CrossSection, m Material, l Loading) (Evaluation, error) {
	if err := validate(CaseStraight, sec, m, l); err != nil {
		return Evaluation{}, err
	}
	return straight(sec, m, l)
}

// Crooked evaluates an initially bent column and its allowable load.
func Crooked(sec CrossSection, m Material, l Loading) (Evaluation, error) {
	if err := validate(CaseCrooked, sec, m, l); err != nil {
		return Evaluation{}, err
	}
	ev, err := straight(sec, m, l)
	if err != nil {
		return Evaluation{}, err
	}
	ev.Case = CaseCrooked
	if ev.Allowable, err = allowable(ev, sec, m, l); err != nil {
		return Evaluation{}, err
	}
	return ev, nil
}

// Eccentric evaluates an eccentrically loaded column. The allowable load is
// found the same way as for a crooked column; the eccentricity is echoed
// alongside the approximate maximum stress P/A.
func Eccentric(sec CrossSection, m Material, l Loading) (Evaluation, error) {
	if err := validate(CaseEccentric, sec, m, l); err != nil {
		return Evaluation{}, err
	}
	ev, err := straight(sec, m, l)
	if err != nil {
		return Evaluation{}, err
	}
	ev.Case = CaseEccentric
	if ev.Allowable, err = allowable(ev, sec, m, l); err != nil {
		return Evaluation{}, err
	}
	ev.Eccentricity = l.Eccentricity
	ev.ApproxMaxStress = ev.Allowable.Load / ev.Properties.Area
	if err := finite("approx_max_stress", ev.ApproxMaxStress); err != nil {
		return Evaluation{}, err
	}
	return ev, nil
}

// Evaluate dispatches on in.Case.
func Evaluate(in Input) (Evaluation, error) {
	switch in.Case {
	case CaseStraight:
		return Straight(in.Section, in.Material, in.Loading)
	case CaseCrooked:
		return Crooked(in.Section, in.Material, in.Loading)
	case CaseEccentric:
		return Eccentric(in.Section, in.Material, in.Loading)
	}
	return Evaluation{}, &InvalidSelectionError{What: "case", Value: string(in.Case)}
}

func straight(sec CrossSection, m Material, l Loading) (Evaluation, error) {
	props := sec.Properties()
	if err := finiteAll(
		quantity{"radius_of_gyration", props.RadiusOfGyration},
		quantity{"area", props.Area},
	); err != nil {
		return Evaluation{}, err
	}
	cls, err := Classify(l.EndFixity, l.Length, props.RadiusOfGyration, m.YieldStrength, m.ElasticModulus)
	if err != nil {
		return Evaluation{}, err
	}
	pcr := CriticalLoad(cls.Regime, props.Area, m, cls.SlendernessRatio)
	if err := finite("critical_load", pcr); err != nil {
		return Evaluation{}, err
	}
	return Evaluation{
		Case:           CaseStraight,
		Section:        sec,
		Properties:     props,
		Classification: cls,
		CriticalLoad:   pcr,
	}, nil
}

func allowable(ev Evaluation, sec CrossSection, m Material, l Loading) (*Allowable, error) {
	imperfection := ImperfectionTerm(l.InitialCrookedness, sec.halfDimension(), ev.Properties.RadiusOfGyration)
	c1, c2 := QuadraticCoefficients(m.YieldStrength, ev.Properties.Area, ev.CriticalLoad, imperfection, l.DesignFactor)
	a := &Allowable{C1: c1, C2: c2, Load: SmallerRoot(c1, c2)}
	if err := finiteAll(
		quantity{"imperfection", imperfection},
		quantity{"c1", a.C1},
		quantity{"c2", a.C2},
		quantity{"allowable_load", a.Load},
	); err != nil {
		return nil, err
	}
	return a, nil
}

type quantity struct {
	name string
	v    float64
}

func finiteAll(qs ...quantity) error {
	for _, q := range qs {
		if err := finite(q.name, q.v); err != nil {
			return err
		}
	}
	return nil
}

// validate checks only the parameters the case and shape actually consume.
func validate(c Case, sec CrossSection, m Material, l Loading) error {
	if err := sec.Validate(); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if err := positive("end_fixity", l.EndFixity); err != nil {
		return err
	}
	if err := positive("length", l.Length); err != nil {
		return err
	}
	if c == CaseStraight {
		return nil
	}
	if sec.Shape == ShapeCircular {
		if err := positive("initial_crookedness", l.InitialCrookedness); err != nil {
			return err
		}
	}
	if err := positive("design_factor", l.DesignFactor); err != nil {
		return err
	}
	if c == CaseEccentric {
		return positive("eccentricity", l.Eccentricity)
	}
	return nil
}
