package column

import (
	"math"
	"strconv"
	"strings"
)

type Shape string

const (
	ShapeCircular    Shape = "circular"
	ShapeRectangular Shape = "rectangular"
)

// ShapeFromSelector maps the menu numbers 1 and 2 to a shape.
func ShapeFromSelector(n int) (Shape, error) {
	switch n {
	case 1:
		return ShapeCircular, nil
	case 2:
		return ShapeRectangular, nil
	}
	return "", &InvalidSelectionError{What: "cross section", Value: strconv.Itoa(n)}
}

// ParseShape accepts a shape name or its menu number.
func ParseShape(s string) (Shape, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return ShapeFromSelector(n)
	}
	shape := Shape(strings.ToLower(s))
	switch shape {
	case ShapeCircular, ShapeRectangular:
		return shape, nil
	}
	return "", &InvalidSelectionError{What: "cross section", Value: s}
}

// CrossSection is a circular (Diameter) or rectangular (Base, Height) section.
// Only the fields of the selected Shape are read.
type CrossSection struct {
	Shape    Shape   `json:"shape" yaml:"shape"`
	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty"`
	Base     float64 `json:"base,omitempty" yaml:"base,omitempty"`
	Height   float64 `json:"height,omitempty" yaml:"height,omitempty"`
}

func Circular(diameter float64) CrossSection {
	return CrossSection{Shape: ShapeCircular, Diameter: diameter}
}

func Rectangular(base, height float64) CrossSection {
	return CrossSection{Shape: ShapeRectangular, Base: base, Height: height}
}

type SectionProperties struct {
	RadiusOfGyration float64 `json:"radius_of_gyration"`
	Area             float64 `json:"area"`
}

func (s CrossSection) Validate() error {
	switch s.Shape {
	case ShapeCircular:
		return positive("diameter", s.Diameter)
	case ShapeRectangular:
		if err := positive("base", s.Base); err != nil {
			return err
		}
		return positive("height", s.Height)
	}
	return &InvalidSelectionError{What: "cross section", Value: string(s.Shape)}
}

// Properties derives the radius of gyration and area. The rectangular radius
// of gyration is taken about the weak axis and depends on Base only.
func (s CrossSection) Properties() SectionProperties {
	switch s.Shape {
	case ShapeCircular:
		return SectionProperties{
			RadiusOfGyration: s.Diameter / 4.0,
			Area:             math.Pi * s.Diameter * s.Diameter / 4.0,
		}
	case ShapeRectangular:
		return SectionProperties{
			RadiusOfGyration: s.Base / math.Sqrt(12.0),
			Area:             s.Base * s.Height,
		}
	}
	return SectionProperties{}
}

// halfDimension is the extreme-fibre distance used by the imperfection term.
// Rectangular sections carry no imperfection term, so it is zero for them.
func (s CrossSection) halfDimension() float64 {
	if s.Shape == ShapeCircular {
		return s.Diameter / 2.0
	}
	return 0
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &DomainError{Field: field, Value: v}
	}
	return nil
}
