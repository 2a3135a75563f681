// Package report renders column evaluations as fixed-precision text and PDF.
package report

import (
	"fmt"
	"io"

	column "ColumnSolver/internal/calc/column"
)

// Line is one row of a report. Sentence rows have no value.
type Line struct {
	Label    string
	Value    float64
	Suffix   string
	Sentence bool
}

func (l Line) String() string {
	if l.Sentence {
		return l.Label
	}
	return fmt.Sprintf("%s: %.6f%s", l.Label, l.Value, l.Suffix)
}

// RegimeSentence describes which formula the regime calls for.
func RegimeSentence(r column.Regime) string {
	if r == column.RegimeLong {
		return "The column is long, so use Euler's formula."
	}
	return "The column is short, so use Johnson's formula."
}

// Lines lists the report rows in display order.
func Lines(ev column.Evaluation) []Line {
	lines := []Line{
		{Label: "Radius of gyration", Value: ev.Properties.RadiusOfGyration},
		{Label: "Area", Value: ev.Properties.Area},
		{Label: "Slenderness ratio", Value: ev.SlendernessRatio},
		{Label: "Column constant", Value: ev.ColumnConstant},
	}
	if ev.Case == column.CaseEccentric {
		lines = append(lines, Line{Label: "Eccentricity", Value: ev.Eccentricity})
	}
	lines = append(lines,
		Line{Label: RegimeSentence(ev.Regime), Sentence: true},
		Line{Label: fmt.Sprintf("Critical Load (%s)", ev.Regime.Formula()), Value: ev.CriticalLoad},
	)
	if ev.Allowable != nil {
		lines = append(lines,
			Line{Label: "C1", Value: ev.Allowable.C1},
			Line{Label: "C2", Value: ev.Allowable.C2},
			Line{Label: "Allowable Load", Value: ev.Allowable.Load},
		)
	}
	if ev.Case == column.CaseEccentric {
		lines = append(lines, Line{Label: "Approx. Maximum Stress", Value: ev.ApproxMaxStress, Suffix: " (load/area)"})
	}
	return lines
}

// WriteText writes one line per report row.
func WriteText(w io.Writer, ev column.Evaluation) error {
	for _, l := range Lines(ev) {
		if _, err := fmt.Fprintln(w, l.String()); err != nil {
			return err
		}
	}
	return nil
}
