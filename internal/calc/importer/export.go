package importer

import (
	"fmt"
	"io"

	"ColumnSolver/internal/calc/batch"
	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

var resultColumns = []string{
	"radius_of_gyration", "area", "slenderness_ratio", "column_constant", "regime",
	"critical_load", "c1", "c2", "allowable_load", "approx_max_stress", "error",
}

// WriteXLSX writes one row per batch item: the inputs in the import column
// layout followed by the evaluation or the error.
func WriteXLSX(w io.Writer, res batch.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, 0, len(Columns)+len(resultColumns))
	for _, c := range append(append([]string{}, Columns...), resultColumns...) {
		header = append(header, c)
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return err
	}

	for i, item := range res.Results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := resultRow(item)
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	return f.Write(w)
}

func resultRow(item batch.Item) []any {
	in := item.Input
	row := []any{
		item.Label, string(in.Case), string(in.Section.Shape),
		in.Section.Diameter, in.Section.Base, in.Section.Height,
		in.Loading.EndFixity, in.Loading.Length,
		in.Material.YieldStrength, in.Material.ElasticModulus,
		in.Loading.InitialCrookedness, in.Loading.DesignFactor, in.Loading.Eccentricity,
	}
	ev := item.Evaluation
	if ev == nil {
		blank := make([]any, len(resultColumns)-1)
		for i := range blank {
			blank[i] = ""
		}
		return append(append(row, blank...), item.Error)
	}
	row = append(row,
		ev.Properties.RadiusOfGyration, ev.Properties.Area,
		ev.SlendernessRatio, ev.ColumnConstant, string(ev.Regime),
		ev.CriticalLoad,
	)
	if ev.Allowable != nil {
		row = append(row, ev.Allowable.C1, ev.Allowable.C2, ev.Allowable.Load)
	} else {
		row = append(row, "", "", "")
	}
	if ev.ApproxMaxStress != 0 {
		row = append(row, ev.ApproxMaxStress)
	} else {
		row = append(row, "")
	}
	return append(row, "")
}
