package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	column "ColumnSolver/internal/calc/column"
	report "ColumnSolver/internal/calc/report"
	"ColumnSolver/internal/metrics"
)

var (
	calcCase        string
	calcShape       string
	calcDiameter    float64
	calcBase        float64
	calcHeight      float64
	calcEndFixity   float64
	calcLength      float64
	calcYield       float64
	calcModulus     float64
	calcCrookedness float64
	calcFactor      float64
	calcEccentric   float64
	calcJSON        bool
	calcPDF         string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate one column from flags",
	Example: `  columnsolver calc --case straight --shape circular --diameter 2 \
    --end-fixity 1 --length 50 --yield-strength 36000 --elastic-modulus 30e6`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	f := calcCmd.Flags()
	f.StringVar(&calcCase, "case", "straight", "loading case: straight, crooked or eccentric")
	f.StringVar(&calcShape, "shape", "circular", "cross section: circular or rectangular")
	f.Float64Var(&calcDiameter, "diameter", 0, "diameter D of a circular section")
	f.Float64Var(&calcBase, "base", 0, "base B of a rectangular section")
	f.Float64Var(&calcHeight, "height", 0, "height H of a rectangular section")
	f.Float64Var(&calcEndFixity, "end-fixity", 0, "effective length factor K")
	f.Float64Var(&calcLength, "length", 0, "column length L")
	f.Float64Var(&calcYield, "yield-strength", 0, "yield strength S")
	f.Float64Var(&calcModulus, "elastic-modulus", 0, "modulus of elasticity E")
	f.Float64Var(&calcCrookedness, "crookedness", 0, "initial crookedness a (crooked and eccentric, circular only)")
	f.Float64Var(&calcFactor, "design-factor", 0, "design factor N (crooked and eccentric)")
	f.Float64Var(&calcEccentric, "eccentricity", 0, "load eccentricity e (eccentric)")
	f.BoolVar(&calcJSON, "json", false, "print the evaluation as JSON")
	f.StringVar(&calcPDF, "pdf", "", "also write a PDF report to this path")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, _ []string) error {
	in, err := calcInput()
	if err != nil {
		return err
	}
	ev, err := column.Evaluate(in)
	if err != nil {
		metrics.ObserveFailure(string(in.Case), column.ErrorKind(err))
		return err
	}
	metrics.ObserveEvaluation(string(ev.Case), string(ev.Shape()), string(ev.Regime))

	if calcJSON {
		if err := writeJSON(cmd.OutOrStdout(), ev); err != nil {
			return err
		}
	} else if err := report.WriteText(cmd.OutOrStdout(), ev); err != nil {
		return err
	}

	if calcPDF != "" {
		if err := writePDFFile(calcPDF, []column.Evaluation{ev}); err != nil {
			return err
		}
		cmd.PrintErrf("report written to %s\n", calcPDF)
	}
	return nil
}

func calcInput() (column.Input, error) {
	c, err := column.ParseCase(calcCase)
	if err != nil {
		return column.Input{}, err
	}
	shape, err := column.ParseShape(calcShape)
	if err != nil {
		return column.Input{}, err
	}
	sec := column.Circular(calcDiameter)
	if shape == column.ShapeRectangular {
		sec = column.Rectangular(calcBase, calcHeight)
	}
	return column.Input{
		Case:     c,
		Section:  sec,
		Material: column.Material{YieldStrength: calcYield, ElasticModulus: calcModulus},
		Loading: column.Loading{
			EndFixity:          calcEndFixity,
			Length:             calcLength,
			InitialCrookedness: calcCrookedness,
			DesignFactor:       calcFactor,
			Eccentricity:       calcEccentric,
		},
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePDFFile(path string, evs []column.Evaluation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.WritePDF(f, report.Meta{}, evs, time.Now()); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}
