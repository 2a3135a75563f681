package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	column "ColumnSolver/internal/calc/column"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// WritePDF renders one page per evaluation, headed by meta.
func WritePDF(w io.Writer, meta Meta, evs []column.Evaluation, now time.Time) error {
	if meta.Title == "" {
		meta.Title = "Column Buckling Report"
	}
	id := uuid.NewString()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	for i, ev := range evs {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, meta.Title)
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Report: %s (%d/%d)", id, i+1, len(evs)))
		pdf.Ln(10)

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("%s column, %s section", titleCase(string(ev.Case)), ev.Shape()))
		pdf.Ln(9)
		writeInputs(pdf, ev)
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "", 11)
		for _, l := range Lines(ev) {
			if l.Sentence {
				pdf.SetFont("Helvetica", "I", 11)
				pdf.Cell(0, 6, l.Label)
				pdf.SetFont("Helvetica", "", 11)
			} else {
				pdf.CellFormat(80, 6, l.Label, "1", 0, "L", false, 0, "")
				pdf.CellFormat(60, 6, fmt.Sprintf("%.6f%s", l.Value, l.Suffix), "1", 0, "R", false, 0, "")
			}
			pdf.Ln(6)
		}
		if meta.Notes != "" {
			pdf.Ln(6)
			pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
		}
	}
	if len(evs) == 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, "No evaluations.")
	}
	return pdf.Output(w)
}

func writeInputs(pdf *gofpdf.Fpdf, ev column.Evaluation) {
	pdf.SetFont("Helvetica", "", 10)
	var dims string
	switch ev.Shape() {
	case column.ShapeCircular:
		dims = fmt.Sprintf("D = %.6f", ev.Section.Diameter)
	case column.ShapeRectangular:
		dims = fmt.Sprintf("B = %.6f, H = %.6f", ev.Section.Base, ev.Section.Height)
	}
	pdf.Cell(0, 5, "Section: "+dims)
	pdf.Ln(5)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
