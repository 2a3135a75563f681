package report

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	column "ColumnSolver/internal/calc/column"
)

type Input struct {
	Meta
	Items []column.Input `json:"items"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "No items to report", http.StatusBadRequest)
		return
	}

	evs := make([]column.Evaluation, 0, len(input.Items))
	for _, item := range input.Items {
		ev, err := column.Evaluate(item)
		if err != nil {
			http.Error(w, err.Error(), column.StatusFor(err))
			return
		}
		evs = append(evs, ev)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"column-report.pdf\"")
	if err := WritePDF(w, input.Meta, evs, time.Now()); err != nil {
		log.Printf("report: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
