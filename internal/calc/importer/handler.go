package importer

import (
	"encoding/json"
	"log"
	"net/http"

	"ColumnSolver/internal/calc/batch"
	"ColumnSolver/internal/metrics"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type ImportResult struct {
	Count    int          `json:"count"`
	Results  batch.Result `json:"results"`
	Rejected []RowError   `json:"rejected,omitempty"`
}

// Import evaluates every row of an uploaded workbook. With ?format=xlsx the
// response is the results workbook instead of JSON.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	in, rejected, err := ReadXLSX(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics.ObserveImport(len(in.Items), len(rejected))

	var res batch.Result
	if len(in.Items) > 0 {
		res, err = batch.Calculate(in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if r.URL.Query().Get("format") == "xlsx" {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=\"column-results.xlsx\"")
		if err := WriteXLSX(w, res); err != nil {
			log.Printf("importer: write workbook: %v", err)
			http.Error(w, "Export error", http.StatusInternalServerError)
		}
		return
	}

	out := ImportResult{Count: len(res.Results), Results: res, Rejected: rejected}
	body, err := json.Marshal(out)
	if err != nil {
		log.Printf("importer: encode response: %v", err)
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(append(body, '\n'))
}
