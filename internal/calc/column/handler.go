package column

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ColumnSolver/internal/metrics"
)

type Handler struct{}

// Calc evaluates the case named in the request body.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	h.calc(w, r, "")
}

// CalcCase returns a handler that forces the loading case, so the body may
// omit it.
func (h *Handler) CalcCase(c Case) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.calc(w, r, c)
	}
}

func (h *Handler) calc(w http.ResponseWriter, r *http.Request, force Case) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if force != "" {
		input.Case = force
	}
	res, err := Evaluate(input)
	if err != nil {
		metrics.ObserveFailure(string(input.Case), ErrorKind(err))
		http.Error(w, err.Error(), StatusFor(err))
		return
	}
	body, err := json.Marshal(res)
	if err != nil {
		log.Printf("column: encode response: %v", err)
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	metrics.ObserveEvaluation(string(res.Case), string(res.Shape()), string(res.Regime))
	w.Header().Set("Content-Type", "application/json")
	w.Write(append(body, '\n'))
}

// StatusFor maps calculation errors to an HTTP status.
func StatusFor(err error) int {
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidSelection) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ErrorKind is a short label for metrics and logs.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "domain"
	case errors.Is(err, ErrInvalidSelection):
		return "selection"
	}
	return "internal"
}
