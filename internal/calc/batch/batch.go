// Package batch evaluates many column inputs in one call.
package batch

import (
	"errors"

	column "ColumnSolver/internal/calc/column"
	"ColumnSolver/internal/metrics"
)

var ErrEmpty = errors.New("no items")

type Input struct {
	Items []Entry `json:"items" yaml:"items"`
}

// Entry is a column input with an optional label such as a grid reference.
type Entry struct {
	Label        string `json:"label,omitempty" yaml:"label,omitempty"`
	column.Input `yaml:",inline"`
}

// Item is the outcome for one input; exactly one of Evaluation and Error is set.
type Item struct {
	Index      int                `json:"index"`
	Label      string             `json:"label,omitempty"`
	Input      column.Input       `json:"input"`
	Evaluation *column.Evaluation `json:"evaluation,omitempty"`
	Error      string             `json:"error,omitempty"`
	Err        error              `json:"-"`
}

type Result struct {
	Results []Item `json:"results"`
	Failed  int    `json:"failed"`
}

// Evaluations returns the successful evaluations in input order.
func (r Result) Evaluations() []column.Evaluation {
	out := make([]column.Evaluation, 0, len(r.Results))
	for _, item := range r.Results {
		if item.Evaluation != nil {
			out = append(out, *item.Evaluation)
		}
	}
	return out
}

// Calculate evaluates every item. A failing item is recorded with its error
// and does not stop the rest.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrEmpty
	}
	out := Result{Results: make([]Item, 0, len(in.Items))}
	for i, entry := range in.Items {
		item := evaluate(i, entry.Input)
		item.Label = entry.Label
		if item.Err != nil {
			out.Failed++
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func evaluate(i int, input column.Input) Item {
	item := Item{Index: i, Input: input}
	ev, err := column.Evaluate(input)
	if err != nil {
		metrics.ObserveFailure(string(input.Case), column.ErrorKind(err))
		item.Err = err
		item.Error = err.Error()
		return item
	}
	metrics.ObserveEvaluation(string(ev.Case), string(ev.Shape()), string(ev.Regime))
	item.Evaluation = &ev
	return item
}
