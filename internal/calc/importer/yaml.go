package importer

import (
	"errors"
	"fmt"
	"io"

	"ColumnSolver/internal/calc/batch"
	"gopkg.in/yaml.v3"
)

// ReadYAML decodes a batch definition. JSON documents are accepted too.
//
//	items:
//	  - label: C1
//	    case: crooked
//	    section: {shape: circular, diameter: 2}
//	    material: {yield_strength: 36000, elastic_modulus: 30000000}
//	    loading: {end_fixity: 1, length: 100, initial_crookedness: 0.1, design_factor: 3}
func ReadYAML(r io.Reader) (batch.Input, error) {
	var in batch.Input
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return batch.Input{}, batch.ErrEmpty
		}
		return batch.Input{}, fmt.Errorf("decode batch: %w", err)
	}
	return in, nil
}
