package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"pcb-research/backend/model"
)

// useCaseSeparator flattens the multi-valued use_cases set into one CSV cell.
const useCaseSeparator = ", "

// ToCSV encodes the records as comma-separated text: a header row of field
// names in schema order, then one row per record. An empty input yields a
// header-only payload.
func ToCSV(records []model.PCBRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(model.FieldNames); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for i := range records {
		row := make([]string, 0, len(model.FieldNames))
		for _, field := range model.FieldNames {
			if field == model.FieldUseCases {
				row = append(row, strings.Join(records[i].UseCases, useCaseSeparator))
				continue
			}
			value, err := records[i].ScalarField(field)
			if err != nil {
				return nil, err
			}
			row = append(row, value)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// SplitUseCases undoes the flattening applied by ToCSV.
func SplitUseCases(cell string) []string {
	if cell == "" {
		return []string{}
	}
	return strings.Split(cell, useCaseSeparator)
}
