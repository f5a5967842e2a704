package export

import (
	"encoding/json"
	"fmt"

	"pcb-research/backend/model"
)

// ToJSON encodes the records as the same indented array-of-objects shape the
// store persists. An empty input yields the literal "[]".
func ToJSON(records []model.PCBRecord) ([]byte, error) {
	if records == nil {
		records = []model.PCBRecord{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode json export: %w", err)
	}
	return data, nil
}
