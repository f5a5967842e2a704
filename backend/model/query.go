package model

import (
	"fmt"
	"sort"
	"strings"
)

// SearchableFields are the fields the search view offers, matching the
// original tool's search menu.
var SearchableFields = []string{
	FieldModelNumber,
	FieldMake,
	FieldFormFactor,
	FieldUseCases,
}

func IsSearchableField(field string) bool {
	for _, name := range SearchableFields {
		if name == field {
			return true
		}
	}
	return false
}

// DistinctValues computes the value domain actually observed in the data for
// a field, sorted lexicographically. For use_cases it is the union of all
// per-record sets. Selection widgets are driven by this, not by the fixed
// add-form enumeration.
func DistinctValues(recs []PCBRecord, field string) ([]string, error) {
	seen := make(map[string]struct{})
	if field == FieldUseCases {
		for i := range recs {
			for _, useCase := range recs[i].UseCases {
				seen[useCase] = struct{}{}
			}
		}
	} else {
		if !IsKnownField(field) {
			return nil, fmt.Errorf("unknown record field %q", field)
		}
		for i := range recs {
			value, err := recs[i].ScalarField(field)
			if err != nil {
				return nil, err
			}
			seen[value] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Strings(values)
	return values, nil
}

// FilterBySelection is the multi-select policy of the later drafts: exact,
// case-sensitive membership of the field value in the selected set. For
// use_cases a record matches when its set intersects the selection. Source
// order is preserved and the full match set is returned.
func FilterBySelection(recs []PCBRecord, field string, selected []string) ([]PCBRecord, error) {
	if field != FieldUseCases && !IsKnownField(field) {
		return nil, fmt.Errorf("unknown record field %q", field)
	}

	selectedSet := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		selectedSet[value] = struct{}{}
	}

	results := []PCBRecord{}
	for i := range recs {
		if field == FieldUseCases {
			for _, useCase := range recs[i].UseCases {
				if _, ok := selectedSet[useCase]; ok {
					results = append(results, recs[i])
					break
				}
			}
			continue
		}
		value, err := recs[i].ScalarField(field)
		if err != nil {
			return nil, err
		}
		if _, ok := selectedSet[value]; ok {
			results = append(results, recs[i])
		}
	}
	return results, nil
}

// FilterByTerm is the single-term policy of the first draft: case-insensitive
// substring match against the field value, or against any use case for the
// use_cases field. Kept as a distinct mode; it is not a subset of the
// selection policy and the two are never merged.
func FilterByTerm(recs []PCBRecord, field string, term string) ([]PCBRecord, error) {
	if field != FieldUseCases && !IsKnownField(field) {
		return nil, fmt.Errorf("unknown record field %q", field)
	}

	needle := strings.ToLower(term)
	results := []PCBRecord{}
	for i := range recs {
		if field == FieldUseCases {
			for _, useCase := range recs[i].UseCases {
				if strings.Contains(strings.ToLower(useCase), needle) {
					results = append(results, recs[i])
					break
				}
			}
			continue
		}
		value, err := recs[i].ScalarField(field)
		if err != nil {
			return nil, err
		}
		if strings.Contains(strings.ToLower(value), needle) {
			results = append(results, recs[i])
		}
	}
	return results, nil
}
