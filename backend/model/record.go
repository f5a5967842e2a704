package model

import (
	"fmt"
	"strconv"
)

// PCBRecord is the sole entity of the catalogue. Records are append-only:
// created once through the add-entry flow and never edited or deleted.
// Field names match the persisted JSON keys.
type PCBRecord struct {
	FormFactor        string   `json:"form_factor"`
	ModelNumber       string   `json:"model_number"`
	Make              string   `json:"make"`
	Model             string   `json:"model"`
	UseCases          []string `json:"use_cases"`
	Purpose           string   `json:"purpose"`
	MarketUse         string   `json:"market_use"`
	AgeInMarket       int      `json:"age_in_market"`
	CompetingProducts string   `json:"competing_products"`
	EntryDate         string   `json:"entry_date"`
}

// Field names, as used by the search and analytics surfaces.
const (
	FieldFormFactor        = "form_factor"
	FieldModelNumber       = "model_number"
	FieldMake              = "make"
	FieldModel             = "model"
	FieldUseCases          = "use_cases"
	FieldPurpose           = "purpose"
	FieldMarketUse         = "market_use"
	FieldAgeInMarket       = "age_in_market"
	FieldCompetingProducts = "competing_products"
	FieldEntryDate         = "entry_date"
)

// FieldNames lists every record field in schema order. Export encoders rely
// on this ordering for columns and elements.
var FieldNames = []string{
	FieldFormFactor,
	FieldModelNumber,
	FieldMake,
	FieldModel,
	FieldUseCases,
	FieldPurpose,
	FieldMarketUse,
	FieldAgeInMarket,
	FieldCompetingProducts,
	FieldEntryDate,
}

// UseCaseOptions is the fixed enumeration offered by the add form. Search
// domains are computed from observed data instead; the two sets are
// deliberately different.
var UseCaseOptions = []string{
	"Industrial",
	"Consumer Electronics",
	"Automotive",
	"Medical",
	"Aerospace",
	"IoT",
	"Other",
}

// EntryDateLayout is the creation timestamp format stored in entry_date.
const EntryDateLayout = "2006-01-02 15:04:05"

// AgeInMarketMax bounds age_in_market on input, matching the add form's slider.
const AgeInMarketMax = 20

// ScalarField returns the string rendering of a scalar (non use_cases) field.
// Integer fields are rendered as decimal strings so that search domains and
// analytics can treat every scalar uniformly.
func (r *PCBRecord) ScalarField(field string) (string, error) {
	switch field {
	case FieldFormFactor:
		return r.FormFactor, nil
	case FieldModelNumber:
		return r.ModelNumber, nil
	case FieldMake:
		return r.Make, nil
	case FieldModel:
		return r.Model, nil
	case FieldPurpose:
		return r.Purpose, nil
	case FieldMarketUse:
		return r.MarketUse, nil
	case FieldAgeInMarket:
		return strconv.Itoa(r.AgeInMarket), nil
	case FieldCompetingProducts:
		return r.CompetingProducts, nil
	case FieldEntryDate:
		return r.EntryDate, nil
	default:
		return "", fmt.Errorf("unknown record field %q", field)
	}
}

// IsKnownField reports whether field names a record field.
func IsKnownField(field string) bool {
	for _, name := range FieldNames {
		if name == field {
			return true
		}
	}
	return false
}
