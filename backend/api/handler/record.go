package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pcb-research/backend/common"
	"pcb-research/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// recordInput is the add-entry form payload. entry_date is never accepted
// from the client; it is stamped server-side at creation time. Free-text
// fields may be empty, exactly as the form allowed.
type recordInput struct {
	FormFactor        string   `json:"form_factor"`
	ModelNumber       string   `json:"model_number"`
	Make              string   `json:"make"`
	Model             string   `json:"model"`
	UseCases          []string `json:"use_cases" binding:"omitempty,dive,oneof=Industrial 'Consumer Electronics' Automotive Medical Aerospace IoT Other"`
	Purpose           string   `json:"purpose"`
	MarketUse         string   `json:"market_use"`
	AgeInMarket       int      `json:"age_in_market" binding:"omitempty,min=0,max=20"`
	CompetingProducts string   `json:"competing_products"`
}

// CreateRecord handles the add-entry flow: validate, stamp entry_date,
// append to the collection, persist the whole sequence.
// POST /api/records
func CreateRecord(c *gin.Context) {
	var input recordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	useCases := input.UseCases
	if useCases == nil {
		useCases = []string{}
	}

	record := model.PCBRecord{
		FormFactor:        input.FormFactor,
		ModelNumber:       input.ModelNumber,
		Make:              input.Make,
		Model:             input.Model,
		UseCases:          useCases,
		Purpose:           input.Purpose,
		MarketUse:         input.MarketUse,
		AgeInMarket:       input.AgeInMarket,
		CompetingProducts: input.CompetingProducts,
		EntryDate:         time.Now().Format(model.EntryDateLayout),
	}

	if err := model.AddRecord(record); err != nil {
		common.SysError("failed to save record: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, "failed to save PCB entry", err)
		return
	}

	common.RespSuccessWithMsg(c, "PCB entry added successfully!", record)
}

// GetAllRecords returns the full collection in insertion order.
// GET /api/records
func GetAllRecords(c *gin.Context) {
	common.RespSuccess(c, model.AllRecords())
}

// GetFieldValues returns the distinct-value domain observed in the data for
// a field, used to populate the search selection widgets.
// GET /api/records/fields/:field/values
func GetFieldValues(c *gin.Context) {
	field := c.Param("field")
	values, err := model.DistinctValues(model.AllRecords(), field)
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}
	common.RespSuccess(c, values)
}

// searchQuery carries the parsed search criteria. The two filter modes of
// the drafts stay distinct: a repeated values parameter selects exact
// multi-select matching, a q parameter selects case-insensitive substring
// matching. They are never combined.
type searchQuery struct {
	field  string
	values []string
	term   string
}

func parseSearchQuery(c *gin.Context) (*searchQuery, error) {
	q := &searchQuery{
		field:  c.Query("field"),
		values: c.QueryArray("values"),
		term:   c.Query("q"),
	}

	if len(q.values) == 0 && q.term == "" {
		if q.field != "" {
			return nil, errors.New("missing search criteria: supply values or q")
		}
		return nil, nil
	}
	if len(q.values) > 0 && q.term != "" {
		return nil, errors.New("values and q are mutually exclusive search modes")
	}
	if q.field == "" {
		return nil, errors.New("missing search field")
	}
	if !model.IsSearchableField(q.field) {
		return nil, fmt.Errorf("unsupported search field %q", q.field)
	}
	return q, nil
}

func (q *searchQuery) apply(records []model.PCBRecord) ([]model.PCBRecord, error) {
	if q.term != "" {
		return model.FilterByTerm(records, q.field, q.term)
	}
	return model.FilterBySelection(records, q.field, q.values)
}

// SearchRecords filters the collection by one field. An empty store or
// missing criteria is a notice, not an error.
// GET /api/records/search?field=<f>&values=<v>&values=<v>
// GET /api/records/search?field=<f>&q=<term>
func SearchRecords(c *gin.Context) {
	records := model.AllRecords()
	if len(records) == 0 {
		common.RespSuccessWithMsg(c, "No PCB entries available. Please add some entries first.", []model.PCBRecord{})
		return
	}

	query, err := parseSearchQuery(c)
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}
	if query == nil {
		common.RespSuccessWithMsg(c, "No search criteria provided.", []model.PCBRecord{})
		return
	}

	results, err := query.apply(records)
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(results) == 0 {
		common.RespSuccessWithMsg(c, "No results found.", results)
		return
	}
	common.RespSuccessWithMsg(c, fmt.Sprintf("Found %d results", len(results)), results)
}

// bindErrorMessage turns gin binding failures into a user-facing message,
// spelling out validator constraint violations per field.
func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		msgs := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "oneof":
				msgs = append(msgs, fmt.Sprintf("%s must be one of the predefined use cases", fieldErr.Field()))
			case "min", "max":
				msgs = append(msgs, fmt.Sprintf("%s must be between 0 and %d", fieldErr.Field(), model.AgeInMarketMax))
			default:
				msgs = append(msgs, fmt.Sprintf("%s is invalid", fieldErr.Field()))
			}
		}
		return "invalid PCB entry: " + strings.Join(msgs, "; ")
	}
	return "invalid request body: " + err.Error()
}
