package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"pcb-research/backend/common"
	"pcb-research/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecordRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	common.DatabasePath = filepath.Join(t.TempDir(), "pcb_database.json")
	require.NoError(t, model.InitDB())

	r := gin.New()
	r.GET("/api/records", GetAllRecords)
	r.POST("/api/records", CreateRecord)
	r.GET("/api/records/search", SearchRecords)
	r.GET("/api/records/fields/:field/values", GetFieldValues)
	return r
}

type recordResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []model.PCBRecord `json:"data"`
}

func postRecord(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)
	req, _ := http.NewRequest("POST", "/api/records", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func acmeEntry() map[string]interface{} {
	return map[string]interface{}{
		"form_factor":        "Mini-ITX",
		"model_number":       "A1",
		"make":               "Acme",
		"model":              "Alpha",
		"use_cases":          []string{"IoT", "Medical"},
		"purpose":            "Edge sensor hub",
		"market_use":         "Connected clinics",
		"age_in_market":      3,
		"competing_products": "Generic dev boards",
	}
}

func zyloEntry() map[string]interface{} {
	return map[string]interface{}{
		"form_factor":   "ATX",
		"model_number":  "Z9",
		"make":          "Zylo",
		"use_cases":     []string{"Automotive"},
		"age_in_market": 3,
	}
}

func TestCreateAndListRecords(t *testing.T) {
	router := setupRecordRouter(t)

	w := postRecord(t, router, acmeEntry())
	require.Equal(t, 200, w.Code, w.Body.String())

	var created struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    model.PCBRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "PCB entry added successfully!", created.Message)
	assert.NotEmpty(t, created.Data.EntryDate, "entry_date is stamped at creation time")

	w = postRecord(t, router, zyloEntry())
	require.Equal(t, 200, w.Code)

	w = get(router, "/api/records")
	require.Equal(t, 200, w.Code)
	var listed recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 2)
	assert.Equal(t, "Acme", listed.Data[0].Make)
	assert.Equal(t, "Zylo", listed.Data[1].Make, "insertion order is preserved")
}

func TestCreateRecordValidation(t *testing.T) {
	router := setupRecordRouter(t)

	tooOld := acmeEntry()
	tooOld["age_in_market"] = 25
	w := postRecord(t, router, tooOld)
	assert.Equal(t, 400, w.Code)

	badUseCase := acmeEntry()
	badUseCase["use_cases"] = []string{"Submarine"}
	w = postRecord(t, router, badUseCase)
	assert.Equal(t, 400, w.Code)

	// Empty text fields were never rejected by the form.
	bare := map[string]interface{}{"age_in_market": 0}
	w = postRecord(t, router, bare)
	assert.Equal(t, 200, w.Code, w.Body.String())
}

func TestSearchRecordsSelectMode(t *testing.T) {
	router := setupRecordRouter(t)
	postRecord(t, router, acmeEntry())
	postRecord(t, router, zyloEntry())

	w := get(router, "/api/records/search?field=make&values=Acme")
	require.Equal(t, 200, w.Code)
	var resp recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "A1", resp.Data[0].ModelNumber)

	w = get(router, "/api/records/search?field=use_cases&values=Medical")
	require.Equal(t, 200, w.Code)
	resp = recordResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Acme", resp.Data[0].Make)

	// Select mode is exact and case-sensitive.
	w = get(router, "/api/records/search?field=make&values=acme")
	resp = recordResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
	assert.Equal(t, "No results found.", resp.Message)
}

func TestSearchRecordsTermMode(t *testing.T) {
	router := setupRecordRouter(t)
	postRecord(t, router, acmeEntry())
	postRecord(t, router, zyloEntry())

	w := get(router, "/api/records/search?field=make&q=aCM")
	require.Equal(t, 200, w.Code)
	var resp recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Acme", resp.Data[0].Make)
}

func TestSearchRecordsBadRequests(t *testing.T) {
	router := setupRecordRouter(t)
	postRecord(t, router, acmeEntry())

	// The two filter modes are distinct and cannot be combined.
	w := get(router, "/api/records/search?field=make&values=Acme&q=acme")
	assert.Equal(t, 400, w.Code)

	w = get(router, "/api/records/search?field=purpose&values=x")
	assert.Equal(t, 400, w.Code, "purpose is not a searchable field")

	w = get(router, "/api/records/search?values=Acme")
	assert.Equal(t, 400, w.Code, "criteria without a field")
}

func TestSearchRecordsEmptyInputs(t *testing.T) {
	router := setupRecordRouter(t)

	// Empty store is a notice, not an error.
	w := get(router, "/api/records/search?field=make&values=Acme")
	require.Equal(t, 200, w.Code)
	var resp recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "No PCB entries available")

	// So is a search with no criteria.
	postRecord(t, router, acmeEntry())
	w = get(router, "/api/records/search")
	require.Equal(t, 200, w.Code)
	resp = recordResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "No search criteria")
}

func TestGetFieldValues(t *testing.T) {
	router := setupRecordRouter(t)
	postRecord(t, router, acmeEntry())
	postRecord(t, router, zyloEntry())

	w := get(router, "/api/records/fields/use_cases/values")
	require.Equal(t, 200, w.Code)
	var resp struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Automotive", "IoT", "Medical"}, resp.Data)

	w = get(router, "/api/records/fields/age_in_market/values")
	require.Equal(t, 200, w.Code)
	resp.Data = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"3"}, resp.Data)

	w = get(router, "/api/records/fields/voltage/values")
	assert.Equal(t, 400, w.Code)
}
