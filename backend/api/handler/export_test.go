package handler

import (
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"pcb-research/backend/common"
	"pcb-research/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExportRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	common.DatabasePath = filepath.Join(t.TempDir(), "pcb_database.json")
	require.NoError(t, model.InitDB())

	r := gin.New()
	r.POST("/api/records", CreateRecord)
	r.GET("/api/records/export", ExportRecords)
	return r
}

func TestExportRecordsCSV(t *testing.T) {
	router := setupExportRouter(t)
	postRecord(t, router, acmeEntry())
	postRecord(t, router, zyloEntry())

	w := get(router, "/api/records/export?format=csv")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=pcb_results.csv", w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Header().Get("Content-Length"))

	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3, "header plus one row per record")
}

func TestExportRecordsFiltered(t *testing.T) {
	router := setupExportRouter(t)
	postRecord(t, router, acmeEntry())
	postRecord(t, router, zyloEntry())

	w := get(router, "/api/records/export?format=json&field=make&values=Zylo")
	require.Equal(t, 200, w.Code)

	var exported []model.PCBRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "Z9", exported[0].ModelNumber)
}

func TestExportRecordsAllFormats(t *testing.T) {
	router := setupExportRouter(t)
	postRecord(t, router, acmeEntry())

	for format, contentType := range map[string]string{
		"csv":  "text/csv",
		"json": "application/json",
		"xml":  "application/xml",
		"pdf":  "application/pdf",
	} {
		w := get(router, "/api/records/export?format="+format)
		require.Equal(t, 200, w.Code, format)
		assert.Equal(t, contentType, w.Header().Get("Content-Type"), format)
		assert.NotZero(t, w.Body.Len(), format)
	}
}

func TestExportRecordsEmptyStore(t *testing.T) {
	router := setupExportRouter(t)

	w := get(router, "/api/records/export?format=xml")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "<PCBDatabase></PCBDatabase>", w.Body.String())

	w = get(router, "/api/records/export?format=json")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = get(router, "/api/records/export?format=csv")
	require.Equal(t, 200, w.Code)
	assert.Equal(t, strings.Join(model.FieldNames, ",")+"\n", w.Body.String())

	w = get(router, "/api/records/export?format=pdf")
	require.Equal(t, 200, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportRecordsBadRequests(t *testing.T) {
	router := setupExportRouter(t)
	postRecord(t, router, acmeEntry())

	w := get(router, "/api/records/export?format=xlsx")
	assert.Equal(t, 400, w.Code)

	w = get(router, "/api/records/export")
	assert.Equal(t, 400, w.Code, "format is required")

	w = get(router, "/api/records/export?format=csv&field=make&values=Acme&q=acme")
	assert.Equal(t, 400, w.Code, "mixed filter modes")
}
