package handler

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"pcb-research/backend/common"
	"pcb-research/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAnalyticsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	common.DatabasePath = filepath.Join(t.TempDir(), "pcb_database.json")
	require.NoError(t, model.InitDB())

	r := gin.New()
	r.POST("/api/records", CreateRecord)
	r.GET("/api/analytics/market", GetMarketAnalysis)
	return r
}

type analysisResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    model.MarketAnalysis `json:"data"`
}

func TestGetMarketAnalysis(t *testing.T) {
	router := setupAnalyticsRouter(t)
	postRecord(t, router, acmeEntry())
	postRecord(t, router, zyloEntry())

	w := get(router, "/api/analytics/market")
	require.Equal(t, 200, w.Code)

	var resp analysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)

	assert.Equal(t, []model.ValueCount{
		{Value: "Automotive", Count: 1},
		{Value: "IoT", Count: 1},
		{Value: "Medical", Count: 1},
	}, resp.Data.UseCases)
	assert.Equal(t, []model.ValueCount{{Value: "3", Count: 2}}, resp.Data.AgeInMarket)
	assert.Equal(t, []model.ValueCount{
		{Value: "Acme", Count: 1},
		{Value: "Zylo", Count: 1},
	}, resp.Data.Make)
}

func TestGetMarketAnalysisEmptyStore(t *testing.T) {
	router := setupAnalyticsRouter(t)

	w := get(router, "/api/analytics/market")
	require.Equal(t, 200, w.Code)

	var resp analysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "No data available for analysis")
	assert.Empty(t, resp.Data.UseCases)
}
