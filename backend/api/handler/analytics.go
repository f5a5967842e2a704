package handler

import (
	"pcb-research/backend/common"
	"pcb-research/backend/model"

	"github.com/gin-gonic/gin"
)

// GetMarketAnalysis returns the four market-analysis distributions computed
// over the full collection: use-case, age-in-market, manufacturer, and
// form-factor frequencies. Each is an exact count-by-value; the presentation
// layer renders them as bar charts.
// GET /api/analytics/market
func GetMarketAnalysis(c *gin.Context) {
	records := model.AllRecords()
	analysis := model.AnalyzeMarket(records)
	if len(records) == 0 {
		common.RespSuccessWithMsg(c, "No data available for analysis. Please add some PCB entries first.", analysis)
		return
	}
	common.RespSuccess(c, analysis)
}
