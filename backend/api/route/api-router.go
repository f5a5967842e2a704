package route

import (
	"pcb-research/backend/api/handler"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(route *gin.Engine) {
	apiRouter := route.Group("/api")
	{
		apiRouter.GET("/status", handler.GetStatus)

		// PCB record routes
		recordRoute := apiRouter.Group("/records")
		{
			recordRoute.GET("", handler.GetAllRecords)
			recordRoute.POST("", handler.CreateRecord)
			recordRoute.GET("/search", handler.SearchRecords)
			recordRoute.GET("/export", handler.ExportRecords)
			recordRoute.GET("/fields/:field/values", handler.GetFieldValues)
		}

		// Market analysis routes
		analyticsRoute := apiRouter.Group("/analytics")
		{
			analyticsRoute.GET("/market", handler.GetMarketAnalysis)
		}
	}
}
