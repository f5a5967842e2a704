package route

import (
	"embed"

	"pcb-research/backend/api/middleware"
	"pcb-research/backend/common"

	"github.com/gin-gonic/gin"
)

func SetRouter(route *gin.Engine, buildFS embed.FS) {
	if common.EnableGzip {
		route.Use(middleware.GzipDecodeMiddleware()) // Decode gzipped requests
		route.Use(middleware.GzipEncodeMiddleware()) // Compress responses with gzip
	}

	SetApiRouter(route)
	setWebRouter(route, buildFS)
}
