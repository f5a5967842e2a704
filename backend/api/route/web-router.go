package route

import (
	"embed"

	"pcb-research/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// The index fallback for unmatched routes lives in main.go, next to the API
// 404 handler.
func setWebRouter(route *gin.Engine, buildFS embed.FS) {
	route.Use(static.Serve("/", common.EmbedFolder(buildFS, "frontend/dist")))
}
