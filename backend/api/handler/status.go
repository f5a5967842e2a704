package handler

import (
	"pcb-research/backend/common"
	"pcb-research/backend/model"

	"github.com/gin-gonic/gin"
)

// GetStatus reports liveness plus basic catalogue facts.
// GET /api/status
func GetStatus(c *gin.Context) {
	common.RespSuccess(c, gin.H{
		"system_name":  common.SystemName,
		"version":      common.Version,
		"record_count": model.RecordCount(),
	})
}
