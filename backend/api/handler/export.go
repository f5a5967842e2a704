package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"pcb-research/backend/common"
	"pcb-research/backend/library/export"
	"pcb-research/backend/model"

	"github.com/gin-gonic/gin"
)

// ExportRecords serves the collection (or a filtered subset, using the same
// criteria as SearchRecords) as a file download in one of the four formats.
// GET /api/records/export?format=csv|json|xml|pdf[&field=<f>&values=<v>|&q=<term>]
func ExportRecords(c *gin.Context) {
	format := export.Format(c.Query("format"))
	switch format {
	case export.FormatCSV, export.FormatJSON, export.FormatXML, export.FormatPDF:
	default:
		common.RespErrorStr(c, http.StatusBadRequest, fmt.Sprintf("unsupported export format %q", format))
		return
	}

	records := model.AllRecords()
	query, err := parseSearchQuery(c)
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}
	if query != nil {
		records, err = query.apply(records)
		if err != nil {
			common.RespErrorStr(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	payload, err := export.Encode(format, records)
	if err != nil {
		common.SysError("export failed: " + err.Error())
		common.RespError(c, http.StatusInternalServerError, "failed to generate export", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", payload.Filename))
	c.Header("Content-Length", strconv.Itoa(len(payload.Data)))
	c.Data(http.StatusOK, payload.ContentType, payload.Data)
}
