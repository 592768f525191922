package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"hris/backend/internal/dto"
	"hris/backend/internal/service"
	"hris/backend/pkg/response"
)

// ExportHandler 导出模块 Handler
type ExportHandler struct {
	svc service.ExportService
}

// NewExportHandler 创建 ExportHandler 实例
func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportAvailability 导出可用性报表为 Excel
// GET /api/v1/export/availability?start_date=...&end_date=...&client_id=...
func (h *ExportHandler) ExportAvailability(c *gin.Context) {
	var req dto.AvailabilityViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 22000, err.Error())
		return
	}

	buf, filename, err := h.svc.ExportAvailability(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	// 文件名含中文，需 RFC 5987 编码
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
