package handler

import (
	"github.com/gin-gonic/gin"

	"hris/backend/internal/dto"
	"hris/backend/internal/service"
	"hris/backend/pkg/response"
)

// ReportHandler 报表模块 Handler
type ReportHandler struct {
	svc service.AvailabilityService
}

// NewReportHandler 创建 ReportHandler 实例
func NewReportHandler(svc service.AvailabilityService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GetAvailabilityView 可用性看板聚合
// GET /api/v1/reports/availability?start_date=...&end_date=...&client_id=...
func (h *ReportHandler) GetAvailabilityView(c *gin.Context) {
	var req dto.AvailabilityViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 20000, err.Error())
		return
	}

	resp, err := h.svc.ComputeAvailabilityView(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// GetUnavailableReport 区间不可用记录报表
// GET /api/v1/reports/unavailable?start=...&end=...
func (h *ReportHandler) GetUnavailableReport(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" {
		response.BadRequest(c, 20001, "start 参数不能为空")
		return
	}

	rows, err := h.svc.UnavailableReport(c.Request.Context(), start, end)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, rows)
}

// GetClientVisitReport 单客户拜访报表
// GET /api/v1/reports/client-visits/:id?start_date=...&end_date=...
func (h *ReportHandler) GetClientVisitReport(c *gin.Context) {
	clientID := c.Param("id")
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start == "" {
		response.BadRequest(c, 20001, "start_date 参数不能为空")
		return
	}

	resp, err := h.svc.ClientVisitReport(c.Request.Context(), clientID, start, end)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}
