package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hris/backend/internal/dto"
	"hris/backend/internal/service"
	"hris/backend/pkg/response"
)

// DutyHandler 派驻记录 Handler
type DutyHandler struct {
	svc service.DutyService
}

// NewDutyHandler 创建 DutyHandler 实例
func NewDutyHandler(svc service.DutyService) *DutyHandler {
	return &DutyHandler{svc: svc}
}

// CreateDutyAssignment 创建派驻记录
// POST /api/v1/duty-assignments
func (h *DutyHandler) CreateDutyAssignment(c *gin.Context) {
	var req dto.CreateDutyAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21000, err.Error())
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleDutyError(c, err)
		return
	}
	response.Created(c, resp)
}

// ImportICS 从 iCalendar 导入派驻记录
// POST /api/v1/duty-assignments/import
//
// 支持两种方式：
//   - 文件上传: multipart/form-data, field="file"（employee_id/client_id 为 form 字段）
//   - URL 导入: application/json, body={"url": "...", "employee_id": "..."}
func (h *DutyHandler) ImportICS(c *gin.Context) {
	// 尝试文件上传方式
	file, _, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		employeeID := c.PostForm("employee_id")
		if employeeID == "" {
			response.BadRequest(c, 21001, "employee_id 不能为空")
			return
		}
		resp, err := h.svc.ImportICS(c.Request.Context(), file, employeeID, c.PostForm("client_id"))
		if err != nil {
			handleDutyError(c, err)
			return
		}
		response.Created(c, resp)
		return
	}

	// 尝试 URL 方式
	var req dto.ImportICSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21001, err.Error())
		return
	}
	if req.URL == "" {
		response.BadRequest(c, 21001, "请上传 ICS 文件或提供 ICS URL")
		return
	}

	body, err := service.FetchICSContent(req.URL)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 21002, "ICS URL 获取失败", err.Error())
		return
	}
	defer body.Close()

	resp, err := h.svc.ImportICS(c.Request.Context(), body, req.EmployeeID, req.ClientID)
	if err != nil {
		handleDutyError(c, err)
		return
	}
	response.Created(c, resp)
}

// handleDutyError 派驻模块业务错误 → HTTP 响应映射
func handleDutyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDutyEmployeeNotFound):
		response.NotFound(c, 21404, err.Error())
	case errors.Is(err, service.ErrDutyClientNotFound):
		response.NotFound(c, 21405, err.Error())
	case errors.Is(err, service.ErrDutyEndBeforeStart),
		errors.Is(err, service.ErrDutyICSParseFailed),
		errors.Is(err, service.ErrDutyICSEmpty):
		response.BadRequest(c, 21400, err.Error())
	case errors.Is(err, service.ErrDutyICSImportDisabled):
		response.Error(c, http.StatusForbidden, 21403, err.Error())
	default:
		response.InternalError(c)
	}
}
