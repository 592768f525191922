package handler

import (
	"github.com/gin-gonic/gin"

	"hris/backend/internal/service"
	"hris/backend/pkg/response"
)

// RosterHandler 花名册只读 Handler
type RosterHandler struct {
	svc service.RosterService
}

// NewRosterHandler 创建 RosterHandler 实例
func NewRosterHandler(svc service.RosterService) *RosterHandler {
	return &RosterHandler{svc: svc}
}

// ListEmployees 员工列表
// GET /api/v1/employees
func (h *RosterHandler) ListEmployees(c *gin.Context) {
	resp, err := h.svc.ListEmployees(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// ListDepartments 部门列表
// GET /api/v1/departments
func (h *RosterHandler) ListDepartments(c *gin.Context) {
	resp, err := h.svc.ListDepartments(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// ListPositions 职位列表
// GET /api/v1/positions
func (h *RosterHandler) ListPositions(c *gin.Context) {
	resp, err := h.svc.ListPositions(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// ListClients 客户列表
// GET /api/v1/clients
func (h *RosterHandler) ListClients(c *gin.Context) {
	resp, err := h.svc.ListClients(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// ListProjects 项目列表
// GET /api/v1/projects
func (h *RosterHandler) ListProjects(c *gin.Context) {
	resp, err := h.svc.ListProjects(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}
