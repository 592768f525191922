package service

import (
	"context"

	"go.uber.org/zap"

	"hris/backend/internal/dto"
	"hris/backend/internal/model"
	"hris/backend/internal/repository"
)

// RosterService 花名册只读业务接口
// 看板及日历导入依赖的员工/部门/职位/客户/项目列表；记录维护不在本服务范围
type RosterService interface {
	ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error)
	ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	ListPositions(ctx context.Context) ([]dto.PositionResponse, error)
	ListClients(ctx context.Context) ([]dto.ClientResponse, error)
	ListProjects(ctx context.Context) ([]dto.ProjectResponse, error)
}

type rosterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(repo *repository.Repository, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, logger: logger}
}

func (s *rosterService) ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, toEmployeeResponse(&employees[i]))
	}
	return result, nil
}

func (s *rosterService) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("查询部门列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		result = append(result, dto.DepartmentResponse{
			ID:          d.DepartmentID,
			Name:        d.Name,
			Description: d.Description,
			IsActive:    d.IsActive,
		})
	}
	return result, nil
}

func (s *rosterService) ListPositions(ctx context.Context) ([]dto.PositionResponse, error) {
	positions, err := s.repo.Position.List(ctx)
	if err != nil {
		s.logger.Error("查询职位列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PositionResponse, 0, len(positions))
	for _, p := range positions {
		result = append(result, dto.PositionResponse{ID: p.PositionID, Name: p.Name})
	}
	return result, nil
}

func (s *rosterService) ListClients(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.repo.Client.List(ctx)
	if err != nil {
		s.logger.Error("查询客户列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		result = append(result, dto.ClientResponse{ID: c.ClientID, Name: c.Name})
	}
	return result, nil
}

func (s *rosterService) ListProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	projects, err := s.repo.Project.List(ctx)
	if err != nil {
		s.logger.Error("查询项目列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp := dto.ProjectResponse{
			ID:       p.ProjectID,
			Name:     p.Name,
			ClientID: p.ClientID,
		}
		if p.Client != nil {
			resp.ClientName = p.Client.Name
		}
		result = append(result, resp)
	}
	return result, nil
}

// ── 响应转换器 ──

func toEmployeeResponse(e *model.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:   e.EmployeeID,
		Name: e.Name,
	}
	if e.DepartmentID != nil {
		resp.DepartmentID = *e.DepartmentID
	}
	if e.Department != nil {
		resp.DepartmentName = e.Department.Name
	}
	if e.PositionID != nil {
		resp.PositionID = *e.PositionID
	}
	if e.Position != nil {
		resp.PositionName = e.Position.Name
	}
	if e.ClientID != nil {
		resp.ClientID = *e.ClientID
	}
	if e.Client != nil {
		resp.ClientName = e.Client.Name
	}
	return resp
}
