package service

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hris/backend/config"
	"hris/backend/internal/dto"
	"hris/backend/internal/model"
	"hris/backend/internal/repository"
)

// ── 派驻模块业务错误 ──

var (
	ErrDutyEmployeeNotFound  = errors.New("员工不存在")
	ErrDutyClientNotFound    = errors.New("客户不存在")
	ErrDutyEndBeforeStart    = errors.New("结束日期早于开始日期")
	ErrDutyICSParseFailed    = errors.New("ICS 文件解析失败")
	ErrDutyICSEmpty          = errors.New("ICS 文件中未发现有效派驻事件")
	ErrDutyICSImportDisabled = errors.New("ICS 导入功能未启用")
)

// DutyService 派驻记录业务接口
//
// 设计说明：
//   - 派驻记录是聚合引擎的数据来源；Create 与 ImportICS 是仅有的写入口
//   - ICS 导入将日历中的全天事件批量转为派驻记录（每个 VEVENT 一条）
type DutyService interface {
	// Create 创建单条派驻记录
	Create(ctx context.Context, req *dto.CreateDutyAssignmentRequest) (*dto.DutyAssignmentResponse, error)
	// ImportICS 从 iCalendar 数据流批量导入派驻记录
	ImportICS(ctx context.Context, reader io.Reader, employeeID, clientID string) (*dto.ImportICSResponse, error)
}

type dutyService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDutyService 创建 DutyService 实例
func NewDutyService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) DutyService {
	return &dutyService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *dutyService) Create(ctx context.Context, req *dto.CreateDutyAssignmentRequest) (*dto.DutyAssignmentResponse, error) {
	// 校验员工存在
	if _, err := s.repo.Employee.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDutyEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	// 校验客户存在（可选字段）
	if req.ClientID != nil {
		if _, err := s.repo.Client.GetByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDutyClientNotFound
			}
			return nil, err
		}
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, err
	}

	da := model.DutyAssignment{
		EmployeeID:    req.EmployeeID,
		ClientID:      req.ClientID,
		Agenda:        req.Agenda,
		StartDate:     startDate,
		IsUnavailable: true,
	}
	if req.IsUnavailable != nil {
		da.IsUnavailable = *req.IsUnavailable
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, err
		}
		if endDate.Before(startDate) {
			return nil, ErrDutyEndBeforeStart
		}
		da.EndDate = &endDate
	}

	if err := s.repo.DutyAssignment.Create(ctx, &da); err != nil {
		s.logger.Error("创建派驻记录失败", zap.Error(err))
		return nil, err
	}

	resp := toDutyAssignmentResponse(&da)
	return &resp, nil
}

// ────────────────────── ImportICS ──────────────────────

func (s *dutyService) ImportICS(ctx context.Context, reader io.Reader, employeeID, clientID string) (*dto.ImportICSResponse, error) {
	if !s.cfg.Feature.ICSImportEnabled {
		return nil, ErrDutyICSImportDisabled
	}

	// 校验员工存在
	if _, err := s.repo.Employee.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDutyEmployeeNotFound
		}
		return nil, err
	}

	var clientRef *string
	if clientID != "" {
		if _, err := s.repo.Client.GetByID(ctx, clientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDutyClientNotFound
			}
			return nil, err
		}
		clientRef = &clientID
	}

	// 解析 ICS 为派驻区间
	periods, err := ParseDutyICS(reader)
	if err != nil {
		s.logger.Error("ICS 解析失败", zap.Error(err))
		return nil, ErrDutyICSParseFailed
	}
	if len(periods) == 0 {
		return nil, ErrDutyICSEmpty
	}

	// 批量入库
	assignments := make([]model.DutyAssignment, 0, len(periods))
	events := make([]dto.ImportedDutyEvent, 0, len(periods))
	for _, p := range periods {
		da := model.DutyAssignment{
			EmployeeID:    employeeID,
			ClientID:      clientRef,
			Agenda:        p.Agenda,
			StartDate:     p.Start,
			IsUnavailable: true,
		}
		evt := dto.ImportedDutyEvent{
			Agenda:    p.Agenda,
			StartDate: p.Start.Format("2006-01-02"),
		}
		if !p.End.Equal(p.Start) {
			end := p.End
			da.EndDate = &end
			evt.EndDate = end.Format("2006-01-02")
		}
		assignments = append(assignments, da)
		events = append(events, evt)
	}

	if err := s.repo.DutyAssignment.BatchCreate(ctx, assignments); err != nil {
		s.logger.Error("派驻记录批量入库失败", zap.Error(err))
		return nil, err
	}

	return &dto.ImportICSResponse{
		ImportedCount: len(assignments),
		Events:        events,
	}, nil
}

// ── 响应转换器 ──

func toDutyAssignmentResponse(da *model.DutyAssignment) dto.DutyAssignmentResponse {
	resp := dto.DutyAssignmentResponse{
		ID:            da.DutyAssignmentID,
		EmployeeID:    da.EmployeeID,
		Agenda:        da.Agenda,
		StartDate:     da.StartDate.Format("2006-01-02"),
		IsUnavailable: da.IsUnavailable,
	}
	if da.ClientID != nil {
		resp.ClientID = *da.ClientID
	}
	if da.EndDate != nil {
		resp.EndDate = da.EndDate.Format("2006-01-02")
	}
	return resp
}
