package service

import (
	"go.uber.org/zap"

	"hris/backend/config"
	"hris/backend/internal/repository"
	"hris/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Availability AvailabilityService
	Roster       RosterService
	Duty         DutyService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	availability := NewAvailabilityService(repo, rdb, cfg.Cache.VisitReportTTL, logger)
	return &Service{
		Availability: availability,
		Roster:       NewRosterService(repo, logger),
		Duty:         NewDutyService(cfg, repo, logger),
		Export:       NewExportService(availability, logger),
	}
}
