package handler

import "hris/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Report *ReportHandler
	Roster *RosterHandler
	Duty   *DutyHandler
	Export *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Report: NewReportHandler(svc.Availability),
		Roster: NewRosterHandler(svc.Roster),
		Duty:   NewDutyHandler(svc.Duty),
		Export: NewExportHandler(svc.Export),
	}
}
