package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hris/backend/internal/dto"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 将一次可用性聚合的完整快照导出为 Excel (.xlsx)
//   - Sheet "值班明细"：汇总卡片 + 展示行表格；Sheet "客户KPI"：逐客户 KPI
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportAvailability 按区间与可选客户过滤导出可用性报表
	ExportAvailability(ctx context.Context, req *dto.AvailabilityViewRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	availability AvailabilityService
	logger       *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(availability AvailabilityService, logger *zap.Logger) ExportService {
	return &exportService{availability: availability, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportAvailability — 导出可用性报表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportAvailability(ctx context.Context, req *dto.AvailabilityViewRequest) (*bytes.Buffer, string, error) {
	// 1. 执行聚合趟（导出与看板共用同一引擎，口径一致）
	view, err := s.availability.ComputeAvailabilityView(ctx, req)
	if err != nil {
		return nil, "", err
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	const detailSheet = "值班明细"
	idx, err := f.NewSheet(detailSheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// ── 汇总卡片 ──
	f.SetCellValue(detailSheet, "A1", fmt.Sprintf("值班看板 %s ~ %s", view.Summary.StartDate, view.Summary.EndDate))
	f.MergeCell(detailSheet, "A1", "F1")
	f.SetCellStyle(detailSheet, "A1", "A1", headerStyle)

	summaryLabels := []struct {
		label string
		value int
	}{
		{"总派驻数", view.Summary.TotalAssignments},
		{"可用", view.Summary.Available},
		{"不可用", view.Summary.Unavailable},
		{"未派驻客户", view.Summary.Unassigned},
	}
	for i, item := range summaryLabels {
		col, _ := excelize.ColumnNumberToName(i*2 + 1)
		valCol, _ := excelize.ColumnNumberToName(i*2 + 2)
		f.SetCellValue(detailSheet, fmt.Sprintf("%s2", col), item.label)
		f.SetCellValue(detailSheet, fmt.Sprintf("%s2", valCol), item.value)
	}

	// ── 展示行表格 ──
	columns := []string{"员工", "日程", "开始日期", "结束日期", "工作日天数", "客户"}
	for i, name := range columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s4", col)
		f.SetCellValue(detailSheet, cell, name)
		f.SetCellStyle(detailSheet, cell, cell, headerStyle)
	}
	f.SetColWidth(detailSheet, "A", "A", 20)
	f.SetColWidth(detailSheet, "B", "B", 32)
	f.SetColWidth(detailSheet, "C", "D", 14)
	f.SetColWidth(detailSheet, "F", "F", 20)

	row := 5
	for _, r := range view.Rows {
		f.SetCellValue(detailSheet, fmt.Sprintf("A%d", row), r.EmployeeName)
		f.SetCellValue(detailSheet, fmt.Sprintf("B%d", row), r.Agenda)
		f.SetCellValue(detailSheet, fmt.Sprintf("C%d", row), r.StartDate)
		f.SetCellValue(detailSheet, fmt.Sprintf("D%d", row), r.EndDate)
		f.SetCellValue(detailSheet, fmt.Sprintf("E%d", row), r.Days)
		f.SetCellValue(detailSheet, fmt.Sprintf("F%d", row), r.ClientName)
		row++
	}

	// ── 客户 KPI 页 ──
	const kpiSheet = "客户KPI"
	if _, err := f.NewSheet(kpiSheet); err == nil {
		kpiColumns := []string{"客户", "派驻总数", "去重员工数"}
		for i, name := range kpiColumns {
			col, _ := excelize.ColumnNumberToName(i + 1)
			cell := fmt.Sprintf("%s1", col)
			f.SetCellValue(kpiSheet, cell, name)
			f.SetCellStyle(kpiSheet, cell, cell, headerStyle)
		}
		f.SetColWidth(kpiSheet, "A", "A", 24)

		for i, kpi := range view.KPIs {
			f.SetCellValue(kpiSheet, fmt.Sprintf("A%d", i+2), kpi.ClientName)
			f.SetCellValue(kpiSheet, fmt.Sprintf("B%d", i+2), kpi.TotalAssignments)
			f.SetCellValue(kpiSheet, fmt.Sprintf("C%d", i+2), kpi.UniqueEmployees)
		}
	}

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("值班看板_%s_%s.xlsx", view.Summary.StartDate, view.Summary.EndDate)
	return buf, filename, nil
}
