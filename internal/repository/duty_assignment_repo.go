package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hris/backend/internal/model"
)

// ── 报表查询行（边界处完成强类型解码，日期统一为 YYYY-MM-DD 字符串）──

// UnavailableRecord 区间内不可用/派驻记录（含员工与客户名）
type UnavailableRecord struct {
	EmployeeID   string `gorm:"column:employee_id"`
	EmployeeName string `gorm:"column:employee_name"`
	Agenda       string `gorm:"column:agenda"`
	StartDate    string `gorm:"column:start_date"` // YYYY-MM-DD
	EndDate      string `gorm:"column:end_date"`   // YYYY-MM-DD；无结束日期时为空串
	ClientName   string `gorm:"column:client_name"`
}

// PeriodSummary 区间可用性汇总（数据库单次聚合，核心层不得自行重算）
type PeriodSummary struct {
	TotalAssignments int `gorm:"column:total_assignments"`
	Available        int `gorm:"column:available"`
	Unavailable      int `gorm:"column:unavailable"`
	Unassigned       int `gorm:"column:unassigned"`
}

// ClientVisitReport 单客户拜访报表
type ClientVisitReport struct {
	TotalAssignments int `gorm:"column:total_assignments"`
	UniqueEmployees  int `gorm:"column:unique_employees"`
}

// DutyAssignmentRepository 派驻记录数据访问接口
type DutyAssignmentRepository interface {
	Create(ctx context.Context, da *model.DutyAssignment) error
	BatchCreate(ctx context.Context, das []model.DutyAssignment) error
	// ListUnavailableInRange 列出与 [start, end] 区间重叠的不可用记录，按开始日期升序
	ListUnavailableInRange(ctx context.Context, start, end string) ([]UnavailableRecord, error)
	// AvailabilitySummary 区间汇总：总派驻数 / 可用 / 不可用 / 未派驻客户
	AvailabilitySummary(ctx context.Context, start, end string) (*PeriodSummary, error)
	// ClientVisitReport 指定客户在区间内的派驻总数与去重员工数
	ClientVisitReport(ctx context.Context, clientID, start, end string) (*ClientVisitReport, error)
}

type dutyAssignmentRepo struct {
	db *gorm.DB
}

// NewDutyAssignmentRepo 创建 DutyAssignmentRepository 实例
func NewDutyAssignmentRepo(db *gorm.DB) DutyAssignmentRepository {
	return &dutyAssignmentRepo{db: db}
}

func (r *dutyAssignmentRepo) Create(ctx context.Context, da *model.DutyAssignment) error {
	return r.db.WithContext(ctx).Create(da).Error
}

func (r *dutyAssignmentRepo) BatchCreate(ctx context.Context, das []model.DutyAssignment) error {
	if len(das) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(das, 100).Error
}

// 区间重叠条件：start_date <= 区间结束 且 COALESCE(end_date, start_date) >= 区间开始
const overlapCond = "da.start_date <= ? AND COALESCE(da.end_date, da.start_date) >= ?"

func (r *dutyAssignmentRepo) ListUnavailableInRange(ctx context.Context, start, end string) ([]UnavailableRecord, error) {
	var rows []struct {
		EmployeeID   string
		EmployeeName string
		Agenda       string
		StartDate    time.Time
		EndDate      *time.Time
		ClientName   *string
	}

	err := r.db.WithContext(ctx).
		Table("duty_assignments AS da").
		Select("da.employee_id, e.name AS employee_name, da.agenda, da.start_date, da.end_date, c.name AS client_name").
		Joins("JOIN employees e ON e.employee_id = da.employee_id").
		Joins("LEFT JOIN clients c ON c.client_id = da.client_id").
		Where("da.is_unavailable = ?", true).
		Where("da.deleted_at IS NULL").
		Where(overlapCond, end, start).
		Order("da.start_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// 边界解码：日期统一切为 YYYY-MM-DD，可空字段落为空串
	records := make([]UnavailableRecord, 0, len(rows))
	for _, row := range rows {
		rec := UnavailableRecord{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			Agenda:       row.Agenda,
			StartDate:    row.StartDate.Format("2006-01-02"),
		}
		if row.EndDate != nil {
			rec.EndDate = row.EndDate.Format("2006-01-02")
		}
		if row.ClientName != nil {
			rec.ClientName = *row.ClientName
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *dutyAssignmentRepo) AvailabilitySummary(ctx context.Context, start, end string) (*PeriodSummary, error) {
	var summary PeriodSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*)
			   FROM duty_assignments da
			  WHERE da.deleted_at IS NULL
			    AND da.start_date <= ? AND COALESCE(da.end_date, da.start_date) >= ?
			) AS total_assignments,
			(SELECT COUNT(DISTINCT da.employee_id)
			   FROM duty_assignments da
			  WHERE da.is_unavailable AND da.deleted_at IS NULL
			    AND da.start_date <= ? AND COALESCE(da.end_date, da.start_date) >= ?
			) AS unavailable,
			(SELECT COUNT(*) FROM employees e
			  WHERE e.deleted_at IS NULL
			    AND NOT EXISTS (
				SELECT 1 FROM duty_assignments da
				 WHERE da.employee_id = e.employee_id
				   AND da.is_unavailable AND da.deleted_at IS NULL
				   AND da.start_date <= ? AND COALESCE(da.end_date, da.start_date) >= ?
			    )
			) AS available,
			(SELECT COUNT(*) FROM employees e
			  WHERE e.deleted_at IS NULL AND e.client_id IS NULL
			) AS unassigned`,
		end, start, end, start, end, start,
	).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *dutyAssignmentRepo) ClientVisitReport(ctx context.Context, clientID, start, end string) (*ClientVisitReport, error) {
	var report ClientVisitReport
	err := r.db.WithContext(ctx).
		Table("duty_assignments AS da").
		Select("COUNT(*) AS total_assignments, COUNT(DISTINCT da.employee_id) AS unique_employees").
		Where("da.client_id = ?", clientID).
		Where("da.deleted_at IS NULL").
		Where(overlapCond, end, start).
		Scan(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}
