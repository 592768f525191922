package model

import "time"

// DutyAssignment 派驻/值班记录表 — 对应 duty_assignments
// 一条记录表示员工在 [StartDate, EndDate] 期间因任务派驻而不可用；
// EndDate 为空表示单日任务（与 StartDate 相同）
type DutyAssignment struct {
	DutyAssignmentID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"duty_assignment_id"`
	EmployeeID       string     `gorm:"type:uuid;not null"                             json:"employee_id"`
	ClientID         *string    `gorm:"type:uuid"                                      json:"client_id,omitempty"`
	Agenda           string     `gorm:"type:text;not null"                             json:"agenda"`
	StartDate        time.Time  `gorm:"type:date;not null"                             json:"start_date"`
	EndDate          *time.Time `gorm:"type:date"                                      json:"end_date,omitempty"`
	IsUnavailable    bool       `gorm:"not null;default:true"                          json:"is_unavailable"`
	SoftDeleteModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Client   *Client   `gorm:"foreignKey:ClientID;references:ClientID"     json:"client,omitempty"`
}

// TableName 指定表名
func (DutyAssignment) TableName() string { return "duty_assignments" }
