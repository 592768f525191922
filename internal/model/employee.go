package model

// Employee 员工表 — 对应 employees
type Employee struct {
	EmployeeID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	DepartmentID *string `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	PositionID   *string `gorm:"type:uuid"                                      json:"position_id,omitempty"`
	ClientID     *string `gorm:"type:uuid"                                      json:"client_id,omitempty"` // 未派驻客户时为空
	SoftDeleteModel

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
	Position   *Position   `gorm:"foreignKey:PositionID;references:PositionID"     json:"position,omitempty"`
	Client     *Client     `gorm:"foreignKey:ClientID;references:ClientID"         json:"client,omitempty"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
