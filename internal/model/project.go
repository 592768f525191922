package model

// Project 项目表 — 对应 projects
type Project struct {
	ProjectID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"project_id"`
	Name      string `gorm:"type:varchar(100);not null"                     json:"name"`
	ClientID  string `gorm:"type:uuid;not null"                             json:"client_id"`
	SoftDeleteModel

	// 关联
	Client *Client `gorm:"foreignKey:ClientID;references:ClientID" json:"client,omitempty"`
}

// TableName 指定表名
func (Project) TableName() string { return "projects" }

// EmployeeProject 员工-项目关联表 — 对应 employee_projects
type EmployeeProject struct {
	EmployeeID string `gorm:"type:uuid;primaryKey" json:"employee_id"`
	ProjectID  string `gorm:"type:uuid;primaryKey" json:"project_id"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Project  *Project  `gorm:"foreignKey:ProjectID;references:ProjectID"   json:"project,omitempty"`
}

// TableName 指定表名
func (EmployeeProject) TableName() string { return "employee_projects" }
