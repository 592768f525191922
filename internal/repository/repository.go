package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Employee       EmployeeRepository
	Department     DepartmentRepository
	Position       PositionRepository
	Client         ClientRepository
	Project        ProjectRepository
	DutyAssignment DutyAssignmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Employee:       NewEmployeeRepo(db),
		Department:     NewDepartmentRepo(db),
		Position:       NewPositionRepo(db),
		Client:         NewClientRepo(db),
		Project:        NewProjectRepo(db),
		DutyAssignment: NewDutyAssignmentRepo(db),
	}
}
