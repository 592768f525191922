package repository

import (
	"context"

	"gorm.io/gorm"

	"hris/backend/internal/model"
)

// ProjectRepository 项目数据访问接口
type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	ListEmployeeProjects(ctx context.Context) ([]model.EmployeeProject, error)
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo 创建 ProjectRepository 实例
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) ListEmployeeProjects(ctx context.Context) ([]model.EmployeeProject, error) {
	var eps []model.EmployeeProject
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Project").
		Find(&eps).Error
	return eps, err
}
