package repository

import (
	"context"

	"gorm.io/gorm"

	"hris/backend/internal/model"
)

// PositionRepository 职位数据访问接口
type PositionRepository interface {
	List(ctx context.Context) ([]model.Position, error)
}

type positionRepo struct {
	db *gorm.DB
}

// NewPositionRepo 创建 PositionRepository 实例
func NewPositionRepo(db *gorm.DB) PositionRepository {
	return &positionRepo{db: db}
}

func (r *positionRepo) List(ctx context.Context) ([]model.Position, error) {
	var positions []model.Position
	err := r.db.WithContext(ctx).Order("name ASC").Find(&positions).Error
	return positions, err
}
