package repository

import (
	"context"

	"gorm.io/gorm"

	"hris/backend/internal/model"
)

// ClientRef 客户引用（KPI 扇出的轻量输入）
type ClientRef struct {
	ID   string
	Name string
}

// ClientRepository 客户数据访问接口
type ClientRepository interface {
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id string) (*model.Client, error)
}

type clientRepo struct {
	db *gorm.DB
}

// NewClientRepo 创建 ClientRepository 实例
func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (*model.Client, error) {
	var client model.Client
	err := r.db.WithContext(ctx).Where("client_id = ?", id).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}
