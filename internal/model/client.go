package model

// Client 客户表 — 对应 clients
type Client struct {
	ClientID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"client_id"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	SoftDeleteModel
}

// TableName 指定表名
func (Client) TableName() string { return "clients" }
