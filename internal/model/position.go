package model

// Position 职位表 — 对应 positions
type Position struct {
	PositionID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"position_id"`
	Name       string `gorm:"type:varchar(100);not null"                     json:"name"`
	SoftDeleteModel
}

// TableName 指定表名
func (Position) TableName() string { return "positions" }
