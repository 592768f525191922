package dto

// ── 派驻记录 ──

// CreateDutyAssignmentRequest 创建派驻记录请求
type CreateDutyAssignmentRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	ClientID      *string `json:"client_id"   binding:"omitempty,uuid"`
	Agenda        string  `json:"agenda"      binding:"required,max=500"`
	StartDate     string  `json:"start_date"  binding:"required,datetime=2006-01-02"`
	EndDate       *string `json:"end_date"    binding:"omitempty,datetime=2006-01-02"`
	IsUnavailable *bool   `json:"is_unavailable" binding:"omitempty"` // 缺省为 true
}

// DutyAssignmentResponse 派驻记录响应
type DutyAssignmentResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	ClientID      string `json:"client_id,omitempty"`
	Agenda        string `json:"agenda"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date,omitempty"`
	IsUnavailable bool   `json:"is_unavailable"`
}

// ── ICS 导入 ──

// ImportICSRequest ICS 导入请求（URL 方式）
type ImportICSRequest struct {
	URL        string `json:"url"         binding:"omitempty,url"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	ClientID   string `json:"client_id"   binding:"omitempty,uuid"`
}

// ImportICSResponse ICS 导入响应
type ImportICSResponse struct {
	ImportedCount int                 `json:"imported_count"`
	Events        []ImportedDutyEvent `json:"events"`
}

// ImportedDutyEvent 导入的派驻事件
type ImportedDutyEvent struct {
	Agenda    string `json:"agenda"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}
