package dto

// ── 可用性看板（on-duty dashboard）──

// AvailabilityViewRequest 可用性聚合查询请求
// end_date 缺省时取 start_date（单日查询）；client_id 可选，用于聚焦单客户 KPI
type AvailabilityViewRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date"   binding:"omitempty"`
	ClientID  string `form:"client_id"  binding:"omitempty"`
}

// PeriodSummary 区间可用性汇总（来自数据层单次聚合，本层不重算）
type PeriodSummary struct {
	TotalAssignments int    `json:"total_assignments"`
	Available        int    `json:"available"`
	Unavailable      int    `json:"unavailable"`
	Unassigned       int    `json:"unassigned"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

// DutyRow 看板展示行
// ID 由 <employeeID>-<序号> 合成，仅在单次聚合内唯一，跨次不稳定
type DutyRow struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Agenda        string `json:"agenda"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	ClientName    string `json:"client_name"`
	IsPlaceholder bool   `json:"is_placeholder"`
	// Days 展示用工作日天数：start==end 时强制为 1（占位行恒为 0）
	Days int `json:"days"`
}

// ClientKPI 单客户拜访 KPI
type ClientKPI struct {
	ClientID         string `json:"client_id"`
	ClientName       string `json:"client_name"`
	TotalAssignments int    `json:"total_assignments"`
	UniqueEmployees  int    `json:"unique_employees"`
}

// AvailabilityViewResponse 单次聚合的完整结果快照
type AvailabilityViewResponse struct {
	Summary  PeriodSummary `json:"summary"`
	Rows     []DutyRow     `json:"rows"`
	KPIs     []ClientKPI   `json:"kpis"`
	Selected *ClientKPI    `json:"selected,omitempty"`
}

// ClientVisitReportResponse 单客户拜访报表响应
type ClientVisitReportResponse struct {
	TotalAssignments int    `json:"total_assignments"`
	UniqueEmployees  int    `json:"unique_employees"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}
