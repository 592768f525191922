package dto

// ── 花名册只读响应 ──

// EmployeeResponse 员工响应
type EmployeeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DepartmentID   string `json:"department_id,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
	PositionID     string `json:"position_id,omitempty"`
	PositionName   string `json:"position_name,omitempty"`
	ClientID       string `json:"client_id,omitempty"`
	ClientName     string `json:"client_name,omitempty"`
}

// DepartmentResponse 部门响应
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

// PositionResponse 职位响应
type PositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ClientResponse 客户响应
type ClientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectResponse 项目响应
type ProjectResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientID   string `json:"client_id"`
	ClientName string `json:"client_name,omitempty"`
}
