package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hris/backend/internal/dto"
	"hris/backend/internal/service"
	"hris/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AvailabilityService ──

type mockAvailabilityService struct {
	viewResult  *dto.AvailabilityViewResponse
	viewErr     error
	snapshot    *dto.AvailabilityViewResponse
	reportRows  []dto.DutyRow
	reportErr   error
	visitResult *dto.ClientVisitReportResponse
	visitErr    error

	lastReq *dto.AvailabilityViewRequest
}

func (m *mockAvailabilityService) ComputeAvailabilityView(_ context.Context, req *dto.AvailabilityViewRequest) (*dto.AvailabilityViewResponse, error) {
	m.lastReq = req
	return m.viewResult, m.viewErr
}
func (m *mockAvailabilityService) LatestSnapshot() *dto.AvailabilityViewResponse {
	return m.snapshot
}
func (m *mockAvailabilityService) UnavailableReport(_ context.Context, _, _ string) ([]dto.DutyRow, error) {
	return m.reportRows, m.reportErr
}
func (m *mockAvailabilityService) ClientVisitReport(_ context.Context, _, _, _ string) (*dto.ClientVisitReportResponse, error) {
	return m.visitResult, m.visitErr
}

// ── Mock DutyService ──

type mockDutyService struct {
	createResult *dto.DutyAssignmentResponse
	createErr    error
	importResult *dto.ImportICSResponse
	importErr    error
}

func (m *mockDutyService) Create(_ context.Context, _ *dto.CreateDutyAssignmentRequest) (*dto.DutyAssignmentResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockDutyService) ImportICS(_ context.Context, _ io.Reader, _, _ string) (*dto.ImportICSResponse, error) {
	return m.importResult, m.importErr
}

// ── Mock RosterService ──

type mockRosterService struct {
	employees []dto.EmployeeResponse
	clients   []dto.ClientResponse
	listErr   error
}

func (m *mockRosterService) ListEmployees(_ context.Context) ([]dto.EmployeeResponse, error) {
	return m.employees, m.listErr
}
func (m *mockRosterService) ListDepartments(_ context.Context) ([]dto.DepartmentResponse, error) {
	return nil, m.listErr
}
func (m *mockRosterService) ListPositions(_ context.Context) ([]dto.PositionResponse, error) {
	return nil, m.listErr
}
func (m *mockRosterService) ListClients(_ context.Context) ([]dto.ClientResponse, error) {
	return m.clients, m.listErr
}
func (m *mockRosterService) ListProjects(_ context.Context) ([]dto.ProjectResponse, error) {
	return nil, m.listErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportAvailability(_ context.Context, _ *dto.AvailabilityViewRequest) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// ReportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestReportHandler_GetAvailabilityView_Success(t *testing.T) {
	mock := &mockAvailabilityService{
		viewResult: &dto.AvailabilityViewResponse{
			Summary: dto.PeriodSummary{TotalAssignments: 5, StartDate: "2025-08-18", EndDate: "2025-08-22"},
			Rows:    []dto.DutyRow{},
			KPIs:    []dto.ClientKPI{},
		},
	}
	h := NewReportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/availability?start_date=2025-08-18&end_date=2025-08-22&client_id=cli-1", nil)

	r := gin.New()
	r.GET("/reports/availability", h.GetAvailabilityView)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
	// 查询参数绑定到请求对象
	if mock.lastReq.StartDate != "2025-08-18" || mock.lastReq.ClientID != "cli-1" {
		t.Errorf("期望查询参数透传，实际=%+v", mock.lastReq)
	}
}

func TestReportHandler_GetAvailabilityView_MissingStartDate(t *testing.T) {
	h := NewReportHandler(&mockAvailabilityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/availability", nil)

	r := gin.New()
	r.GET("/reports/availability", h.GetAvailabilityView)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestReportHandler_GetUnavailableReport_Success(t *testing.T) {
	mock := &mockAvailabilityService{
		reportRows: []dto.DutyRow{{ID: "emp-1-0", EmployeeName: "张伟"}},
	}
	h := NewReportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/unavailable?start=2025-08-18&end=2025-08-22", nil)

	r := gin.New()
	r.GET("/reports/unavailable", h.GetUnavailableReport)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestReportHandler_GetUnavailableReport_MissingStart(t *testing.T) {
	h := NewReportHandler(&mockAvailabilityService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/unavailable", nil)

	r := gin.New()
	r.GET("/reports/unavailable", h.GetUnavailableReport)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestReportHandler_GetClientVisitReport_Success(t *testing.T) {
	mock := &mockAvailabilityService{
		visitResult: &dto.ClientVisitReportResponse{TotalAssignments: 4, UniqueEmployees: 2},
	}
	h := NewReportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/client-visits/cli-1?start_date=2025-08-18", nil)

	r := gin.New()
	r.GET("/reports/client-visits/:id", h.GetClientVisitReport)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// DutyHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDutyHandler_Create_Success(t *testing.T) {
	mock := &mockDutyService{
		createResult: &dto.DutyAssignmentResponse{ID: "da-1", EmployeeID: "550e8400-e29b-41d4-a716-446655440000"},
	}
	h := NewDutyHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/duty-assignments", jsonBody(dto.CreateDutyAssignmentRequest{
		EmployeeID: "550e8400-e29b-41d4-a716-446655440000",
		Agenda:     "客户现场支持",
		StartDate:  "2025-08-18",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/duty-assignments", h.CreateDutyAssignment)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestDutyHandler_Create_InvalidBody(t *testing.T) {
	h := NewDutyHandler(&mockDutyService{})

	w := httptest.NewRecorder()
	// 缺少必填字段
	req := httptest.NewRequest("POST", "/duty-assignments", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/duty-assignments", h.CreateDutyAssignment)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDutyHandler_Create_EmployeeNotFound(t *testing.T) {
	mock := &mockDutyService{createErr: service.ErrDutyEmployeeNotFound}
	h := NewDutyHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/duty-assignments", jsonBody(dto.CreateDutyAssignmentRequest{
		EmployeeID: "550e8400-e29b-41d4-a716-446655440000",
		Agenda:     "客户现场支持",
		StartDate:  "2025-08-18",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/duty-assignments", h.CreateDutyAssignment)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDutyHandler_Create_EndBeforeStart(t *testing.T) {
	mock := &mockDutyService{createErr: service.ErrDutyEndBeforeStart}
	h := NewDutyHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/duty-assignments", jsonBody(dto.CreateDutyAssignmentRequest{
		EmployeeID: "550e8400-e29b-41d4-a716-446655440000",
		Agenda:     "客户现场支持",
		StartDate:  "2025-08-22",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/duty-assignments", h.CreateDutyAssignment)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDutyHandler_ImportICS_FeatureDisabled(t *testing.T) {
	mock := &mockDutyService{importErr: service.ErrDutyICSImportDisabled}
	h := NewDutyHandler(mock)

	body := new(bytes.Buffer)
	body.WriteString("--boundary\r\n")
	body.WriteString("Content-Disposition: form-data; name=\"file\"; filename=\"duty.ics\"\r\n\r\n")
	body.WriteString("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	body.WriteString("--boundary\r\n")
	body.WriteString("Content-Disposition: form-data; name=\"employee_id\"\r\n\r\n")
	body.WriteString("550e8400-e29b-41d4-a716-446655440000\r\n")
	body.WriteString("--boundary--\r\n")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/duty-assignments/import", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=boundary")

	r := gin.New()
	r.POST("/duty-assignments/import", h.ImportICS)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestDutyHandler_ImportICS_FileUpload(t *testing.T) {
	mock := &mockDutyService{
		importResult: &dto.ImportICSResponse{ImportedCount: 2},
	}
	h := NewDutyHandler(mock)

	body := new(bytes.Buffer)
	body.WriteString("--boundary\r\n")
	body.WriteString("Content-Disposition: form-data; name=\"file\"; filename=\"duty.ics\"\r\n\r\n")
	body.WriteString("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	body.WriteString("--boundary\r\n")
	body.WriteString("Content-Disposition: form-data; name=\"employee_id\"\r\n\r\n")
	body.WriteString("550e8400-e29b-41d4-a716-446655440000\r\n")
	body.WriteString("--boundary--\r\n")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/duty-assignments/import", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=boundary")

	r := gin.New()
	r.POST("/duty-assignments/import", h.ImportICS)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestDutyHandler_ImportICS_NoFileNoURL(t *testing.T) {
	h := NewDutyHandler(&mockDutyService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/duty-assignments/import", jsonBody(dto.ImportICSRequest{
		EmployeeID: "550e8400-e29b-41d4-a716-446655440000",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/duty-assignments/import", h.ImportICS)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// RosterHandler Tests
// ═══════════════════════════════════════════════════════════

func TestRosterHandler_ListEmployees_Success(t *testing.T) {
	mock := &mockRosterService{
		employees: []dto.EmployeeResponse{{ID: "emp-1", Name: "张伟"}},
	}
	h := NewRosterHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/employees", nil)

	r := gin.New()
	r.GET("/employees", h.ListEmployees)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestRosterHandler_ListClients_ServiceError(t *testing.T) {
	mock := &mockRosterService{listErr: context.DeadlineExceeded}
	h := NewRosterHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/clients", nil)

	r := gin.New()
	r.GET("/clients", h.ListClients)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportAvailability_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("PK-fake-xlsx"),
		filename: "值班看板_2025-08-18_2025-08-22.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/availability?start_date=2025-08-18&end_date=2025-08-22", nil)

	r := gin.New()
	r.GET("/export/availability", h.ExportAvailability)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd == "" || !bytes.Contains([]byte(cd), []byte("filename*=UTF-8''")) {
		t.Errorf("expected RFC 5987 filename, got %s", cd)
	}
}

func TestExportHandler_ExportAvailability_MissingStartDate(t *testing.T) {
	h := NewExportHandler(&mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/availability", nil)

	r := gin.New()
	r.GET("/export/availability", h.ExportAvailability)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
