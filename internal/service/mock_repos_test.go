package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hris/backend/internal/model"
	"hris/backend/internal/repository"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	listErr   error
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) add(id, name string) {
	m.employees[id] = &model.Employee{EmployeeID: id, Name: name}
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

// ── Mock ClientRepository ──

type mockClientRepo struct {
	clients []model.Client
	listErr error
}

func newMockClientRepo() *mockClientRepo {
	return &mockClientRepo{}
}

func (m *mockClientRepo) add(id, name string) {
	m.clients = append(m.clients, model.Client{ClientID: id, Name: name})
}

func (m *mockClientRepo) List(_ context.Context) ([]model.Client, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.clients, nil
}

func (m *mockClientRepo) GetByID(_ context.Context, id string) (*model.Client, error) {
	for i := range m.clients {
		if m.clients[i].ClientID == id {
			return &m.clients[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	departments []model.Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{}
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	return m.departments, nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	for i := range m.departments {
		if m.departments[i].DepartmentID == id {
			return &m.departments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock PositionRepository ──

type mockPositionRepo struct {
	positions []model.Position
}

func newMockPositionRepo() *mockPositionRepo {
	return &mockPositionRepo{}
}

func (m *mockPositionRepo) List(_ context.Context) ([]model.Position, error) {
	return m.positions, nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects         []model.Project
	employeeProjects []model.EmployeeProject
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{}
}

func (m *mockProjectRepo) List(_ context.Context) ([]model.Project, error) {
	return m.projects, nil
}

func (m *mockProjectRepo) ListEmployeeProjects(_ context.Context) ([]model.EmployeeProject, error) {
	return m.employeeProjects, nil
}

// ── Mock DutyAssignmentRepository ──
//
// visitReports 按客户 ID 存放拜访报表；visitErrClients 中的客户查询
// 必定失败，用于验证单客户失败隔离。

type mockDutyAssignmentRepo struct {
	created []model.DutyAssignment

	records    []repository.UnavailableRecord
	recordsErr error

	summary    *repository.PeriodSummary
	summaryErr error

	visitReports    map[string]*repository.ClientVisitReport
	visitErrClients map[string]bool
}

func newMockDutyAssignmentRepo() *mockDutyAssignmentRepo {
	return &mockDutyAssignmentRepo{
		visitReports:    make(map[string]*repository.ClientVisitReport),
		visitErrClients: make(map[string]bool),
	}
}

func (m *mockDutyAssignmentRepo) Create(_ context.Context, da *model.DutyAssignment) error {
	if da.DutyAssignmentID == "" {
		da.DutyAssignmentID = fmt.Sprintf("da-%d", len(m.created)+1)
	}
	m.created = append(m.created, *da)
	return nil
}

func (m *mockDutyAssignmentRepo) BatchCreate(_ context.Context, das []model.DutyAssignment) error {
	m.created = append(m.created, das...)
	return nil
}

func (m *mockDutyAssignmentRepo) ListUnavailableInRange(_ context.Context, _, _ string) ([]repository.UnavailableRecord, error) {
	if m.recordsErr != nil {
		return nil, m.recordsErr
	}
	return m.records, nil
}

func (m *mockDutyAssignmentRepo) AvailabilitySummary(_ context.Context, _, _ string) (*repository.PeriodSummary, error) {
	if m.summaryErr != nil {
		return nil, m.summaryErr
	}
	if m.summary == nil {
		return &repository.PeriodSummary{}, nil
	}
	return m.summary, nil
}

func (m *mockDutyAssignmentRepo) ClientVisitReport(_ context.Context, clientID, _, _ string) (*repository.ClientVisitReport, error) {
	if m.visitErrClients[clientID] {
		return nil, errors.New("拜访报表查询失败")
	}
	if r, ok := m.visitReports[clientID]; ok {
		return r, nil
	}
	return &repository.ClientVisitReport{}, nil
}

// ── 测试用 Repository 组装 ──

type testRepos struct {
	employee *mockEmployeeRepo
	client   *mockClientRepo
	duty     *mockDutyAssignmentRepo
}

func newTestRepository() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		employee: newMockEmployeeRepo(),
		client:   newMockClientRepo(),
		duty:     newMockDutyAssignmentRepo(),
	}
	repo := &repository.Repository{
		Employee:       mocks.employee,
		Department:     newMockDepartmentRepo(),
		Position:       newMockPositionRepo(),
		Client:         mocks.client,
		Project:        newMockProjectRepo(),
		DutyAssignment: mocks.duty,
	}
	return repo, mocks
}
