package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"hris/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestRosterService() (RosterService, *testRepos) {
	repo, mocks := newTestRepository()
	svc := NewRosterService(repo, zap.NewNop())
	return svc, mocks
}

// ── 列表测试 ──

func TestRosterService_ListEmployees(t *testing.T) {
	svc, mocks := setupTestRosterService()
	dept := &model.Department{DepartmentID: "dept-1", Name: "交付部"}
	mocks.employee.employees["emp-1"] = &model.Employee{
		EmployeeID: "emp-1", Name: "张伟", Department: dept,
	}

	result, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees 应成功: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("期望1名员工，实际=%d", len(result))
	}
	if result[0].Name != "张伟" || result[0].DepartmentName != "交付部" {
		t.Errorf("期望张伟/交付部，实际=%s/%s", result[0].Name, result[0].DepartmentName)
	}
}

func TestRosterService_ListEmployees_RepoError(t *testing.T) {
	svc, mocks := setupTestRosterService()
	mocks.employee.listErr = errors.New("db down")

	if _, err := svc.ListEmployees(context.Background()); err == nil {
		t.Error("期望数据层错误透出")
	}
}

func TestRosterService_ListClients(t *testing.T) {
	svc, mocks := setupTestRosterService()
	mocks.client.add("cli-1", "客户A")
	mocks.client.add("cli-2", "客户B")

	result, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients 应成功: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("期望2个客户，实际=%d", len(result))
	}
	if result[0].ID != "cli-1" || result[0].Name != "客户A" {
		t.Errorf("期望cli-1/客户A，实际=%s/%s", result[0].ID, result[0].Name)
	}
}

func TestRosterService_ListEmpty(t *testing.T) {
	svc, _ := setupTestRosterService()

	// 空花名册返回空切片而非 nil，JSON 序列化为 [] 而非 null
	result, err := svc.ListClients(context.Background())
	if err != nil {
		t.Fatalf("ListClients 应成功: %v", err)
	}
	if result == nil {
		t.Error("期望空切片而非 nil")
	}
}
