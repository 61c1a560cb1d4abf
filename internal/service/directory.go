package service

import (
	"context"

	"github.com/deppfellow/directory/internal/model"
	"github.com/deppfellow/directory/internal/repository"
	"github.com/rs/zerolog"
)

// Directory is the set of directory operations the HTTP layer depends on.
type Directory interface {
	FindAllEmployees(ctx context.Context) ([]model.EmployeeDetail, error)
	FindAllPossibleManagers(ctx context.Context, employeeID int64) ([]model.EmployeeName, error)
	CreateEmployee(ctx context.Context, e model.Employee) (model.InsertResult, error)
	RemoveEmployee(ctx context.Context, employeeID int64) (int64, error)
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) (int64, error)
	UpdateEmployeeManager(ctx context.Context, employeeID int64, managerID *int64) (int64, error)
	FindAllRoles(ctx context.Context) ([]model.RoleDetail, error)
	CreateRole(ctx context.Context, role model.Role) (model.InsertResult, error)
	RemoveRole(ctx context.Context, roleID int64) (int64, error)
	FindAllDepartments(ctx context.Context) ([]model.Department, error)
	ViewDepartmentBudgets(ctx context.Context) ([]model.DepartmentBudget, error)
	CreateDepartment(ctx context.Context, d model.Department) (model.InsertResult, error)
	RemoveDepartment(ctx context.Context, departmentID int64) (int64, error)
	FindAllEmployeesByDepartment(ctx context.Context, departmentID int64) ([]model.EmployeeInDepartment, error)
	FindAllEmployeesByManager(ctx context.Context, managerID int64) ([]model.EmployeeUnderManager, error)
}

var (
	_ Directory = (*DirectoryService)(nil)
	_ Directory = (*repository.DirectoryRepository)(nil)
)

// DirectoryService passes each call straight to the repository. It adds
// debug logging through the request logger carried by ctx and nothing else:
// no validation, no retries, no reshaping of rows or errors.
type DirectoryService struct {
	repo *repository.DirectoryRepository
}

func NewDirectoryService(repo *repository.DirectoryRepository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

func (s *DirectoryService) FindAllEmployees(ctx context.Context) ([]model.EmployeeDetail, error) {
	employees, err := s.repo.FindAllEmployees(ctx)
	logList(ctx, "find_all_employees", len(employees), err)
	return employees, err
}

func (s *DirectoryService) FindAllPossibleManagers(ctx context.Context, employeeID int64) ([]model.EmployeeName, error) {
	managers, err := s.repo.FindAllPossibleManagers(ctx, employeeID)
	logList(ctx, "find_all_possible_managers", len(managers), err)
	return managers, err
}

func (s *DirectoryService) CreateEmployee(ctx context.Context, e model.Employee) (model.InsertResult, error) {
	result, err := s.repo.CreateEmployee(ctx, e)
	logInsert(ctx, "create_employee", result, err)
	return result, err
}

func (s *DirectoryService) RemoveEmployee(ctx context.Context, employeeID int64) (int64, error) {
	affected, err := s.repo.RemoveEmployee(ctx, employeeID)
	logExec(ctx, "remove_employee", affected, err)
	return affected, err
}

func (s *DirectoryService) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) (int64, error) {
	affected, err := s.repo.UpdateEmployeeRole(ctx, employeeID, roleID)
	logExec(ctx, "update_employee_role", affected, err)
	return affected, err
}

func (s *DirectoryService) UpdateEmployeeManager(ctx context.Context, employeeID int64, managerID *int64) (int64, error) {
	affected, err := s.repo.UpdateEmployeeManager(ctx, employeeID, managerID)
	logExec(ctx, "update_employee_manager", affected, err)
	return affected, err
}

func (s *DirectoryService) FindAllRoles(ctx context.Context) ([]model.RoleDetail, error) {
	roles, err := s.repo.FindAllRoles(ctx)
	logList(ctx, "find_all_roles", len(roles), err)
	return roles, err
}

func (s *DirectoryService) CreateRole(ctx context.Context, role model.Role) (model.InsertResult, error) {
	result, err := s.repo.CreateRole(ctx, role)
	logInsert(ctx, "create_role", result, err)
	return result, err
}

func (s *DirectoryService) RemoveRole(ctx context.Context, roleID int64) (int64, error) {
	affected, err := s.repo.RemoveRole(ctx, roleID)
	logExec(ctx, "remove_role", affected, err)
	return affected, err
}

func (s *DirectoryService) FindAllDepartments(ctx context.Context) ([]model.Department, error) {
	departments, err := s.repo.FindAllDepartments(ctx)
	logList(ctx, "find_all_departments", len(departments), err)
	return departments, err
}

func (s *DirectoryService) ViewDepartmentBudgets(ctx context.Context) ([]model.DepartmentBudget, error) {
	budgets, err := s.repo.ViewDepartmentBudgets(ctx)
	logList(ctx, "view_department_budgets", len(budgets), err)
	return budgets, err
}

func (s *DirectoryService) CreateDepartment(ctx context.Context, d model.Department) (model.InsertResult, error) {
	result, err := s.repo.CreateDepartment(ctx, d)
	logInsert(ctx, "create_department", result, err)
	return result, err
}

func (s *DirectoryService) RemoveDepartment(ctx context.Context, departmentID int64) (int64, error) {
	affected, err := s.repo.RemoveDepartment(ctx, departmentID)
	logExec(ctx, "remove_department", affected, err)
	return affected, err
}

func (s *DirectoryService) FindAllEmployeesByDepartment(ctx context.Context, departmentID int64) ([]model.EmployeeInDepartment, error) {
	employees, err := s.repo.FindAllEmployeesByDepartment(ctx, departmentID)
	logList(ctx, "find_all_employees_by_department", len(employees), err)
	return employees, err
}

func (s *DirectoryService) FindAllEmployeesByManager(ctx context.Context, managerID int64) ([]model.EmployeeUnderManager, error) {
	employees, err := s.repo.FindAllEmployeesByManager(ctx, managerID)
	logList(ctx, "find_all_employees_by_manager", len(employees), err)
	return employees, err
}

func logList(ctx context.Context, operation string, count int, err error) {
	event := zerolog.Ctx(ctx).Debug().Str("operation", operation)
	if err != nil {
		event.Err(err).Msg("directory query failed")
		return
	}
	event.Int("rows", count).Msg("directory query")
}

func logInsert(ctx context.Context, operation string, result model.InsertResult, err error) {
	event := zerolog.Ctx(ctx).Debug().Str("operation", operation)
	if err != nil {
		event.Err(err).Msg("directory insert failed")
		return
	}
	event.Int64("id", result.ID).Msg("directory insert")
}

func logExec(ctx context.Context, operation string, affected int64, err error) {
	event := zerolog.Ctx(ctx).Debug().Str("operation", operation)
	if err != nil {
		event.Err(err).Msg("directory statement failed")
		return
	}
	event.Int64("rows_affected", affected).Msg("directory statement")
}
