package handler

import (
	"github.com/deppfellow/directory/internal/model"
	"github.com/deppfellow/directory/internal/server"
	"github.com/deppfellow/directory/internal/service"
	"github.com/labstack/echo/v4"
)

// DirectoryHandler exposes the directory operations over HTTP. Every method
// maps one route onto one service call.
type DirectoryHandler struct {
	Handler
	directory service.Directory
}

func NewDirectoryHandler(s *server.Server, directory service.Directory) *DirectoryHandler {
	return &DirectoryHandler{
		Handler:   NewHandler(s),
		directory: directory,
	}
}

func (h *DirectoryHandler) FindAllEmployees(c echo.Context, _ *ListRequest) ([]model.EmployeeDetail, error) {
	return h.directory.FindAllEmployees(c.Request().Context())
}

func (h *DirectoryHandler) FindAllPossibleManagers(c echo.Context, req *IDRequest) ([]model.EmployeeName, error) {
	return h.directory.FindAllPossibleManagers(c.Request().Context(), req.ID)
}

func (h *DirectoryHandler) CreateEmployee(c echo.Context, req *CreateEmployeeRequest) (model.InsertResult, error) {
	return h.directory.CreateEmployee(c.Request().Context(), req.toModel())
}

func (h *DirectoryHandler) RemoveEmployee(c echo.Context, req *IDRequest) (ExecResponse, error) {
	return execResponse(h.directory.RemoveEmployee(c.Request().Context(), req.ID))
}

func (h *DirectoryHandler) UpdateEmployeeRole(c echo.Context, req *UpdateEmployeeRoleRequest) (ExecResponse, error) {
	return execResponse(h.directory.UpdateEmployeeRole(c.Request().Context(), req.ID, req.RoleID))
}

func (h *DirectoryHandler) UpdateEmployeeManager(c echo.Context, req *UpdateEmployeeManagerRequest) (ExecResponse, error) {
	return execResponse(h.directory.UpdateEmployeeManager(c.Request().Context(), req.ID, req.ManagerID))
}

func (h *DirectoryHandler) FindAllRoles(c echo.Context, _ *ListRequest) ([]model.RoleDetail, error) {
	return h.directory.FindAllRoles(c.Request().Context())
}

func (h *DirectoryHandler) CreateRole(c echo.Context, req *CreateRoleRequest) (model.InsertResult, error) {
	return h.directory.CreateRole(c.Request().Context(), req.toModel())
}

func (h *DirectoryHandler) RemoveRole(c echo.Context, req *IDRequest) (ExecResponse, error) {
	return execResponse(h.directory.RemoveRole(c.Request().Context(), req.ID))
}

func (h *DirectoryHandler) FindAllDepartments(c echo.Context, _ *ListRequest) ([]model.Department, error) {
	return h.directory.FindAllDepartments(c.Request().Context())
}

func (h *DirectoryHandler) ViewDepartmentBudgets(c echo.Context, _ *ListRequest) ([]model.DepartmentBudget, error) {
	return h.directory.ViewDepartmentBudgets(c.Request().Context())
}

func (h *DirectoryHandler) CreateDepartment(c echo.Context, req *CreateDepartmentRequest) (model.InsertResult, error) {
	return h.directory.CreateDepartment(c.Request().Context(), model.Department{Name: req.Name})
}

func (h *DirectoryHandler) RemoveDepartment(c echo.Context, req *IDRequest) (ExecResponse, error) {
	return execResponse(h.directory.RemoveDepartment(c.Request().Context(), req.ID))
}

func (h *DirectoryHandler) FindAllEmployeesByDepartment(c echo.Context, req *IDRequest) ([]model.EmployeeInDepartment, error) {
	return h.directory.FindAllEmployeesByDepartment(c.Request().Context(), req.ID)
}

func (h *DirectoryHandler) FindAllEmployeesByManager(c echo.Context, req *IDRequest) ([]model.EmployeeUnderManager, error) {
	return h.directory.FindAllEmployeesByManager(c.Request().Context(), req.ID)
}

func execResponse(affected int64, err error) (ExecResponse, error) {
	if err != nil {
		return ExecResponse{}, err
	}
	return ExecResponse{RowsAffected: affected}, nil
}
