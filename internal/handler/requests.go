package handler

import (
	"github.com/deppfellow/directory/internal/model"
	"github.com/deppfellow/directory/internal/validation"
	"github.com/shopspring/decimal"
)

// ListRequest is the payload of collection endpoints that take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// IDRequest carries the :id path parameter.
type IDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	RoleID    *int64 `json:"role_id" validate:"omitempty,gt=0"`
	ManagerID *int64 `json:"manager_id" validate:"omitempty,gt=0"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateEmployeeRequest) toModel() model.Employee {
	return model.Employee{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		RoleID:    r.RoleID,
		ManagerID: r.ManagerID,
	}
}

type UpdateEmployeeRoleRequest struct {
	ID     int64 `param:"id" json:"-" validate:"required,gt=0"`
	RoleID int64 `json:"role_id" validate:"required,gt=0"`
}

func (r *UpdateEmployeeRoleRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateEmployeeManagerRequest sets or, with a null manager_id, clears the
// manager of an employee.
type UpdateEmployeeManagerRequest struct {
	ID        int64  `param:"id" json:"-" validate:"required,gt=0"`
	ManagerID *int64 `json:"manager_id" validate:"omitempty,gt=0"`
}

func (r *UpdateEmployeeManagerRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.ManagerID != nil && *r.ManagerID == r.ID {
		return validation.CustomValidationErrors{
			{Field: "manager_id", Message: "an employee cannot manage themselves"},
		}
	}
	return nil
}

// CreateRoleRequest requires an explicit salary; a missing or null salary
// is rejected rather than stored as zero.
type CreateRoleRequest struct {
	Title        string              `json:"title" validate:"required,max=30"`
	Salary       decimal.NullDecimal `json:"salary"`
	DepartmentID *int64              `json:"department_id" validate:"omitempty,gt=0"`
}

func (r *CreateRoleRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if !r.Salary.Valid {
		return validation.CustomValidationErrors{
			{Field: "salary", Message: "is required"},
		}
	}
	if r.Salary.Decimal.IsNegative() {
		return validation.CustomValidationErrors{
			{Field: "salary", Message: "must not be negative"},
		}
	}
	return nil
}

func (r *CreateRoleRequest) toModel() model.Role {
	return model.Role{
		Title:        r.Title,
		Salary:       r.Salary.Decimal,
		DepartmentID: r.DepartmentID,
	}
}

type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,max=30"`
}

func (r *CreateDepartmentRequest) Validate() error {
	return validation.Struct(r)
}

// ExecResponse reports how many rows an update or delete touched.
type ExecResponse struct {
	RowsAffected int64 `json:"rows_affected"`
}
