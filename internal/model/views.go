package model

import "github.com/shopspring/decimal"

// EmployeeDetail is one row of the full employee listing. Every column coming
// from a joined table may be NULL.
type EmployeeDetail struct {
	ID         int64            `json:"id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Title      *string          `json:"title"`
	Department *string          `json:"department"`
	Salary     *decimal.Decimal `json:"salary"`
	Manager    *string          `json:"manager"`
}

// EmployeeName is a candidate returned by the possible managers query.
type EmployeeName struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RoleDetail is a role joined with the name of its department.
type RoleDetail struct {
	ID         int64           `json:"id"`
	Title      string          `json:"title"`
	Department *string         `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
}

// DepartmentBudget is the sum of the salaries held by the employees of one
// department. Employees without a role or whose role has no department are
// grouped under a row with a nil ID and Name.
type DepartmentBudget struct {
	ID             *int64              `json:"id"`
	Name           *string             `json:"name"`
	UtilizedBudget decimal.NullDecimal `json:"utilized_budget"`
}

// EmployeeInDepartment is one row of the per-department employee listing.
type EmployeeInDepartment struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Title     *string `json:"title"`
}

// EmployeeUnderManager is one direct report of a manager.
type EmployeeUnderManager struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Department *string `json:"department"`
	Title      *string `json:"title"`
}
