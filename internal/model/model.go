// Package model defines the records stored in the directory schema and the
// read projections returned by the directory queries.
//
// Nullable columns are pointers so that a missing manager or role is nil
// rather than a zero value that could be mistaken for a real id.
package model

import "github.com/shopspring/decimal"

// Department is a row of the department table.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=30"`
}

// Role is a row of the role table.
type Role struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title" validate:"required,max=30"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID *int64          `json:"department_id"`
}

// Employee is a row of the employee table.
type Employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	RoleID    *int64 `json:"role_id"`
	ManagerID *int64 `json:"manager_id"`
}

// InsertResult is what a create operation reports back: the id assigned by
// the database and the number of rows the statement touched.
type InsertResult struct {
	ID           int64 `json:"id"`
	RowsAffected int64 `json:"rows_affected"`
}
