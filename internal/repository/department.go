package repository

import (
	"context"

	"github.com/deppfellow/directory/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	findAllDepartmentsQuery = `
SELECT department.id, department.name
FROM department
ORDER BY department.id`

	// Employees are the driving table: a department nobody works in has no
	// row, and employees without a role land in a NULL department group.
	viewDepartmentBudgetsQuery = `
SELECT department.id, department.name, SUM(role.salary) AS utilized_budget
FROM employee
LEFT JOIN role ON employee.role_id = role.id
LEFT JOIN department ON role.department_id = department.id
GROUP BY department.id, department.name
ORDER BY department.id`

	createDepartmentQuery = `
INSERT INTO department (name)
VALUES ($1)
RETURNING id`

	removeDepartmentQuery = `DELETE FROM department WHERE id = $1`
)

// FindAllDepartments lists every department ordered by id.
func (r *DirectoryRepository) FindAllDepartments(ctx context.Context) ([]model.Department, error) {
	rows, err := r.db.Query(ctx, findAllDepartmentsQuery)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Department, error) {
		var d model.Department
		err := row.Scan(&d.ID, &d.Name)
		return d, err
	})
}

// ViewDepartmentBudgets sums, per department, the salaries of the roles
// currently held by employees.
func (r *DirectoryRepository) ViewDepartmentBudgets(ctx context.Context) ([]model.DepartmentBudget, error) {
	rows, err := r.db.Query(ctx, viewDepartmentBudgetsQuery)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.DepartmentBudget, error) {
		var b model.DepartmentBudget
		err := row.Scan(&b.ID, &b.Name, &b.UtilizedBudget)
		return b, err
	})
}

// CreateDepartment inserts d and reports the id assigned to it.
func (r *DirectoryRepository) CreateDepartment(ctx context.Context, d model.Department) (model.InsertResult, error) {
	return r.insert(ctx, createDepartmentQuery, d.Name)
}

// RemoveDepartment deletes a department together with its roles.
func (r *DirectoryRepository) RemoveDepartment(ctx context.Context, departmentID int64) (int64, error) {
	return r.exec(ctx, removeDepartmentQuery, departmentID)
}
