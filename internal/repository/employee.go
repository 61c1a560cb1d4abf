package repository

import (
	"context"

	"github.com/deppfellow/directory/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	// The manager name is built with || rather than CONCAT so that an
	// employee without a manager yields NULL instead of a lone space.
	findAllEmployeesQuery = `
SELECT employee.id, employee.first_name, employee.last_name, role.title,
	department.name AS department, role.salary,
	manager.first_name || ' ' || manager.last_name AS manager
FROM employee
LEFT JOIN role ON employee.role_id = role.id
LEFT JOIN department ON role.department_id = department.id
LEFT JOIN employee manager ON manager.id = employee.manager_id
ORDER BY employee.id`

	findAllPossibleManagersQuery = `
SELECT id, first_name, last_name
FROM employee
WHERE id != $1
ORDER BY id`

	createEmployeeQuery = `
INSERT INTO employee (first_name, last_name, role_id, manager_id)
VALUES ($1, $2, $3, $4)
RETURNING id`

	removeEmployeeQuery = `DELETE FROM employee WHERE id = $1`

	updateEmployeeRoleQuery = `UPDATE employee SET role_id = $1 WHERE id = $2`

	updateEmployeeManagerQuery = `UPDATE employee SET manager_id = $1 WHERE id = $2`

	findAllEmployeesByDepartmentQuery = `
SELECT employee.id, employee.first_name, employee.last_name, role.title
FROM employee
LEFT JOIN role ON employee.role_id = role.id
LEFT JOIN department department ON role.department_id = department.id
WHERE department.id = $1
ORDER BY employee.id`

	findAllEmployeesByManagerQuery = `
SELECT employee.id, employee.first_name, employee.last_name,
	department.name AS department, role.title
FROM employee
LEFT JOIN role ON role.id = employee.role_id
LEFT JOIN department ON department.id = role.department_id
WHERE manager_id = $1
ORDER BY employee.id`
)

// FindAllEmployees lists every employee with their role title, department,
// salary and manager name.
func (r *DirectoryRepository) FindAllEmployees(ctx context.Context) ([]model.EmployeeDetail, error) {
	rows, err := r.db.Query(ctx, findAllEmployeesQuery)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.EmployeeDetail, error) {
		var e model.EmployeeDetail
		err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Title, &e.Department, &e.Salary, &e.Manager)
		return e, err
	})
}

// FindAllPossibleManagers lists every employee except employeeID.
func (r *DirectoryRepository) FindAllPossibleManagers(ctx context.Context, employeeID int64) ([]model.EmployeeName, error) {
	rows, err := r.db.Query(ctx, findAllPossibleManagersQuery, employeeID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanEmployeeName)
}

// CreateEmployee inserts e and reports the id assigned to it. e.ID is ignored.
func (r *DirectoryRepository) CreateEmployee(ctx context.Context, e model.Employee) (model.InsertResult, error) {
	return r.insert(ctx, createEmployeeQuery, e.FirstName, e.LastName, e.RoleID, e.ManagerID)
}

// RemoveEmployee deletes an employee and reports how many rows went away.
func (r *DirectoryRepository) RemoveEmployee(ctx context.Context, employeeID int64) (int64, error) {
	return r.exec(ctx, removeEmployeeQuery, employeeID)
}

// UpdateEmployeeRole moves employeeID onto roleID.
func (r *DirectoryRepository) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) (int64, error) {
	return r.exec(ctx, updateEmployeeRoleQuery, roleID, employeeID)
}

// UpdateEmployeeManager reassigns the manager of employeeID. A nil managerID
// clears it.
func (r *DirectoryRepository) UpdateEmployeeManager(ctx context.Context, employeeID int64, managerID *int64) (int64, error) {
	return r.exec(ctx, updateEmployeeManagerQuery, managerID, employeeID)
}

// FindAllEmployeesByDepartment lists the employees whose role belongs to
// departmentID.
func (r *DirectoryRepository) FindAllEmployeesByDepartment(ctx context.Context, departmentID int64) ([]model.EmployeeInDepartment, error) {
	rows, err := r.db.Query(ctx, findAllEmployeesByDepartmentQuery, departmentID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.EmployeeInDepartment, error) {
		var e model.EmployeeInDepartment
		err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Title)
		return e, err
	})
}

// FindAllEmployeesByManager lists the direct reports of managerID.
func (r *DirectoryRepository) FindAllEmployeesByManager(ctx context.Context, managerID int64) ([]model.EmployeeUnderManager, error) {
	rows, err := r.db.Query(ctx, findAllEmployeesByManagerQuery, managerID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.EmployeeUnderManager, error) {
		var e model.EmployeeUnderManager
		err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Department, &e.Title)
		return e, err
	})
}

func scanEmployeeName(row pgx.CollectableRow) (model.EmployeeName, error) {
	var e model.EmployeeName
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName)
	return e, err
}

// insert runs a single-row INSERT ... RETURNING id.
func (r *DirectoryRepository) insert(ctx context.Context, query string, args ...any) (model.InsertResult, error) {
	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return model.InsertResult{}, err
	}
	return model.InsertResult{ID: id, RowsAffected: 1}, nil
}

func (r *DirectoryRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
