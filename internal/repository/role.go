package repository

import (
	"context"

	"github.com/deppfellow/directory/internal/model"
	"github.com/jackc/pgx/v5"
)

const (
	findAllRolesQuery = `
SELECT role.id, role.title, department.name AS department, role.salary
FROM role
LEFT JOIN department ON role.department_id = department.id
ORDER BY role.id`

	createRoleQuery = `
INSERT INTO role (title, salary, department_id)
VALUES ($1, $2, $3)
RETURNING id`

	removeRoleQuery = `DELETE FROM role WHERE id = $1`
)

// FindAllRoles lists every role with its department name and salary.
func (r *DirectoryRepository) FindAllRoles(ctx context.Context) ([]model.RoleDetail, error) {
	rows, err := r.db.Query(ctx, findAllRolesQuery)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.RoleDetail, error) {
		var role model.RoleDetail
		err := row.Scan(&role.ID, &role.Title, &role.Department, &role.Salary)
		return role, err
	})
}

// CreateRole inserts role and reports the id assigned to it. role.ID is ignored.
func (r *DirectoryRepository) CreateRole(ctx context.Context, role model.Role) (model.InsertResult, error) {
	return r.insert(ctx, createRoleQuery, role.Title, role.Salary, role.DepartmentID)
}

// RemoveRole deletes a role. Employees holding it are handled by the
// foreign key on employee.role_id.
func (r *DirectoryRepository) RemoveRole(ctx context.Context, roleID int64) (int64, error) {
	return r.exec(ctx, removeRoleQuery, roleID)
}
