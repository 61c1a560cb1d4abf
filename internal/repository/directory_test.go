package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/directory/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*DirectoryRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return NewDirectoryRepository(mock), mock
}

func ptr[T any](v T) *T {
	return &v
}

func TestFindAllEmployees(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := pgxmock.NewRows([]string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}).
		AddRow(int64(1), "Ada", "Lovelace", ptr("Engineer"), ptr("Engineering"), ptr(decimal.NewFromInt(80000)), nil).
		AddRow(int64(2), "Alan", "Turing", nil, nil, nil, ptr("Ada Lovelace"))
	mock.ExpectQuery(findAllEmployeesQuery).WillReturnRows(rows)

	employees, err := repo.FindAllEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)

	first := employees[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Ada", first.FirstName)
	require.NotNil(t, first.Department)
	assert.Equal(t, "Engineering", *first.Department)
	require.NotNil(t, first.Salary)
	assert.True(t, first.Salary.Equal(decimal.NewFromInt(80000)))
	assert.Nil(t, first.Manager)

	second := employees[1]
	assert.Nil(t, second.Title)
	assert.Nil(t, second.Salary)
	require.NotNil(t, second.Manager)
	assert.Equal(t, "Ada Lovelace", *second.Manager)
}

func TestFindAllEmployeesQueryShape(t *testing.T) {
	assert.Contains(t, findAllEmployeesQuery, "LEFT JOIN role ON employee.role_id = role.id")
	assert.Contains(t, findAllEmployeesQuery, "LEFT JOIN department ON role.department_id = department.id")
	assert.Contains(t, findAllEmployeesQuery, "LEFT JOIN employee manager ON manager.id = employee.manager_id")
	assert.NotContains(t, findAllEmployeesQuery, "CONCAT")
}

func TestFindAllEmployeesEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(findAllEmployeesQuery).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}))

	employees, err := repo.FindAllEmployees(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestFindAllPossibleManagers(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(findAllPossibleManagersQuery).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(int64(1), "Ada", "Lovelace").
			AddRow(int64(2), "Alan", "Turing"))

	managers, err := repo.FindAllPossibleManagers(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []model.EmployeeName{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		{ID: 2, FirstName: "Alan", LastName: "Turing"},
	}, managers)
	assert.Contains(t, findAllPossibleManagersQuery, "WHERE id != $1")
}

func TestCreateEmployee(t *testing.T) {
	t.Run("with role and manager", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(createEmployeeQuery).
			WithArgs("Grace", "Hopper", ptr(int64(4)), ptr(int64(1))).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

		result, err := repo.CreateEmployee(context.Background(), model.Employee{
			ID:        99,
			FirstName: "Grace",
			LastName:  "Hopper",
			RoleID:    ptr(int64(4)),
			ManagerID: ptr(int64(1)),
		})
		require.NoError(t, err)
		assert.Equal(t, model.InsertResult{ID: 7, RowsAffected: 1}, result)
	})

	t.Run("without manager", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(createEmployeeQuery).
			WithArgs("A", "B", ptr(int64(4)), (*int64)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(8)))

		result, err := repo.CreateEmployee(context.Background(), model.Employee{
			FirstName: "A",
			LastName:  "B",
			RoleID:    ptr(int64(4)),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(8), result.ID)
	})

	t.Run("foreign key violation is returned unchanged", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		fkErr := &pgconn.PgError{Code: "23503", TableName: "employee", ConstraintName: "employee_role_id_fkey"}
		mock.ExpectQuery(createEmployeeQuery).
			WithArgs("A", "B", ptr(int64(404)), (*int64)(nil)).
			WillReturnError(fkErr)

		result, err := repo.CreateEmployee(context.Background(), model.Employee{
			FirstName: "A",
			LastName:  "B",
			RoleID:    ptr(int64(404)),
		})
		require.Error(t, err)
		assert.Equal(t, model.InsertResult{}, result)

		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr))
		assert.Same(t, fkErr, pgErr)
	})
}

func TestRemoveEmployee(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(removeEmployeeQuery).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(removeEmployeeQuery).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	affected, err := repo.RemoveEmployee(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.RemoveEmployee(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestUpdateEmployeeRole(t *testing.T) {
	repo, mock := newMockRepository(t)

	// role id is bound before employee id
	mock.ExpectExec(updateEmployeeRoleQuery).
		WithArgs(int64(3), int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	affected, err := repo.UpdateEmployeeRole(context.Background(), 10, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestUpdateEmployeeManager(t *testing.T) {
	t.Run("assign", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(updateEmployeeManagerQuery).
			WithArgs(ptr(int64(2)), int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		affected, err := repo.UpdateEmployeeManager(context.Background(), 10, ptr(int64(2)))
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("clear", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec(updateEmployeeManagerQuery).
			WithArgs((*int64)(nil), int64(10)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		affected, err := repo.UpdateEmployeeManager(context.Background(), 10, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		boom := errors.New("conn closed")
		mock.ExpectExec(updateEmployeeManagerQuery).
			WithArgs(ptr(int64(2)), int64(10)).
			WillReturnError(boom)

		affected, err := repo.UpdateEmployeeManager(context.Background(), 10, ptr(int64(2)))
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, affected)
	})
}

func TestFindAllEmployeesByDepartment(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(findAllEmployeesByDepartmentQuery).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "title"}).
			AddRow(int64(1), "Ada", "Lovelace", ptr("Engineer")))

	employees, err := repo.FindAllEmployeesByDepartment(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Engineer", *employees[0].Title)
	assert.Contains(t, findAllEmployeesByDepartmentQuery, "WHERE department.id = $1")
}

func TestFindAllEmployeesByManager(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(findAllEmployeesByManagerQuery).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name", "department", "title"}).
			AddRow(int64(2), "Alan", "Turing", ptr("Engineering"), ptr("Engineer")).
			AddRow(int64(3), "Grace", "Hopper", nil, nil))

	employees, err := repo.FindAllEmployeesByManager(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Engineering", *employees[0].Department)
	assert.Nil(t, employees[1].Department)
	assert.Nil(t, employees[1].Title)
	assert.Contains(t, findAllEmployeesByManagerQuery, "WHERE manager_id = $1")
}

func TestQueryErrorIsReturnedUnchanged(t *testing.T) {
	repo, mock := newMockRepository(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(findAllEmployeesByManagerQuery).
		WithArgs(int64(1)).
		WillReturnError(boom)

	employees, err := repo.FindAllEmployeesByManager(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, employees)
}

func TestRowErrorIsReturned(t *testing.T) {
	repo, mock := newMockRepository(t)

	boom := errors.New("row decode failed")
	mock.ExpectQuery(findAllPossibleManagersQuery).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(int64(2), "Alan", "Turing").
			RowError(0, boom))

	_, err := repo.FindAllPossibleManagers(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
