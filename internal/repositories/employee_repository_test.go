package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-tracker/internal/models"
)

func newEmployeeRepoWithMock(t *testing.T) (*EmployeeRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewEmployeeRepository(db), mock, db
}

var employeeColumns = []string{"id", "name", "allowance", "used", "remaining", "color", "created_at", "updated_at"}

func TestEmployeeRepository_List(t *testing.T) {
	repo, mock, db := newEmployeeRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(employeeColumns).
		AddRow(1, "Анна", 30, 5, 25, "#1c5975", now, now).
		AddRow(2, "Борис", 25, 0, 25, "#aa3311", now, now)

	mock.ExpectQuery(`(?s)SELECT\s+id, name, allowance, used, remaining, color, created_at, updated_at\s+FROM employees\s+ORDER BY id`).
		WillReturnRows(rows)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Анна", list[0].Name)
	assert.Equal(t, 25, list[1].Remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, db := newEmployeeRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+.*\s+FROM employees\s+WHERE id = \?`).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create(t *testing.T) {
	repo, mock, db := newEmployeeRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT INTO employees \(name, allowance, used, remaining, color, created_at, updated_at\)`).
		WithArgs("Анна", 30, 0, 30, "#1c5975").
		WillReturnResult(sqlmock.NewResult(7, 1))

	e := &models.Employee{Name: "Анна", Allowance: 30, Used: 0, Remaining: 30, Color: "#1c5975"}
	require.NoError(t, repo.Create(e))
	assert.Equal(t, 7, e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	repo, mock, db := newEmployeeRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)UPDATE employees\s+SET name = \?`).
		WithArgs("Нет такого", 10, 0, 10, "#1c5975", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := &models.Employee{ID: 99, Name: "Нет такого", Allowance: 10, Remaining: 10, Color: "#1c5975"}
	assert.ErrorIs(t, repo.Update(e), ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ReplaceAll_Empty(t *testing.T) {
	repo, mock, db := newEmployeeRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM employees`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ReplaceAll(t *testing.T) {
	repo, mock, db := newEmployeeRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM employees WHERE id NOT IN \(\?, \?\)`).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep := mock.ExpectPrepare(`(?s)INSERT INTO employees \(id, name, allowance, used, remaining, color, created_at, updated_at\)`)
	prep.ExpectExec().
		WithArgs(1, "Анна", 30, 5, 25, "#1c5975").
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs(2, "Борис", 25, 0, 25, "#1c5975").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	employees := []models.Employee{
		{ID: 1, Name: "Анна", Allowance: 30, Used: 5, Remaining: 25, Color: "#1c5975"},
		{ID: 2, Name: "Борис", Allowance: 25, Used: 0, Remaining: 25, Color: "#1c5975"},
	}
	require.NoError(t, repo.ReplaceAll(employees))
	assert.NoError(t, mock.ExpectationsWereMet())
}
