package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-tracker/internal/models"
)

func TestMemoryEmployeeRepository_CreateAndList(t *testing.T) {
	repo := NewMemoryEmployeeRepository()

	first := &models.Employee{Name: "Анна", Allowance: 30, Remaining: 30}
	require.NoError(t, repo.Create(first))
	second := &models.Employee{Name: "Борис", Allowance: 25, Remaining: 25}
	require.NoError(t, repo.Create(second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Порядок добавления сохраняется
	assert.Equal(t, "Анна", list[0].Name)
	assert.Equal(t, "Борис", list[1].Name)
}

func TestMemoryEmployeeRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryEmployeeRepository()
	_, err := repo.GetByID(99)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestMemoryEmployeeRepository_Update(t *testing.T) {
	repo := NewMemoryEmployeeRepository()
	e := &models.Employee{Name: "Анна", Allowance: 30, Remaining: 30}
	require.NoError(t, repo.Create(e))

	e.Used = 5
	e.Remaining = 25
	require.NoError(t, repo.Update(e))

	got, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Used)
	assert.Equal(t, 25, got.Remaining)

	missing := &models.Employee{ID: 99, Name: "Нет такого"}
	assert.ErrorIs(t, repo.Update(missing), ErrEmployeeNotFound)
}

func TestMemoryEmployeeRepository_ReplaceAll(t *testing.T) {
	repo := NewMemoryEmployeeRepository()
	require.NoError(t, repo.Create(&models.Employee{Name: "Анна", Allowance: 30}))

	replacement := []models.Employee{
		{ID: 7, Name: "Вера", Allowance: 20, Remaining: 20},
		{ID: 8, Name: "Глеб", Allowance: 15, Remaining: 15},
	}
	require.NoError(t, repo.ReplaceAll(replacement))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 7, list[0].ID)

	// Счетчик ID не пересекается с переданными записями
	next := &models.Employee{Name: "Дина", Allowance: 10}
	require.NoError(t, repo.Create(next))
	assert.Equal(t, 9, next.ID)
}

func TestMemoryVacationRepository_ListFilter(t *testing.T) {
	repo := NewMemoryVacationRepository()
	require.NoError(t, repo.Create(&models.Vacation{
		EmployeeID: 1,
		StartDate:  models.NewCustomDate(2024, time.March, 1),
		EndDate:    models.NewCustomDate(2024, time.March, 5),
	}))
	require.NoError(t, repo.Create(&models.Vacation{
		EmployeeID: 2,
		StartDate:  models.NewCustomDate(2024, time.April, 1),
		EndDate:    models.NewCustomDate(2024, time.April, 5),
	}))

	all, err := repo.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	employeeID := 2
	filtered, err := repo.List(&employeeID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].EmployeeID)
}

func TestMemoryVacationRepository_Delete(t *testing.T) {
	repo := NewMemoryVacationRepository()
	v := &models.Vacation{
		EmployeeID: 1,
		StartDate:  models.NewCustomDate(2024, time.March, 1),
		EndDate:    models.NewCustomDate(2024, time.March, 5),
	}
	require.NoError(t, repo.Create(v))

	require.NoError(t, repo.Delete(v.ID))
	assert.ErrorIs(t, repo.Delete(v.ID), ErrVacationNotFound)

	all, err := repo.List(nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}
