package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-tracker/internal/apperrors"
	"vacation-tracker/internal/models"
	"vacation-tracker/internal/repositories"
)

func newVacationFixture(t *testing.T) (*VacationService, *repositories.MemoryVacationRepository, *models.Employee) {
	t.Helper()
	employeeRepo := repositories.NewMemoryEmployeeRepository()
	vacationRepo := repositories.NewMemoryVacationRepository()

	employee := &models.Employee{Name: "Анна", Allowance: 30, Remaining: 30}
	require.NoError(t, employeeRepo.Create(employee))

	return NewVacationService(vacationRepo, employeeRepo), vacationRepo, employee
}

func TestVacationService_AddVacation(t *testing.T) {
	svc, _, employee := newVacationFixture(t)

	vacation, err := svc.AddVacation(models.VacationCreateDTO{
		EmployeeID:  employee.ID,
		StartDate:   models.NewCustomDate(2024, time.March, 1),
		EndDate:     models.NewCustomDate(2024, time.March, 5),
		WorkingDays: 5,
		Note:        "весна",
	})
	require.NoError(t, err)
	assert.NotZero(t, vacation.ID)
	assert.Equal(t, "весна", vacation.Note)
}

func TestVacationService_AddVacation_UnknownEmployee(t *testing.T) {
	svc, vacationRepo, _ := newVacationFixture(t)

	_, err := svc.AddVacation(models.VacationCreateDTO{
		EmployeeID:  777,
		StartDate:   models.NewCustomDate(2024, time.March, 1),
		EndDate:     models.NewCustomDate(2024, time.March, 5),
		WorkingDays: 5,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Отклоненный запрос не оставляет следов в хранилище
	all, listErr := vacationRepo.List(nil)
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestVacationService_AddVacation_EndBeforeStart(t *testing.T) {
	svc, vacationRepo, employee := newVacationFixture(t)

	_, err := svc.AddVacation(models.VacationCreateDTO{
		EmployeeID:  employee.ID,
		StartDate:   models.NewCustomDate(2024, time.March, 5),
		EndDate:     models.NewCustomDate(2024, time.March, 1),
		WorkingDays: 5,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	all, listErr := vacationRepo.List(nil)
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestVacationService_AddVacation_MissingDates(t *testing.T) {
	svc, _, employee := newVacationFixture(t)

	_, err := svc.AddVacation(models.VacationCreateDTO{EmployeeID: employee.ID, WorkingDays: 5})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestVacationService_RemoveVacation(t *testing.T) {
	svc, _, employee := newVacationFixture(t)

	vacation, err := svc.AddVacation(models.VacationCreateDTO{
		EmployeeID:  employee.ID,
		StartDate:   models.NewCustomDate(2024, time.March, 1),
		EndDate:     models.NewCustomDate(2024, time.March, 5),
		WorkingDays: 5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveVacation(vacation.ID))
	assert.ErrorIs(t, svc.RemoveVacation(vacation.ID), apperrors.ErrNotFound)
}
