package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-tracker/internal/models"
	"vacation-tracker/internal/repositories"
)

func newReconciliationFixture(t *testing.T) (*ReconciliationService, *repositories.MemoryEmployeeRepository, *repositories.MemoryVacationRepository) {
	t.Helper()
	employeeRepo := repositories.NewMemoryEmployeeRepository()
	vacationRepo := repositories.NewMemoryVacationRepository()
	return NewReconciliationService(employeeRepo, vacationRepo), employeeRepo, vacationRepo
}

// Сценарий из постановки: Анна с лимитом 30, отпуск 01.03-05.03.2024 на 5 рабочих дней
func TestReconciliationService_Run(t *testing.T) {
	svc, employeeRepo, vacationRepo := newReconciliationFixture(t)

	anna := &models.Employee{Name: "Анна", Allowance: 30, Remaining: 30}
	require.NoError(t, employeeRepo.Create(anna))

	require.NoError(t, vacationRepo.Create(&models.Vacation{
		EmployeeID:  anna.ID,
		StartDate:   models.NewCustomDate(2024, time.March, 1),
		EndDate:     models.NewCustomDate(2024, time.March, 5),
		WorkingDays: 5,
	}))

	require.NoError(t, svc.Run(2024))

	got, err := employeeRepo.GetByID(anna.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Used)
	assert.Equal(t, 25, got.Remaining)
}

func TestReconciliationService_Run_Idempotent(t *testing.T) {
	svc, employeeRepo, vacationRepo := newReconciliationFixture(t)

	anna := &models.Employee{Name: "Анна", Allowance: 30, Remaining: 30}
	require.NoError(t, employeeRepo.Create(anna))
	require.NoError(t, vacationRepo.Create(&models.Vacation{
		EmployeeID:  anna.ID,
		StartDate:   models.NewCustomDate(2024, time.June, 3),
		EndDate:     models.NewCustomDate(2024, time.June, 14),
		WorkingDays: 10,
	}))

	require.NoError(t, svc.Run(2024))
	first, err := employeeRepo.GetByID(anna.ID)
	require.NoError(t, err)

	// Повторный запуск без изменений в отпусках дает тот же результат
	require.NoError(t, svc.Run(2024))
	second, err := employeeRepo.GetByID(anna.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Used, second.Used)
	assert.Equal(t, first.Remaining, second.Remaining)
}

func TestReconciliationService_Run_ExcludesStraddlingEntries(t *testing.T) {
	svc, employeeRepo, vacationRepo := newReconciliationFixture(t)

	anna := &models.Employee{Name: "Анна", Allowance: 30, Remaining: 30}
	require.NoError(t, employeeRepo.Create(anna))

	// Целиком внутри 2024 года - учитывается
	require.NoError(t, vacationRepo.Create(&models.Vacation{
		EmployeeID:  anna.ID,
		StartDate:   models.NewCustomDate(2024, time.March, 1),
		EndDate:     models.NewCustomDate(2024, time.March, 5),
		WorkingDays: 5,
	}))
	// Переходит из 2023 в 2024 - исключается целиком, без пропорции
	require.NoError(t, vacationRepo.Create(&models.Vacation{
		EmployeeID:  anna.ID,
		StartDate:   models.NewCustomDate(2023, time.December, 27),
		EndDate:     models.NewCustomDate(2024, time.January, 3),
		WorkingDays: 4,
	}))

	require.NoError(t, svc.Run(2024))

	got, err := employeeRepo.GetByID(anna.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Used)
	assert.Equal(t, 25, got.Remaining)
}

func TestReconciliationService_Run_NegativeRemaining(t *testing.T) {
	svc, employeeRepo, vacationRepo := newReconciliationFixture(t)

	employee := &models.Employee{Name: "Борис", Allowance: 5, Remaining: 5}
	require.NoError(t, employeeRepo.Create(employee))
	require.NoError(t, vacationRepo.Create(&models.Vacation{
		EmployeeID:  employee.ID,
		StartDate:   models.NewCustomDate(2024, time.July, 1),
		EndDate:     models.NewCustomDate(2024, time.July, 12),
		WorkingDays: 10,
	}))

	require.NoError(t, svc.Run(2024))

	got, err := employeeRepo.GetByID(employee.ID)
	require.NoError(t, err)
	// Перерасход показывается как есть, без обрезания до нуля
	assert.Equal(t, 10, got.Used)
	assert.Equal(t, -5, got.Remaining)
}

func TestReconciliationService_Run_ResetsStaleTotals(t *testing.T) {
	svc, employeeRepo, vacationRepo := newReconciliationFixture(t)

	employee := &models.Employee{Name: "Вера", Allowance: 20, Used: 7, Remaining: 13}
	require.NoError(t, employeeRepo.Create(employee))
	// Отпусков за год сверки нет - used должен обнулиться
	_ = vacationRepo

	require.NoError(t, svc.Run(2024))

	got, err := employeeRepo.GetByID(employee.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Used)
	assert.Equal(t, 20, got.Remaining)
}
