package services

import (
	"fmt"
	"log"
	"time"

	"vacation-tracker/internal/repositories"
)

// ReconciliationServiceInterface определяет методы процедуры сверки
type ReconciliationServiceInterface interface {
	Run(year int) error
}

// ReconciliationService восстанавливает инвариант used/remaining для всех сотрудников.
// used сотрудника - это сумма рабочих дней его отпусков, целиком лежащих внутри
// года сверки. Процедура идемпотентна: повторный запуск без изменений в отпусках
// дает тот же результат. Запускается как корректирующая пакетная задача
// (вручную или по расписанию), а не на каждой записи отпуска - между записью
// отпуска и ближайшей сверкой инвариант может быть устаревшим.
type ReconciliationService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
	vacationRepo repositories.VacationRepositoryInterface
}

// NewReconciliationService создает новый экземпляр ReconciliationService
func NewReconciliationService(employeeRepo repositories.EmployeeRepositoryInterface, vacationRepo repositories.VacationRepositoryInterface) *ReconciliationService {
	return &ReconciliationService{
		employeeRepo: employeeRepo,
		vacationRepo: vacationRepo,
	}
}

// Run пересчитывает used и remaining каждого сотрудника за указанный год.
// При year <= 0 используется текущий календарный год.
func (s *ReconciliationService) Run(year int) error {
	if year <= 0 {
		year = time.Now().Year()
	}

	employees, err := s.employeeRepo.List()
	if err != nil {
		return fmt.Errorf("ошибка чтения списка сотрудников для сверки: %w", err)
	}
	vacations, err := s.vacationRepo.List(nil)
	if err != nil {
		return fmt.Errorf("ошибка чтения записей об отпусках для сверки: %w", err)
	}

	// Суммируем рабочие дни по сотрудникам. Записи, частично выходящие за границы
	// года, исключаются целиком (см. models.Vacation.WithinYear).
	usedByEmployee := make(map[int]int)
	for _, v := range vacations {
		if v.WithinYear(year) {
			usedByEmployee[v.EmployeeID] += v.WorkingDays
		}
	}

	updated := 0
	for i := range employees {
		used := usedByEmployee[employees[i].ID]
		remaining := employees[i].Allowance - used
		if employees[i].Used == used && employees[i].Remaining == remaining {
			continue
		}
		employees[i].Used = used
		// remaining может уйти в минус при перерасходе - показываем как есть, не обрезаем
		employees[i].Remaining = remaining
		if err := s.employeeRepo.Update(&employees[i]); err != nil {
			return fmt.Errorf("ошибка записи сверенных данных сотрудника %d: %w", employees[i].ID, err)
		}
		updated++
	}

	log.Printf("Сверка за %d год завершена: сотрудников %d, обновлено %d", year, len(employees), updated)
	return nil
}
