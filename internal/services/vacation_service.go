package services

import (
	"errors"
	"fmt"

	"vacation-tracker/internal/apperrors"
	"vacation-tracker/internal/models"
	"vacation-tracker/internal/repositories"
)

// VacationServiceInterface определяет методы для сервиса отпусков
type VacationServiceInterface interface {
	GetVacations(employeeID *int) ([]models.Vacation, error)
	AddVacation(dto models.VacationCreateDTO) (*models.Vacation, error)
	RemoveVacation(id int) error
}

// VacationService реализует VacationServiceInterface
type VacationService struct {
	vacationRepo repositories.VacationRepositoryInterface
	employeeRepo repositories.EmployeeRepositoryInterface
}

// NewVacationService создает новый экземпляр VacationService
func NewVacationService(vacationRepo repositories.VacationRepositoryInterface, employeeRepo repositories.EmployeeRepositoryInterface) *VacationService {
	return &VacationService{
		vacationRepo: vacationRepo,
		employeeRepo: employeeRepo,
	}
}

// GetVacations возвращает записи об отпусках, опционально по сотруднику
func (s *VacationService) GetVacations(employeeID *int) ([]models.Vacation, error) {
	return s.vacationRepo.List(employeeID)
}

// AddVacation валидирует и создает запись об отпуске.
// Все проверки выполняются до какой-либо записи: при ошибке хранилище не меняется.
func (s *VacationService) AddVacation(dto models.VacationCreateDTO) (*models.Vacation, error) {
	if dto.StartDate.IsZero() || dto.EndDate.IsZero() {
		return nil, apperrors.Validation("необходимо указать даты начала и окончания отпуска")
	}
	if dto.EndDate.Time.Before(dto.StartDate.Time) {
		return nil, apperrors.Validation("дата окончания отпуска (%s) раньше даты начала (%s)",
			dto.EndDate.Format("2006-01-02"), dto.StartDate.Format("2006-01-02"))
	}
	if dto.WorkingDays < 0 {
		return nil, apperrors.Validation("количество рабочих дней не может быть отрицательным")
	}

	// Отпуск должен ссылаться на существующего сотрудника
	if _, err := s.employeeRepo.GetByID(dto.EmployeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validation("сотрудник %d не существует", dto.EmployeeID)
		}
		return nil, fmt.Errorf("ошибка проверки сотрудника %d: %w", dto.EmployeeID, err)
	}

	vacation := &models.Vacation{
		EmployeeID:  dto.EmployeeID,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		WorkingDays: dto.WorkingDays,
		Note:        dto.Note,
	}
	if err := s.vacationRepo.Create(vacation); err != nil {
		return nil, fmt.Errorf("ошибка сохранения записи об отпуске: %w", err)
	}
	return vacation, nil
}

// RemoveVacation удаляет запись об отпуске по ID
func (s *VacationService) RemoveVacation(id int) error {
	return s.vacationRepo.Delete(id)
}
