package services

import (
	"fmt"
	"strings"

	"vacation-tracker/internal/apperrors"
	"vacation-tracker/internal/models"
	"vacation-tracker/internal/repositories"
)

// EmployeeServiceInterface определяет методы для сервиса сотрудников
type EmployeeServiceInterface interface {
	GetEmployees() ([]models.Employee, error)
	AddEmployee(dto models.EmployeeCreateDTO) (*models.Employee, error)
	ReplaceEmployees(employees []models.Employee) error
}

// EmployeeService реализует EmployeeServiceInterface
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepositoryInterface
}

// NewEmployeeService создает новый экземпляр EmployeeService
func NewEmployeeService(employeeRepo repositories.EmployeeRepositoryInterface) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// GetEmployees возвращает всех сотрудников в порядке добавления
func (s *EmployeeService) GetEmployees() ([]models.Employee, error) {
	return s.employeeRepo.List()
}

// AddEmployee валидирует входные данные и создает нового сотрудника.
// Сразу после создания used = 0 и remaining = allowance.
func (s *EmployeeService) AddEmployee(dto models.EmployeeCreateDTO) (*models.Employee, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return nil, apperrors.Validation("имя сотрудника не может быть пустым")
	}
	if dto.Allowance < models.MinAllowance || dto.Allowance > models.MaxAllowance {
		return nil, apperrors.Validation("лимит отпуска должен быть от %d до %d дней, получено %d",
			models.MinAllowance, models.MaxAllowance, dto.Allowance)
	}

	color := dto.Color
	if color == "" {
		color = models.DefaultEmployeeColor
	}

	employee := &models.Employee{
		Name:      strings.TrimSpace(dto.Name),
		Allowance: dto.Allowance,
		Used:      0,
		Remaining: dto.Allowance,
		Color:     color,
	}
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("ошибка сохранения сотрудника: %w", err)
	}
	return employee, nil
}

// ReplaceEmployees атомарно заменяет весь список сотрудников.
// Поштучная валидация не выполняется, обработчик отвечает только за корректный JSON.
func (s *EmployeeService) ReplaceEmployees(employees []models.Employee) error {
	if err := s.employeeRepo.ReplaceAll(employees); err != nil {
		return fmt.Errorf("ошибка замены списка сотрудников: %w", err)
	}
	return nil
}
