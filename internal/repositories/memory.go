package repositories

import (
	"sync"
	"time"

	"vacation-tracker/internal/models"
)

// Хранилища в памяти повторяют контракт MySQL-репозиториев, но живут только
// в пределах процесса. Используются в тестах и в режиме DB_BACKEND=memory.
// Обработчики Gin работают параллельно, поэтому коллекции защищены мьютексом.

// MemoryEmployeeRepository - хранилище сотрудников в памяти
type MemoryEmployeeRepository struct {
	mu        sync.Mutex
	employees []models.Employee
	nextID    int
}

// NewMemoryEmployeeRepository создает пустое хранилище сотрудников
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{nextID: 1}
}

// List возвращает копию списка сотрудников в порядке добавления
func (r *MemoryEmployeeRepository) List() ([]models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Employee, len(r.employees))
	copy(result, r.employees)
	return result, nil
}

// GetByID возвращает сотрудника по ID
func (r *MemoryEmployeeRepository) GetByID(id int) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.employees {
		if r.employees[i].ID == id {
			e := r.employees[i]
			return &e, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

// Create присваивает сотруднику новый ID и добавляет его в конец списка
func (r *MemoryEmployeeRepository) Create(employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee.ID = r.nextID
	r.nextID++
	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.employees = append(r.employees, *employee)
	return nil
}

// Update обновляет существующего сотрудника
func (r *MemoryEmployeeRepository) Update(employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.employees {
		if r.employees[i].ID == employee.ID {
			employee.CreatedAt = r.employees[i].CreatedAt
			employee.UpdatedAt = time.Now()
			r.employees[i] = *employee
			return nil
		}
	}
	return ErrEmployeeNotFound
}

// ReplaceAll заменяет всю коллекцию переданным списком
func (r *MemoryEmployeeRepository) ReplaceAll(employees []models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = make([]models.Employee, len(employees))
	copy(r.employees, employees)
	// Сдвигаем счетчик, чтобы новые ID не пересекались с переданными
	for _, e := range employees {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return nil
}

// MemoryVacationRepository - хранилище записей об отпусках в памяти
type MemoryVacationRepository struct {
	mu        sync.Mutex
	vacations []models.Vacation
	nextID    int
}

// NewMemoryVacationRepository создает пустое хранилище отпусков
func NewMemoryVacationRepository() *MemoryVacationRepository {
	return &MemoryVacationRepository{nextID: 1}
}

// List возвращает копию списка записей, опционально по сотруднику
func (r *MemoryVacationRepository) List(employeeID *int) ([]models.Vacation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Vacation{}
	for _, v := range r.vacations {
		if employeeID != nil && v.EmployeeID != *employeeID {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

// Create присваивает записи новый ID и добавляет ее в конец списка
func (r *MemoryVacationRepository) Create(vacation *models.Vacation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	vacation.ID = r.nextID
	r.nextID++
	vacation.CreatedAt = time.Now()
	r.vacations = append(r.vacations, *vacation)
	return nil
}

// Delete удаляет запись по ID
func (r *MemoryVacationRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.vacations {
		if r.vacations[i].ID == id {
			r.vacations = append(r.vacations[:i], r.vacations[i+1:]...)
			return nil
		}
	}
	return ErrVacationNotFound
}
