package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"vacation-tracker/internal/apperrors"
	"vacation-tracker/internal/models"
)

// Экспортированные ошибки репозиториев для проверки через errors.Is
var (
	ErrEmployeeNotFound = fmt.Errorf("%w: сотрудник не найден", apperrors.ErrNotFound)
	ErrVacationNotFound = fmt.Errorf("%w: запись об отпуске не найдена", apperrors.ErrNotFound)
)

// EmployeeRepositoryInterface определяет методы для работы с данными сотрудников
type EmployeeRepositoryInterface interface {
	List() ([]models.Employee, error)
	GetByID(id int) (*models.Employee, error)
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	// ReplaceAll атомарно заменяет всю коллекцию сотрудников переданным списком.
	// Поштучная валидация переданных записей не выполняется.
	ReplaceAll(employees []models.Employee) error
}

// EmployeeRepository предоставляет методы для работы с сотрудниками в БД
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository создает новый экземпляр EmployeeRepository
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// List возвращает всех сотрудников в порядке добавления
func (r *EmployeeRepository) List() ([]models.Employee, error) {
	query := `
		SELECT id, name, allowance, used, remaining, color, created_at, updated_at
		FROM employees
		ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса списка сотрудников: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		err := rows.Scan(
			&e.ID, &e.Name, &e.Allowance, &e.Used, &e.Remaining, &e.Color,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования сотрудника: %w", err)
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по сотрудникам: %w", err)
	}
	return employees, nil
}

// GetByID возвращает сотрудника по его ID
func (r *EmployeeRepository) GetByID(id int) (*models.Employee, error) {
	query := `
		SELECT id, name, allowance, used, remaining, color, created_at, updated_at
		FROM employees
		WHERE id = ?`

	var e models.Employee
	err := r.db.QueryRow(query, id).Scan(
		&e.ID, &e.Name, &e.Allowance, &e.Used, &e.Remaining, &e.Color,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("ошибка получения сотрудника %d: %w", id, err)
	}
	return &e, nil
}

// Create сохраняет нового сотрудника и присваивает ему ID
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	query := `
		INSERT INTO employees (name, allowance, used, remaining, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`

	result, err := r.db.Exec(query,
		employee.Name, employee.Allowance, employee.Used, employee.Remaining, employee.Color,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания сотрудника: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("ошибка получения ID созданного сотрудника: %w", err)
	}
	employee.ID = int(id)
	return nil
}

// Update обновляет поля существующего сотрудника
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	query := `
		UPDATE employees
		SET name = ?, allowance = ?, used = ?, remaining = ?, color = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	result, err := r.db.Exec(query,
		employee.Name, employee.Allowance, employee.Used, employee.Remaining, employee.Color,
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления сотрудника %d: %w", employee.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества обновленных строк: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// ReplaceAll заменяет всю коллекцию сотрудников в одной транзакции.
// Записи с известным ID обновляются, новые вставляются, отсутствующие в списке удаляются.
func (r *EmployeeRepository) ReplaceAll(employees []models.Employee) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	var txErr error
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if txErr != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				txErr = fmt.Errorf("%w (ошибка отката: %v)", txErr, rbErr)
			}
		}
	}()

	if len(employees) == 0 {
		if _, txErr = tx.Exec(`DELETE FROM employees`); txErr != nil {
			txErr = fmt.Errorf("ошибка очистки списка сотрудников: %w", txErr)
			return txErr
		}
		return tx.Commit()
	}

	// Удаляем тех, кого нет в новом списке
	ids := make([]interface{}, 0, len(employees))
	placeholders := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
		placeholders = append(placeholders, "?")
	}
	deleteQuery := fmt.Sprintf(`DELETE FROM employees WHERE id NOT IN (%s)`, strings.Join(placeholders, ", "))
	if _, txErr = tx.Exec(deleteQuery, ids...); txErr != nil {
		txErr = fmt.Errorf("ошибка удаления отсутствующих сотрудников: %w", txErr)
		return txErr
	}

	upsertQuery := `
		INSERT INTO employees (id, name, allowance, used, remaining, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name),
			allowance = VALUES(allowance),
			used = VALUES(used),
			remaining = VALUES(remaining),
			color = VALUES(color),
			updated_at = CURRENT_TIMESTAMP`
	stmt, errPrepare := tx.Prepare(upsertQuery)
	if errPrepare != nil {
		txErr = fmt.Errorf("ошибка подготовки запроса замены сотрудников: %w", errPrepare)
		return txErr
	}
	defer stmt.Close()

	for i := range employees {
		if _, txErr = stmt.Exec(
			employees[i].ID, employees[i].Name, employees[i].Allowance,
			employees[i].Used, employees[i].Remaining, employees[i].Color,
		); txErr != nil {
			txErr = fmt.Errorf("ошибка записи сотрудника %d при замене: %w", employees[i].ID, txErr)
			return txErr
		}
	}

	txErr = tx.Commit()
	if txErr != nil {
		return fmt.Errorf("ошибка коммита транзакции замены сотрудников: %w", txErr)
	}
	return nil
}
