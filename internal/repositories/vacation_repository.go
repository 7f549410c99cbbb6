package repositories

import (
	"database/sql"
	"fmt"

	"vacation-tracker/internal/models"
)

// VacationRepositoryInterface определяет методы для работы с записями об отпусках
type VacationRepositoryInterface interface {
	// List возвращает все записи, при переданном employeeID - только записи этого сотрудника
	List(employeeID *int) ([]models.Vacation, error)
	Create(vacation *models.Vacation) error
	Delete(id int) error
}

// VacationRepository предоставляет методы для работы с отпусками в БД
type VacationRepository struct {
	db *sql.DB
}

// NewVacationRepository создает новый экземпляр VacationRepository
func NewVacationRepository(db *sql.DB) *VacationRepository {
	return &VacationRepository{db: db}
}

// List возвращает записи об отпусках в порядке добавления, опционально по сотруднику
func (r *VacationRepository) List(employeeID *int) ([]models.Vacation, error) {
	baseQuery := `
		SELECT id, employee_id, start_date, end_date, working_days, note, created_at
		FROM vacations`
	args := []interface{}{}

	if employeeID != nil {
		baseQuery += " WHERE employee_id = ?"
		args = append(args, *employeeID)
	}
	baseQuery += " ORDER BY id"

	rows, err := r.db.Query(baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса записей об отпусках: %w", err)
	}
	defer rows.Close()

	vacations := []models.Vacation{}
	for rows.Next() {
		var v models.Vacation
		var note sql.NullString
		err := rows.Scan(
			&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate,
			&v.WorkingDays, &note, &v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи об отпуске: %w", err)
		}
		if note.Valid {
			v.Note = note.String
		}
		vacations = append(vacations, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по записям об отпусках: %w", err)
	}
	return vacations, nil
}

// Create сохраняет новую запись об отпуске и присваивает ей ID
func (r *VacationRepository) Create(vacation *models.Vacation) error {
	query := `
		INSERT INTO vacations (employee_id, start_date, end_date, working_days, note, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`

	result, err := r.db.Exec(query,
		vacation.EmployeeID, vacation.StartDate, vacation.EndDate,
		vacation.WorkingDays, vacation.Note,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания записи об отпуске: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("ошибка получения ID созданной записи: %w", err)
	}
	vacation.ID = int(id)
	return nil
}

// Delete удаляет запись об отпуске по ID
func (r *VacationRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM vacations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления записи об отпуске %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества удаленных строк: %w", err)
	}
	if rowsAffected == 0 {
		return ErrVacationNotFound
	}
	return nil
}
