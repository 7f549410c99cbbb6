package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultEmployeeColor - цвет сотрудника по умолчанию (подсказка для отображения, на логику не влияет)
const DefaultEmployeeColor = "#1c5975"

// Границы годового лимита отпускных дней
const (
	MinAllowance = 1
	MaxAllowance = 50
)

const customDateFormat = "2006-01-02"

// CustomDate - обертка над time.Time для работы с датами без времени.
// Принимает из JSON как "2006-01-02", так и RFC3339 (фронтенд может слать оба варианта),
// наружу всегда отдает "2006-01-02".
type CustomDate struct {
	time.Time
}

// NewCustomDate создает CustomDate из года, месяца и дня (UTC)
func NewCustomDate(year int, month time.Month, day int) CustomDate {
	return CustomDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON реализует интерфейс json.Unmarshaler
func (cd *CustomDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		cd.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(customDateFormat, s)
	if err != nil {
		// Пробуем RFC3339, если дата пришла вместе со временем
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("некорректный формат даты '%s'", s)
		}
	}
	cd.Time = t
	return nil
}

// MarshalJSON реализует интерфейс json.Marshaler
func (cd CustomDate) MarshalJSON() ([]byte, error) {
	if cd.Time.IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(cd.Time.Format(customDateFormat))
}

// Value реализует интерфейс driver.Valuer для записи в БД
func (cd CustomDate) Value() (driver.Value, error) {
	if cd.Time.IsZero() {
		return nil, nil
	}
	return cd.Time, nil
}

// Scan реализует интерфейс sql.Scanner для чтения из БД
func (cd *CustomDate) Scan(value interface{}) error {
	if value == nil {
		cd.Time = time.Time{}
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		cd.Time = v
		return nil
	case []byte:
		t, err := time.Parse(customDateFormat, string(v))
		if err != nil {
			return fmt.Errorf("не удалось разобрать дату '%s': %w", string(v), err)
		}
		cd.Time = t
		return nil
	}
	return fmt.Errorf("не удалось сканировать тип %T в CustomDate", value)
}

// Employee - модель сотрудника.
// Used - производное поле: сумма рабочих дней отпусков сотрудника за год сверки,
// пересчитывается процедурой сверки, а не при каждой записи отпуска.
// Remaining всегда равно Allowance - Used на момент последней сверки.
type Employee struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Allowance int       `json:"allowance" db:"allowance"`
	Used      int       `json:"used" db:"used"`
	Remaining int       `json:"remaining" db:"remaining"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Vacation - модель записи об отпуске.
// WorkingDays считается на стороне клиента (без выходных и праздников) и здесь не перепроверяется.
type Vacation struct {
	ID          int        `json:"id" db:"id"`
	EmployeeID  int        `json:"employee_id" db:"employee_id"`
	StartDate   CustomDate `json:"start_date" db:"start_date"`
	EndDate     CustomDate `json:"end_date" db:"end_date"`
	WorkingDays int        `json:"working_days" db:"working_days"`
	Note        string     `json:"note" db:"note"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// EmployeeCreateDTO - входные данные для создания сотрудника
type EmployeeCreateDTO struct {
	Name      string `json:"name"`
	Allowance int    `json:"allowance"`
	Color     string `json:"color"`
}

// VacationCreateDTO - входные данные для создания записи об отпуске
type VacationCreateDTO struct {
	EmployeeID  int        `json:"employee_id"`
	StartDate   CustomDate `json:"start_date"`
	EndDate     CustomDate `json:"end_date"`
	WorkingDays int        `json:"working_days"`
	Note        string     `json:"note"`
}

// BackupStatusDTO - ответ на запрос времени следующего резервного копирования
type BackupStatusDTO struct {
	Success             bool   `json:"success"`
	NextBackupTime      string `json:"nextBackupTime"`
	NextBackupFormatted string `json:"nextBackupFormatted"`
}

// WithinYear сообщает, лежит ли отпуск целиком внутри указанного календарного года.
// Записи, частично выходящие за границы года, не учитываются вовсе, без пропорционального деления.
func (v Vacation) WithinYear(year int) bool {
	if v.StartDate.IsZero() || v.EndDate.IsZero() {
		return false
	}
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return !v.StartDate.Time.Before(yearStart) && !v.EndDate.Time.After(yearEnd)
}
