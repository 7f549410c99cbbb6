package apperrors

import (
	"errors"
	"fmt"
)

// Базовые категории ошибок приложения. Конкретные ошибки оборачивают
// одну из них через fmt.Errorf с %w, обработчики сопоставляют через errors.Is
// и переводят в HTTP-статусы (400/404/500).
var (
	// ErrValidation - некорректные входные данные (форма или диапазон)
	ErrValidation = errors.New("ошибка валидации")
	// ErrNotFound - запрошенная сущность не существует
	ErrNotFound = errors.New("не найдено")
	// ErrDataAccess - хранилище недоступно или вернуло ошибку
	ErrDataAccess = errors.New("ошибка доступа к данным")
	// ErrDelivery - не удалось доставить резервную копию
	ErrDelivery = errors.New("ошибка доставки")
)

// Validation оборачивает сообщение в ErrValidation
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound оборачивает сообщение в ErrNotFound
func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// DataAccess оборачивает исходную ошибку хранилища, сохраняя ее для логов
func DataAccess(msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDataAccess, msg, err)
}

// Delivery оборачивает исходную ошибку доставки, сохраняя ее для логов
func Delivery(msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDelivery, msg, err)
}
