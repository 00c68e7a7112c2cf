package domain

import (
	"errors"
	"fmt"

	"consultcare/pkg/timewindow"
)

var (
	ErrInvalidFormat = timewindow.ErrInvalidFormat
	ErrInvalidWindow = timewindow.ErrInvalidWindow

	ErrInvalidDate     = errors.New("неверный формат даты, ожидается YYYY-MM-DD")
	ErrInvalidDuration = errors.New("длительность слота должна быть от 15 до 120 минут")
	ErrInvalidInput    = errors.New("некорректные входные данные")

	ErrNotFound     = errors.New("запись не найдена")
	ErrConflict     = errors.New("конфликт с существующей записью")
	ErrUnauthorized = errors.New("требуется авторизация")
	ErrForbidden    = errors.New("доступ запрещен")

	// ErrAlreadyExists is a uniqueness conflict on create, so it also matches ErrConflict.
	ErrAlreadyExists = fmt.Errorf("запись уже существует, используйте обновление: %w", ErrConflict)

	ErrConsultantNotFound = fmt.Errorf("консультант не найден: %w", ErrNotFound)
	ErrScheduleNotFound   = fmt.Errorf("недельное расписание не найдено: %w", ErrNotFound)
	ErrOverrideNotFound   = fmt.Errorf("исключение в расписании не найдено: %w", ErrNotFound)
)

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInvalidInput)
}
