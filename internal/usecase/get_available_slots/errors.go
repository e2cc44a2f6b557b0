package get_available_slots

import "errors"

var (
	// ErrUnitNotFound возвращается, когда юнит не найден
	ErrUnitNotFound = errors.New("get_available_slots: unit not found")

	// ErrInvalidDate возвращается при некорректной дате (в том числе в прошлом)
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidDuration возвращается, когда длительность вне границ политики
	ErrInvalidDuration = errors.New("get_available_slots: invalid duration")

	// ErrInvalidGranularity возвращается при некорректном шаге сетки слотов
	ErrInvalidGranularity = errors.New("get_available_slots: invalid slot granularity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
