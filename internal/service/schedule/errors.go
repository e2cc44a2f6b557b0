package schedule

import "errors"

var (
	// ErrUnitNotFound возвращается, когда юнит не найден
	ErrUnitNotFound = errors.New("schedule: unit not found")

	// ErrIntervalNotFound возвращается, когда блокирующий интервал не найден
	ErrIntervalNotFound = errors.New("schedule: blocked interval not found")

	// ErrAccessDenied возвращается, когда пользователь не менеджер юнита
	ErrAccessDenied = errors.New("schedule: access denied")

	// ErrInvalidSchedule возвращается при некорректном недельном расписании
	ErrInvalidSchedule = errors.New("schedule: invalid week schedule")

	// ErrInvalidInterval возвращается при некорректном блокирующем интервале
	ErrInvalidInterval = errors.New("schedule: invalid blocked interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
