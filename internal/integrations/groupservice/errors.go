package groupservice

import "errors"

var (
	// ErrUnitNotFound возвращается, когда юнит не найден
	ErrUnitNotFound = errors.New("unit not found")

	// ErrGroupNotFound возвращается, когда группа (ресторанная сеть) не найдена
	ErrGroupNotFound = errors.New("group not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("groupservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("groupservice client: invalid response")
)
