package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном годе или месяце
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrUnauthorized возвращается, когда CMS сессия истекла
	ErrUnauthorized = errors.New("get_calendar: unauthorized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
