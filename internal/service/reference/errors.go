package reference

import "errors"

var (
	// ErrUnauthorized возвращается, когда CMS сессия истекла
	ErrUnauthorized = errors.New("reference: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reference: internal error")
)
