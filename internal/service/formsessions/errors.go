package formsessions

import "errors"

var (
	// ErrNotFound возвращается, когда сессия формы не найдена
	ErrNotFound = errors.New("formsessions: form session not found")

	// ErrAccessDenied возвращается при обращении к чужой сессии формы
	ErrAccessDenied = errors.New("formsessions: access denied")

	// ErrInvalidField возвращается при обновлении неизвестного или
	// некорректного поля формы
	ErrInvalidField = errors.New("formsessions: invalid field update")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("formsessions: internal error")
)
