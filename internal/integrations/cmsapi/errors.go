package cmsapi

import "errors"

var (
	// ErrUnauthorized возвращается, когда CMS сессия отсутствует или истекла
	ErrUnauthorized = errors.New("cmsapi client: unauthorized")

	// ErrInvalidCredentials возвращается при неверном логине/пароле
	ErrInvalidCredentials = errors.New("cmsapi client: invalid credentials")

	// ErrNotFound возвращается, когда запрошенная запись не найдена в CMS
	ErrNotFound = errors.New("cmsapi client: record not found")

	// ErrRemote возвращается, когда CMS отклонила запрос; текст ошибки
	// извлекается из вложенного ответа (см. unwrap.go)
	ErrRemote = errors.New("cmsapi client: remote error")

	// ErrInvalidResponse возвращается при некорректной форме ответа CMS
	ErrInvalidResponse = errors.New("cmsapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cmsapi client: internal error")
)
