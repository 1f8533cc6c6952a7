package formsession

import "errors"

var (
	// ErrNotFound возвращается, когда сессия формы не найдена
	ErrNotFound = errors.New("formsession.repository: form session not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("formsession.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("formsession.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("formsession.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации состояния формы
	ErrMarshal = errors.New("formsession.repository: failed to marshal form state")
)
