package submit_booking

import "errors"

var (
	// ErrFormNotFound возвращается, когда сессия формы не найдена
	ErrFormNotFound = errors.New("submit_booking: form session not found")

	// ErrAccessDenied возвращается, когда сессия формы принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrValidation возвращается, когда форма не прошла валидацию;
	// подробности лежат в Response.Errors
	ErrValidation = errors.New("submit_booking: validation failed")

	// ErrSubmitInFlight возвращается при повторной отправке той же формы,
	// пока предыдущая отправка ещё выполняется
	ErrSubmitInFlight = errors.New("submit_booking: submission already in flight")

	// ErrUnauthorized возвращается, когда CMS сессия истекла
	ErrUnauthorized = errors.New("submit_booking: unauthorized")

	// ErrRemoteRejected возвращается, когда CMS отклонила бронирование
	ErrRemoteRejected = errors.New("submit_booking: remote rejected booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
