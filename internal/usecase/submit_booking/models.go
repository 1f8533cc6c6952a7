package submit_booking

import "github.com/academyhall/booking-gateway/internal/domain"

// Request входные данные отправки формы
type Request struct {
	FormID string
	UserID string
}

// Response результат отправки: либо идентификатор созданного
// бронирования, либо карта ошибок валидации.
type Response struct {
	BookingID string             `json:"bookingId,omitempty"`
	Errors    domain.FieldErrors `json:"errors,omitempty"`
}
