package handlers

import (
	"time"

	"github.com/academyhall/booking-gateway/internal/domain"
)

// FormSessionView HTTP представление сессии формы, общее для всех
// операций над формой
type FormSessionView struct {
	ID        string                `json:"id"`
	State     domain.FormState      `json:"state"`
	Draft     domain.SessionDraft   `json:"draft"`
	Plans     []domain.SessionEntry `json:"plans"`
	Errors    domain.FieldErrors    `json:"errors"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// FormSessionViewFrom конвертирует доменную сессию формы в HTTP представление
func FormSessionViewFrom(fs *domain.FormSession) *FormSessionView {
	plans := fs.Plans
	if plans == nil {
		plans = []domain.SessionEntry{}
	}
	errs := fs.Errors
	if errs == nil {
		errs = domain.FieldErrors{}
	}
	return &FormSessionView{
		ID:        fs.ID,
		State:     fs.State,
		Draft:     fs.Draft,
		Plans:     plans,
		Errors:    errs,
		CreatedAt: fs.CreatedAt,
		UpdatedAt: fs.UpdatedAt,
	}
}

// BookingSessionView HTTP представление одной строки плана бронирования
type BookingSessionView struct {
	ID          string `json:"id"`
	HallID      string `json:"hallId"`
	HallName    string `json:"hallName,omitempty"`
	BookingType string `json:"bookingType"`
	EventDate   string `json:"eventDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// BookingView HTTP представление отправленного бронирования
type BookingView struct {
	ID                string               `json:"id"`
	AcademyID         string               `json:"academyId,omitempty"`
	AcademyName       string               `json:"academyName,omitempty"`
	HallName          string               `json:"hallName,omitempty"`
	EventTitle        string               `json:"eventTitle"`
	Description       string               `json:"description,omitempty"`
	Organizer         string               `json:"organizer,omitempty"`
	Department        string               `json:"department,omitempty"`
	ContactNumber     string               `json:"contactNumber,omitempty"`
	Email             string               `json:"email,omitempty"`
	MerilianCode      string               `json:"merilianCode,omitempty"`
	Status            string               `json:"status"`
	OverallStatus     string               `json:"overallStatus,omitempty"`
	EventStartDate    string               `json:"eventStartDate,omitempty"`
	EventEndDate      string               `json:"eventEndDate,omitempty"`
	ParticipantsCount int                  `json:"participantsCount,omitempty"`
	Sessions          []BookingSessionView `json:"sessions"`
}

// BookingViewFrom конвертирует доменное бронирование в HTTP представление
func BookingViewFrom(b *domain.Booking) *BookingView {
	view := &BookingView{
		ID:                b.ID,
		AcademyID:         b.AcademyID,
		AcademyName:       b.AcademyName,
		HallName:          b.HallName,
		EventTitle:        b.EventTitle,
		Description:       b.Description,
		Organizer:         b.Organizer,
		Department:        b.Department,
		ContactNumber:     b.ContactNumber,
		Email:             b.Email,
		MerilianCode:      b.MerilianCode,
		Status:            string(b.Status),
		OverallStatus:     b.OverallStatus,
		ParticipantsCount: b.ParticipantsCount,
		Sessions:          make([]BookingSessionView, 0, len(b.Sessions)),
	}
	if b.EventStartDate != nil {
		view.EventStartDate = b.EventStartDate.Format(domain.DateFormat)
	}
	if b.EventEndDate != nil {
		view.EventEndDate = b.EventEndDate.Format(domain.DateFormat)
	}
	for _, s := range b.Sessions {
		view.Sessions = append(view.Sessions, BookingSessionView{
			ID:          s.ID,
			HallID:      s.HallID,
			HallName:    s.HallName,
			BookingType: s.BookingType,
			EventDate:   s.EventDate.Format(domain.DateFormat),
			StartTime:   string(s.StartTime),
			EndTime:     string(s.EndTime),
		})
	}
	return view
}

// BookingViewsFrom конвертирует срез бронирований
func BookingViewsFrom(bookings []*domain.Booking) []*BookingView {
	views := make([]*BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingViewFrom(b))
	}
	return views
}
