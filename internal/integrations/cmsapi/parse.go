package cmsapi

import (
	"fmt"
	"time"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/pkg/ptr"
	"github.com/academyhall/booking-gateway/pkg/types"
)

// parseAcademy normalizes a raw academy onto the strict domain type.
// A missing halls array degrades to an empty slice, never an error.
func parseAcademy(raw rawAcademy) (domain.Academy, error) {
	if raw.Name == "" {
		return domain.Academy{}, fmt.Errorf("%w: academy without name", ErrInvalidResponse)
	}

	academy := domain.Academy{
		ID:       raw.Name,
		Name:     raw.AcademyName,
		Location: raw.Location,
		ImageURL: raw.Attachment,
		Halls:    make([]domain.Hall, 0, len(raw.Halls)),
	}
	if academy.Name == "" {
		academy.Name = raw.Name
	}

	for _, h := range raw.Halls {
		if h.Name == "" {
			continue
		}
		academy.Halls = append(academy.Halls, domain.Hall{
			ID:              h.Name,
			Name:            h.HallName,
			AcademyID:       raw.Name,
			Capacity:        int(numberOr(h.Capacity, 0)),
			WifiAvailable:   numberOr(h.Wifi, 0) != 0,
			ScreenAvailable: numberOr(h.Screen, 0) != 0,
		})
	}
	return academy, nil
}

func parseMasterData(raw rawMasterData) *domain.MasterData {
	return &domain.MasterData{
		MerilianCodes:  parseLookupList(raw.MerilianCodes),
		Verticals:      parseLookupList(raw.Verticals),
		Departments:    parseLookupList(raw.Departments),
		EventTitles:    parseLookupList(raw.EventTitles),
		BookingTypes:   parseLookupList(raw.BookingTypes),
		ITRequirements: parseLookupList(raw.ITRequirements),
	}
}

func parseLookupList(items []rawLookupItem) []domain.LookupItem {
	out := make([]domain.LookupItem, 0, len(items))
	for _, item := range items {
		label := item.Label
		if label == "" {
			label = item.Name
		}
		out = append(out, domain.LookupItem{Name: item.Name, Label: label})
	}
	return out
}

// parseBooking maps the duck-typed CMS record onto the strict internal
// Booking. A record without a booking id is unrecoverable; absent dates
// or sessions are merely optional and default gracefully.
func parseBooking(raw rawBooking) (*domain.Booking, error) {
	if raw.BookingID == "" {
		return nil, fmt.Errorf("%w: booking without booking_id", ErrInvalidResponse)
	}

	booking := &domain.Booking{
		ID:                raw.BookingID,
		AcademyID:         firstNonEmpty(raw.AcademyID, raw.Academy),
		AcademyName:       raw.Academy,
		HallName:          raw.Hall,
		EventTitle:        raw.EventTitle,
		Description:       raw.Description,
		Organizer:         raw.FullName,
		Department:        raw.Department,
		ContactNumber:     raw.ContactNumber,
		Email:             raw.Email,
		MerilianCode:      raw.MerilianCode,
		Status:            domain.NormalizeStatus(raw.EventStatus),
		OverallStatus:     raw.OverallStatus,
		EventStartDate:    parseOptionalDate(raw.EventStartDate),
		EventEndDate:      parseOptionalDate(raw.EventEndDate),
		ParticipantsCount: int(numberOr(raw.NoOfParticipants, 0)),
		Sessions:          make([]domain.BookingSession, 0, len(raw.Sessions)),
	}

	for _, s := range raw.Sessions {
		date := parseOptionalDate(s.EventDate)
		if date == nil {
			// a plan row without a date cannot be rendered anywhere
			continue
		}
		booking.Sessions = append(booking.Sessions, domain.BookingSession{
			ID:          s.Name,
			HallID:      s.Hall,
			HallName:    firstNonEmpty(s.HallName, s.Hall),
			BookingType: s.BookingType,
			EventDate:   *date,
			StartTime:   types.TimeString(s.StartTime),
			EndTime:     types.TimeString(s.EndTime),
		})
	}
	return booking, nil
}

func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	d, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil
	}
	return ptr.Ptr(d)
}

func numberOr(n interface{ Int64() (int64, error) }, fallback int64) int64 {
	v, err := n.Int64()
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
