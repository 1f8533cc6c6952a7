package cmsapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/academyhall/booking-gateway/internal/domain"
)

func TestParseAcademy(t *testing.T) {
	raw := rawAcademy{
		Name:        "ACAD-1",
		AcademyName: "Central Academy",
		Location:    "Moscow",
		Halls: []rawHall{
			{Name: "HALL-1", HallName: "Main Hall", Capacity: json.Number("120"), Wifi: json.Number("1"), Screen: json.Number("0")},
			{Name: "", HallName: "ignored"},
		},
	}

	academy, err := parseAcademy(raw)
	require.NoError(t, err)
	require.Equal(t, "ACAD-1", academy.ID)
	require.Equal(t, "Central Academy", academy.Name)
	require.Len(t, academy.Halls, 1)

	hall := academy.Halls[0]
	require.Equal(t, "HALL-1", hall.ID)
	require.Equal(t, "ACAD-1", hall.AcademyID)
	require.Equal(t, 120, hall.Capacity)
	require.True(t, hall.WifiAvailable)
	require.False(t, hall.ScreenAvailable)
}

func TestParseAcademy_MissingName(t *testing.T) {
	_, err := parseAcademy(rawAcademy{AcademyName: "x"})
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseBooking(t *testing.T) {
	raw := rawBooking{
		BookingID:        "HB-042",
		Academy:          "Central Academy",
		AcademyID:        "ACAD-1",
		FullName:         "Jamie Doe",
		EventTitle:       "Go Fundamentals",
		EventStatus:      "Upcoming",
		EventStartDate:   "2026-09-10",
		EventEndDate:     "2026-09-12",
		NoOfParticipants: json.Number("25"),
		Sessions: []rawSession{
			{Name: "S1", Hall: "HALL-1", HallName: "Main Hall", BookingType: "Full Day", EventDate: "2026-09-10", StartTime: "09:00:00", EndTime: "17:00:00"},
			{Name: "S2", Hall: "HALL-1", BookingType: "Full Day", EventDate: ""},
		},
	}

	booking, err := parseBooking(raw)
	require.NoError(t, err)
	require.Equal(t, "HB-042", booking.ID)
	require.Equal(t, "ACAD-1", booking.AcademyID)

	// статус нормализуется к нижнему регистру
	require.Equal(t, domain.StatusUpcoming, booking.Status)
	require.Equal(t, domain.BucketApproved, booking.Status.Bucket())

	require.NotNil(t, booking.EventStartDate)
	require.Equal(t, "2026-09-10", booking.EventStartDate.Format(domain.DateFormat))
	require.Equal(t, 25, booking.ParticipantsCount)

	// строка плана без даты отбрасывается
	require.Len(t, booking.Sessions, 1)
	require.Equal(t, "Main Hall", booking.Sessions[0].HallName)
}

func TestParseBooking_MissingID(t *testing.T) {
	_, err := parseBooking(rawBooking{EventTitle: "x"})
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseBooking_OptionalDates(t *testing.T) {
	booking, err := parseBooking(rawBooking{BookingID: "HB-1", EventStartDate: "not-a-date"})
	require.NoError(t, err)
	require.Nil(t, booking.EventStartDate)
	require.Nil(t, booking.EventEndDate)
}
