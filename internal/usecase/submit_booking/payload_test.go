package submit_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/academyhall/booking-gateway/internal/domain"
)

func TestBuildPayload_DatesVerbatim(t *testing.T) {
	state := validState()
	payload := buildPayload(state, validPlans())

	// выбранный календарный день уходит как есть, без сдвига таймзоны
	require.Equal(t, "2026-09-10", payload.EventStartDate)
	require.Equal(t, "2026-09-12", payload.EventEndDate)
	require.Equal(t, "2026-09-10", payload.Plans[0].EventDate)
}

func TestBuildPayload_TimeNormalization(t *testing.T) {
	plans := validPlans()
	plans[0].StartTime = "09:00"
	plans[0].EndTime = "17:30:15"

	payload := buildPayload(validState(), plans)
	require.Equal(t, "09:00:00", payload.Plans[0].StartTime)
	// время с секундами проходит без изменений
	require.Equal(t, "17:30:15", payload.Plans[0].EndTime)
}

func TestBuildPayload_MATSCapitalization(t *testing.T) {
	state := validState()

	state.MATSEvent = "yes"
	require.Equal(t, "Yes", buildPayload(state, validPlans()).MATSEvent)

	state.MATSEvent = "no"
	require.Equal(t, "No", buildPayload(state, validPlans()).MATSEvent)
}

func TestBuildPayload_ParticipantsCoercion(t *testing.T) {
	state := validState()
	state.NumberOfParticipants = " 25 "

	payload := buildPayload(state, validPlans())
	require.Equal(t, 25, payload.NoOfParticipants)
}

func TestBuildPayload_OneRowPerEntry(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	plans := []domain.SessionEntry{
		{ID: "e1", HallID: "HALL-1", BookingType: "Full Day", EventDate: day, StartTime: "09:00", EndTime: "12:00"},
		{ID: "e2", HallID: "HALL-2", BookingType: "Full Day", EventDate: day, StartTime: "09:00", EndTime: "12:00"},
	}

	payload := buildPayload(validState(), plans)

	// строки с одинаковой датой не схлопываются
	require.Len(t, payload.Plans, 2)
	require.Equal(t, "HALL-1", payload.Plans[0].Hall)
	require.Equal(t, "HALL-2", payload.Plans[1].Hall)
}

func TestBuildPayload_CopiesFormFields(t *testing.T) {
	state := validState()
	payload := buildPayload(state, validPlans())

	require.Equal(t, state.AcademyID, payload.Academy)
	require.Equal(t, state.TrainingTitle, payload.EventTitle)
	require.Equal(t, state.Email, payload.Email)
	require.Equal(t, state.MerilianCode, payload.MerilianCode)
}
