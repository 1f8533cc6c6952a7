package submit_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/academyhall/booking-gateway/internal/domain"
)

func validState() *domain.FormState {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	return &domain.FormState{
		AcademyID:            "ACAD-1",
		MerilianCode:         "MC-77",
		FullName:             "Jamie Doe",
		ContactNumber:        "+7 900 000 00 00",
		AttendeesVertical:    "Retail",
		AttendeesDepartment:  "Sales",
		TrainingTitle:        "Go Fundamentals",
		Description:          "Three day onboarding",
		StartDate:            &start,
		EndDate:              &end,
		NumberOfParticipants: "25",
		ITRequirements:       "Projector",
		Email:                "jamie@example.com",
		MATSEvent:            "no",
	}
}

func validPlans() []domain.SessionEntry {
	return []domain.SessionEntry{
		{
			ID:          "e1",
			HallID:      "HALL-1",
			BookingType: "Full Day",
			EventDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			StartTime:   "09:00",
			EndTime:     "17:00",
		},
	}
}

func TestValidate_ValidForm(t *testing.T) {
	errs := validate(validState(), validPlans())
	require.Empty(t, errs)
}

func TestValidate_RequiredFields(t *testing.T) {
	state := validState()
	state.AcademyID = ""
	state.FullName = "   "
	state.Description = ""

	errs := validate(state, validPlans())
	require.Equal(t, "Academy is required", errs[domain.FieldAcademy])
	require.Equal(t, "Full name is required", errs[domain.FieldFullName])
	require.Equal(t, "Description is required", errs[domain.FieldDescription])
	// заполненные поля не трогаются
	require.False(t, errs.Has(domain.FieldEmail))
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	errs := validate(&domain.FormState{}, nil)

	// все правила считаются независимо, без short-circuit
	require.GreaterOrEqual(t, len(errs), 11)
	require.True(t, errs.Has(domain.FieldSessions))
	require.True(t, errs.Has(domain.FieldStartDate))
	require.True(t, errs.Has(domain.FieldEndDate))
}

func TestValidate_SpecificRequirementsOptional(t *testing.T) {
	state := validState()
	state.SpecificRequirements = ""

	errs := validate(state, validPlans())
	require.False(t, errs.Has(domain.FieldSpecificRequirements))
}

func TestValidate_EmailFormat(t *testing.T) {
	state := validState()
	state.Email = "not-an-email"

	errs := validate(state, validPlans())
	require.Equal(t, "Invalid email address", errs[domain.FieldEmail])

	// пустой email получает сообщение об обязательности, не о формате
	state.Email = ""
	errs = validate(state, validPlans())
	require.Equal(t, "Email is required", errs[domain.FieldEmail])
}

func TestValidate_MATSConditional(t *testing.T) {
	state := validState()
	state.MATSEvent = "yes"
	state.MATSRequestNo = ""

	errs := validate(state, validPlans())
	require.True(t, errs.Has(domain.FieldMATSRequestNo))

	// регистр флага не важен
	state.MATSEvent = "Yes"
	errs = validate(state, validPlans())
	require.True(t, errs.Has(domain.FieldMATSRequestNo))

	state.MATSEvent = "no"
	errs = validate(state, validPlans())
	require.False(t, errs.Has(domain.FieldMATSRequestNo))

	state.MATSEvent = "yes"
	state.MATSRequestNo = "REQ-1"
	errs = validate(state, validPlans())
	require.False(t, errs.Has(domain.FieldMATSRequestNo))
}

func TestValidate_DateOrdering(t *testing.T) {
	state := validState()
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	state.StartDate = &start
	state.EndDate = &end

	errs := validate(state, validPlans())
	require.True(t, errs.Has(domain.FieldEndDate))

	// совпадающие даты допустимы
	state.EndDate = &start
	errs = validate(state, validPlans())
	require.False(t, errs.Has(domain.FieldEndDate))
}

func TestValidate_MissingDates(t *testing.T) {
	state := validState()
	state.StartDate = nil
	state.EndDate = nil

	errs := validate(state, validPlans())
	require.True(t, errs.Has(domain.FieldStartDate))
	require.True(t, errs.Has(domain.FieldEndDate))
}

func TestValidate_SessionListRequired(t *testing.T) {
	errs := validate(validState(), nil)
	require.Equal(t, "Add at least one session plan", errs[domain.FieldSessions])
}

func TestValidate_ParticipantsNumeric(t *testing.T) {
	state := validState()
	state.NumberOfParticipants = "many"

	errs := validate(state, validPlans())
	require.True(t, errs.Has(domain.FieldNumberOfParticipants))
}
