package submit_booking

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/academyhall/booking-gateway/internal/domain"
)

const (
	msgInvalidEmail   = "Invalid email address"
	msgNoSessions     = "Add at least one session plan"
	msgBothDates      = "Both start and end dates are required"
	msgEndBeforeStart = "End date cannot be before start date"
	msgNotANumber     = "Number of participants must be a number"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// requiredField связывает обязательное поле формы с его подписью в сообщении об ошибке
type requiredField struct {
	field domain.Field
	label string
	value func(*domain.FormState) string
}

var requiredFields = []requiredField{
	{domain.FieldAcademy, "Academy", func(s *domain.FormState) string { return s.AcademyID }},
	{domain.FieldMerilianCode, "Merilian code", func(s *domain.FormState) string { return s.MerilianCode }},
	{domain.FieldFullName, "Full name", func(s *domain.FormState) string { return s.FullName }},
	{domain.FieldContactNumber, "Contact number", func(s *domain.FormState) string { return s.ContactNumber }},
	{domain.FieldEmail, "Email", func(s *domain.FormState) string { return s.Email }},
	{domain.FieldAttendeesDepartment, "Attendees department", func(s *domain.FormState) string { return s.AttendeesDepartment }},
	{domain.FieldTrainingTitle, "Training title", func(s *domain.FormState) string { return s.TrainingTitle }},
	{domain.FieldDescription, "Description", func(s *domain.FormState) string { return s.Description }},
	{domain.FieldNumberOfParticipants, "Number of participants", func(s *domain.FormState) string { return s.NumberOfParticipants }},
	{domain.FieldITRequirements, "IT requirements", func(s *domain.FormState) string { return s.ITRequirements }},
	{domain.FieldMATSEvent, "MATS event", func(s *domain.FormState) string { return s.MATSEvent }},
}

// validate checks the whole form before submission. All rules run
// independently so every violation is collected in one pass; an empty
// map means the form may be submitted.
func validate(state *domain.FormState, plans []domain.SessionEntry) domain.FieldErrors {
	fieldErrors := domain.FieldErrors{}

	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.value(state)) == "" {
			fieldErrors[rf.field] = rf.label + " is required"
		}
	}

	// Формат email проверяется только когда поле заполнено, чтобы не
	// затирать сообщение об обязательности.
	if email := strings.TrimSpace(state.Email); email != "" && !emailPattern.MatchString(email) {
		fieldErrors[domain.FieldEmail] = msgInvalidEmail
	}

	// MATS request number обязателен только при matsEvent = yes.
	if strings.EqualFold(strings.TrimSpace(state.MATSEvent), domain.MATSYes) &&
		strings.TrimSpace(state.MATSRequestNo) == "" {
		fieldErrors[domain.FieldMATSRequestNo] = "MATS request number is required"
	}

	if n := strings.TrimSpace(state.NumberOfParticipants); n != "" {
		if _, err := strconv.Atoi(n); err != nil {
			fieldErrors[domain.FieldNumberOfParticipants] = msgNotANumber
		}
	}

	if state.StartDate == nil {
		fieldErrors[domain.FieldStartDate] = msgBothDates
	}
	if state.EndDate == nil {
		fieldErrors[domain.FieldEndDate] = msgBothDates
	}
	if state.StartDate != nil && state.EndDate != nil && state.EndDate.Before(*state.StartDate) {
		fieldErrors[domain.FieldEndDate] = msgEndBeforeStart
	}

	if len(plans) == 0 {
		fieldErrors[domain.FieldSessions] = msgNoSessions
	}

	return fieldErrors
}
