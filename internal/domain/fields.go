package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Section identifies the booking-form section a field belongs to
type Section string

const (
	SectionHall         Section = "hall"
	SectionSession      Section = "session"
	SectionParticipants Section = "participants"
	SectionGlobal       Section = "global"
)

// Field is a structured reference to a single form field, tagged by its
// section. It replaces ad-hoc "section.field" string paths so the
// validator and the form manager agree on field identity at compile time.
type Field struct {
	Section Section
	Name    string
}

// Path returns the wire representation, e.g. "participants.email"
func (f Field) Path() string {
	return string(f.Section) + "." + f.Name
}

// Hall Booking Information section
var (
	FieldAcademy             = Field{SectionHall, "academy"}
	FieldMerilianCode        = Field{SectionHall, "merilianCode"}
	FieldFullName            = Field{SectionHall, "fullName"}
	FieldContactNumber       = Field{SectionHall, "contactNumber"}
	FieldAttendeesVertical   = Field{SectionHall, "attendeesVertical"}
	FieldAttendeesDepartment = Field{SectionHall, "attendeesDepartment"}
	FieldTrainingTitle       = Field{SectionHall, "trainingTitle"}
	FieldDescription         = Field{SectionHall, "description"}
	FieldStartDate           = Field{SectionHall, "startDate"}
	FieldEndDate             = Field{SectionHall, "endDate"}
)

// Day-wise plan (session draft) section
var (
	FieldTrainingHall = Field{SectionSession, "trainingHall"}
	FieldBookingType  = Field{SectionSession, "bookingType"}
	FieldEventDate    = Field{SectionSession, "eventDate"}
	FieldStartTime    = Field{SectionSession, "startTime"}
	FieldEndTime      = Field{SectionSession, "endTime"}
)

// Participants section
var (
	FieldNumberOfParticipants = Field{SectionParticipants, "numberOfParticipants"}
	FieldITRequirements       = Field{SectionParticipants, "itRequirements"}
	FieldSpecificRequirements = Field{SectionParticipants, "specificRequirements"}
	FieldEmail                = Field{SectionParticipants, "email"}
	FieldMATSEvent            = Field{SectionParticipants, "matsEvent"}
	FieldMATSRequestNo        = Field{SectionParticipants, "matsRequestNo"}
)

// List-level errors
var (
	FieldSessions = Field{SectionGlobal, "sessions"}
)

// FieldFromPath parses a "section.field" path back into a Field
func FieldFromPath(path string) (Field, error) {
	section, name, ok := strings.Cut(path, ".")
	if !ok || section == "" || name == "" {
		return Field{}, fmt.Errorf("invalid field path %q", path)
	}
	switch Section(section) {
	case SectionHall, SectionSession, SectionParticipants, SectionGlobal:
		return Field{Section(section), name}, nil
	default:
		return Field{}, fmt.Errorf("unknown field section %q", section)
	}
}

// FieldErrors maps form fields to human-readable validation messages.
// An empty map means the form is valid.
type FieldErrors map[Field]string

// Has reports whether the field currently carries an error
func (e FieldErrors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Clear removes the error for the field, if any
func (e FieldErrors) Clear(f Field) {
	delete(e, f)
}

// MarshalJSON renders the map with "section.field" string keys
func (e FieldErrors) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(e))
	for f, msg := range e {
		out[f.Path()] = msg
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses "section.field" string keys back into Fields
func (e *FieldErrors) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FieldErrors, len(raw))
	for path, msg := range raw {
		f, err := FieldFromPath(path)
		if err != nil {
			return err
		}
		out[f] = msg
	}
	*e = out
	return nil
}
