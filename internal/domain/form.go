package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/academyhall/booking-gateway/pkg/ptr"
	"github.com/academyhall/booking-gateway/pkg/types"
)

// ErrUnknownField is returned when a field update names a field the form
// does not have
var ErrUnknownField = errors.New("domain: unknown form field")

// FormState is the mutable, in-progress booking record a user edits.
// It lives for the duration of one form session and is discarded once
// submission succeeds.
type FormState struct {
	AcademyID            string     `json:"academy"`
	MerilianCode         string     `json:"merilianCode"`
	FullName             string     `json:"fullName"`
	ContactNumber        string     `json:"contactNumber"`
	AttendeesVertical    string     `json:"attendeesVertical"`
	AttendeesDepartment  string     `json:"attendeesDepartment"`
	TrainingTitle        string     `json:"trainingTitle"`
	Description          string     `json:"description"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	NumberOfParticipants string     `json:"numberOfParticipants"`
	ITRequirements       string     `json:"itRequirements"`
	SpecificRequirements string     `json:"specificRequirements"`
	Email                string     `json:"email"`
	MATSEvent            string     `json:"matsEvent"`
	MATSRequestNo        string     `json:"matsRequestNo"`
}

// Set replaces a single field value. Date fields expect YYYY-MM-DD.
func (s *FormState) Set(f Field, value string) error {
	switch f {
	case FieldAcademy:
		s.AcademyID = value
	case FieldMerilianCode:
		s.MerilianCode = value
	case FieldFullName:
		s.FullName = value
	case FieldContactNumber:
		s.ContactNumber = value
	case FieldAttendeesVertical:
		s.AttendeesVertical = value
	case FieldAttendeesDepartment:
		s.AttendeesDepartment = value
	case FieldTrainingTitle:
		s.TrainingTitle = value
	case FieldDescription:
		s.Description = value
	case FieldStartDate:
		d, err := parseFormDate(value)
		if err != nil {
			return err
		}
		s.StartDate = d
	case FieldEndDate:
		d, err := parseFormDate(value)
		if err != nil {
			return err
		}
		s.EndDate = d
	case FieldNumberOfParticipants:
		s.NumberOfParticipants = value
	case FieldITRequirements:
		s.ITRequirements = value
	case FieldSpecificRequirements:
		s.SpecificRequirements = value
	case FieldEmail:
		s.Email = value
	case FieldMATSEvent:
		s.MATSEvent = value
	case FieldMATSRequestNo:
		s.MATSRequestNo = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f.Path())
	}
	return nil
}

// SessionDraft is the day-wise plan entry currently being composed.
// HallIDs keeps selection order; each selected hall becomes its own
// committed SessionEntry on add.
type SessionDraft struct {
	HallIDs     []string         `json:"hallIds"`
	BookingType string           `json:"bookingType"`
	EventDate   *time.Time       `json:"eventDate,omitempty"`
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
}

// Set replaces one scalar draft field. Hall selection goes through
// SetHalls since it is the only multi-valued field.
func (d *SessionDraft) Set(f Field, value string) error {
	switch f {
	case FieldBookingType:
		d.BookingType = value
	case FieldEventDate:
		dt, err := parseFormDate(value)
		if err != nil {
			return err
		}
		d.EventDate = dt
	case FieldStartTime:
		d.StartTime = types.TimeString(value)
	case FieldEndTime:
		d.EndTime = types.TimeString(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f.Path())
	}
	return nil
}

// SetHalls replaces the hall selection, preserving the given order
func (d *SessionDraft) SetHalls(ids []string) {
	d.HallIDs = append([]string(nil), ids...)
}

// Complete reports whether every field required to commit the draft is set
func (d *SessionDraft) Complete() bool {
	return len(d.HallIDs) > 0 &&
		d.BookingType != "" &&
		d.EventDate != nil &&
		d.StartTime != "" &&
		d.EndTime != ""
}

// Reset returns the draft to its empty shape
func (d *SessionDraft) Reset() {
	*d = SessionDraft{}
}

// Expand synthesizes one SessionEntry per selected hall, in selection
// order. Every entry gets a fresh random id and its own copy of the
// draft fields, so later draft mutation cannot alter committed entries.
func (d *SessionDraft) Expand() []SessionEntry {
	entries := make([]SessionEntry, 0, len(d.HallIDs))
	for _, hallID := range d.HallIDs {
		entries = append(entries, SessionEntry{
			ID:          uuid.NewString(),
			HallID:      hallID,
			BookingType: d.BookingType,
			EventDate:   *d.EventDate,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
		})
	}
	return entries
}

// SessionEntry is one committed day-and-hall plan row. The id is local
// to the form session, used only for rendering and removal; the CMS
// assigns persisted identity on submit.
type SessionEntry struct {
	ID          string           `json:"id"`
	HallID      string           `json:"hallId"`
	BookingType string           `json:"bookingType"`
	EventDate   time.Time        `json:"eventDate"`
	StartTime   types.TimeString `json:"startTime"`
	EndTime     types.TimeString `json:"endTime"`
}

// FormSession aggregates everything one user edits while composing a
// booking: the form state, the draft, the committed plan list and the
// current field errors. Owned exclusively by its editor.
type FormSession struct {
	ID        string
	UserID    string
	State     FormState
	Draft     SessionDraft
	Plans     []SessionEntry
	Errors    FieldErrors
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFormSession creates an empty form session for the user
func NewFormSession(userID string) *FormSession {
	return &FormSession{
		ID:     uuid.NewString(),
		UserID: userID,
		Errors: FieldErrors{},
	}
}

// CommitDraft runs the add-session step: if the draft is incomplete it
// records a single list-level error and commits nothing; otherwise it
// appends the expanded entries in one update, resets the draft and
// clears the list-level error. Returns the committed entries.
func (fs *FormSession) CommitDraft(incompleteMsg string) ([]SessionEntry, bool) {
	if !fs.Draft.Complete() {
		fs.Errors[FieldSessions] = incompleteMsg
		return nil, false
	}

	entries := fs.Draft.Expand()
	fs.Plans = append(fs.Plans, entries...)
	fs.Draft.Reset()
	fs.Errors.Clear(FieldSessions)
	return entries, true
}

// RemovePlan drops the entry with the given id. Removing an unknown id
// is a no-op.
func (fs *FormSession) RemovePlan(entryID string) {
	kept := fs.Plans[:0]
	for _, e := range fs.Plans {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	fs.Plans = kept
}

func parseFormDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(DateFormat, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %v", value, err)
	}
	return ptr.Ptr(d), nil
}
