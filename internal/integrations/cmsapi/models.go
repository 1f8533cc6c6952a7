package cmsapi

import "encoding/json"

// BookingCreateRequest is the wire shape the CMS create-booking endpoint
// expects. Built by the submit usecase's payload assembler; every field
// is already normalized (dates YYYY-MM-DD, times HH:MM:SS, MATS flag
// capitalized).
type BookingCreateRequest struct {
	Academy              string    `json:"academy"`
	MerilianCode         string    `json:"merilian_code"`
	FullName             string    `json:"full_name"`
	ContactNumber        string    `json:"contact_number"`
	AttendeesVertical    string    `json:"attendees_vertical"`
	AttendeesDepartment  string    `json:"attendees_department"`
	EventTitle           string    `json:"event_title"`
	Description          string    `json:"description"`
	EventStartDate       string    `json:"event_start_date"`
	EventEndDate         string    `json:"event_end_date"`
	NoOfParticipants     int       `json:"no_of_participants"`
	ITRequirements       string    `json:"it_requirements"`
	SpecificRequirements string    `json:"specific_requirements,omitempty"`
	Email                string    `json:"email"`
	MATSEvent            string    `json:"mats_event"`
	MATSRequestNo        string    `json:"mats_request_no,omitempty"`
	Plans                []PlanRow `json:"plans"`
}

// PlanRow is one day-wise plan row of the create request. Hall carries a
// single hall id, or a comma-joined list when the source row still holds
// several.
type PlanRow struct {
	Hall        string `json:"hall"`
	BookingType string `json:"booking_type"`
	EventDate   string `json:"event_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// rawAcademy academy record as the CMS returns it
type rawAcademy struct {
	Name        string    `json:"name"`
	AcademyName string    `json:"academy_name"`
	Location    string    `json:"location"`
	Attachment  string    `json:"attachment"`
	Halls       []rawHall `json:"halls"`
}

// rawHall hall record; wifi/screen arrive as 0/1 flags
type rawHall struct {
	Name        string      `json:"name"`
	HallName    string      `json:"hall_name"`
	AcademyName string      `json:"academy_name"`
	Capacity    json.Number `json:"capacity"`
	Wifi        json.Number `json:"wifi"`
	Screen      json.Number `json:"screen"`
}

// rawMasterData lookup lists as returned by the master-data endpoint
type rawMasterData struct {
	MerilianCodes  []rawLookupItem `json:"merilian_codes"`
	Verticals      []rawLookupItem `json:"verticals"`
	Departments    []rawLookupItem `json:"departments"`
	EventTitles    []rawLookupItem `json:"event_titles"`
	BookingTypes   []rawLookupItem `json:"booking_types"`
	ITRequirements []rawLookupItem `json:"it_requirements"`
}

type rawLookupItem struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// rawBooking booking record from the list/detail/calendar endpoints.
// Field presence varies between endpoints; the parser defaults what it
// can and fails only on a missing booking id.
type rawBooking struct {
	BookingID        string       `json:"booking_id"`
	Academy          string       `json:"academy"`
	AcademyID        string       `json:"academy_id"`
	Hall             string       `json:"hall"`
	FullName         string       `json:"full_name"`
	ContactNumber    string       `json:"contact_number"`
	Email            string       `json:"email"`
	MerilianCode     string       `json:"merilian_code"`
	Department       string       `json:"department"`
	EventTitle       string       `json:"event_title"`
	Description      string       `json:"description"`
	EventStatus      string       `json:"event_status"`
	OverallStatus    string       `json:"overall_status"`
	EventStartDate   string       `json:"event_start_date"`
	EventEndDate     string       `json:"event_end_date"`
	NoOfParticipants json.Number  `json:"no_of_participants"`
	Sessions         []rawSession `json:"sessions"`
}

type rawSession struct {
	Name        string `json:"name"`
	Hall        string `json:"hall"`
	HallName    string `json:"hall_name"`
	BookingType string `json:"booking_type"`
	EventDate   string `json:"event_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// rawLoginUser user info embedded in the login response
type rawLoginUser struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
}
