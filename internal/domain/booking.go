package domain

import (
	"strings"
	"time"

	"github.com/academyhall/booking-gateway/pkg/types"
)

// BookingStatus represents the status of a booking as reported by the CMS
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// StatusBucket is the coarse status grouping used by list filters and stats.
// The CMS reports six statuses; the UI only distinguishes three buckets.
type StatusBucket string

const (
	BucketApproved StatusBucket = "approved"
	BucketPending  StatusBucket = "pending"
	BucketRejected StatusBucket = "rejected"
	BucketUnknown  StatusBucket = ""
)

// NormalizeStatus maps a raw CMS status string onto BookingStatus.
// Matching downstream is case-insensitive; unknown values pass through
// lowercased so they can still be displayed verbatim.
func NormalizeStatus(raw string) BookingStatus {
	return BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
}

// Bucket maps a status onto its filter bucket:
// approved/upcoming/completed count as Approved, rejected/cancelled as
// Rejected, pending as Pending.
func (s BookingStatus) Bucket() StatusBucket {
	switch BookingStatus(strings.ToLower(string(s))) {
	case StatusApproved, StatusUpcoming, StatusCompleted:
		return BucketApproved
	case StatusRejected, StatusCancelled:
		return BucketRejected
	case StatusPending:
		return BucketPending
	default:
		return BucketUnknown
	}
}

// BookingSession is one day-and-hall row of a submitted booking's plan
type BookingSession struct {
	ID          string
	HallID      string
	HallName    string
	BookingType string
	EventDate   time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
}

// Booking represents a submitted booking as returned by the CMS list and
// detail endpoints. It is read-only on this side: the gateway displays it,
// never mutates it.
type Booking struct {
	ID          string
	AcademyID   string
	AcademyName string
	HallName    string

	EventTitle    string
	Description   string
	Organizer     string
	Department    string
	ContactNumber string
	Email         string
	MerilianCode  string

	Status        BookingStatus
	OverallStatus string

	// EventStartDate is nil when the CMS record carries no start date;
	// such bookings cannot be placed on the calendar grid.
	EventStartDate *time.Time
	EventEndDate   *time.Time

	ParticipantsCount int

	Sessions []BookingSession
}

// StatsByBucket aggregates bookings into the dashboard counters
type StatsByBucket struct {
	Total    int
	Approved int
	Pending  int
	Rejected int
}

// CountBuckets computes bucket counters over a booking collection
func CountBuckets(bookings []*Booking) StatsByBucket {
	stats := StatsByBucket{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status.Bucket() {
		case BucketApproved:
			stats.Approved++
		case BucketPending:
			stats.Pending++
		case BucketRejected:
			stats.Rejected++
		}
	}
	return stats
}
