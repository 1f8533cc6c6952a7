package domain

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	TimeFormat        = "15:04"      // HH:MM
	TimeFormatSeconds = "15:04:05"   // HH:MM:SS
)

// MATS flag tokens. The form stores the lowercase UI token; the CMS
// expects the capitalized variant on the wire.
const (
	MATSYes = "yes"
	MATSNo  = "no"

	MATSYesWire = "Yes"
	MATSNoWire  = "No"
)

// FilterAll is the sentinel filter value meaning "no constraint"
const FilterAll = "all"

// Pagination defaults
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)
