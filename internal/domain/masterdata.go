package domain

// LookupItem is one entry of a master-data lookup list
type LookupItem struct {
	Name  string
	Label string
}

// MasterData holds the read-only lookup lists the booking form is built
// from. Loaded once per form session and immutable for its lifetime.
type MasterData struct {
	MerilianCodes  []LookupItem
	Verticals      []LookupItem
	Departments    []LookupItem
	EventTitles    []LookupItem
	BookingTypes   []LookupItem
	ITRequirements []LookupItem
}
