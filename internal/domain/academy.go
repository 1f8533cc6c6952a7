package domain

// Academy represents a venue organization owning one or more bookable halls
type Academy struct {
	ID       string
	Name     string
	Location string
	ImageURL string
	Halls    []Hall
}

// HallByID looks a hall up within the academy's own list
func (a *Academy) HallByID(id string) (*Hall, bool) {
	for i := range a.Halls {
		if a.Halls[i].ID == id {
			return &a.Halls[i], true
		}
	}
	return nil, false
}

// Hall represents a bookable room within an academy
type Hall struct {
	ID              string
	Name            string
	AcademyID       string
	Capacity        int
	WifiAvailable   bool
	ScreenAvailable bool
}
