package get_academies

import "github.com/academyhall/booking-gateway/internal/domain"

// HallView HTTP представление зала
type HallView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AcademyID       string `json:"academyId"`
	Capacity        int    `json:"capacity,omitempty"`
	WifiAvailable   bool   `json:"wifiAvailable"`
	ScreenAvailable bool   `json:"screenAvailable"`
}

// AcademyView HTTP представление академии с залами
type AcademyView struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location string     `json:"location,omitempty"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Halls    []HallView `json:"halls"`
}

// AcademiesResponse HTTP response model
type AcademiesResponse struct {
	Academies []AcademyView `json:"academies"`
}

// FromDomain конвертирует доменные академии в HTTP представление
func FromDomain(academies []domain.Academy) AcademiesResponse {
	resp := AcademiesResponse{Academies: make([]AcademyView, 0, len(academies))}
	for _, a := range academies {
		view := AcademyView{
			ID:       a.ID,
			Name:     a.Name,
			Location: a.Location,
			ImageURL: a.ImageURL,
			Halls:    make([]HallView, 0, len(a.Halls)),
		}
		for _, h := range a.Halls {
			view.Halls = append(view.Halls, HallView{
				ID:              h.ID,
				Name:            h.Name,
				AcademyID:       h.AcademyID,
				Capacity:        h.Capacity,
				WifiAvailable:   h.WifiAvailable,
				ScreenAvailable: h.ScreenAvailable,
			})
		}
		resp.Academies = append(resp.Academies, view)
	}
	return resp
}
