package get_master_data

import "github.com/academyhall/booking-gateway/internal/domain"

// LookupItemView HTTP представление элемента справочника
type LookupItemView struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// MasterDataResponse HTTP response model
type MasterDataResponse struct {
	MerilianCodes  []LookupItemView `json:"merilianCodes"`
	Verticals      []LookupItemView `json:"verticals"`
	Departments    []LookupItemView `json:"departments"`
	EventTitles    []LookupItemView `json:"eventTitles"`
	BookingTypes   []LookupItemView `json:"bookingTypes"`
	ITRequirements []LookupItemView `json:"itRequirements"`
}

// FromDomain конвертирует мастер-данные в HTTP представление
func FromDomain(data *domain.MasterData) MasterDataResponse {
	return MasterDataResponse{
		MerilianCodes:  lookupViews(data.MerilianCodes),
		Verticals:      lookupViews(data.Verticals),
		Departments:    lookupViews(data.Departments),
		EventTitles:    lookupViews(data.EventTitles),
		BookingTypes:   lookupViews(data.BookingTypes),
		ITRequirements: lookupViews(data.ITRequirements),
	}
}

func lookupViews(items []domain.LookupItem) []LookupItemView {
	views := make([]LookupItemView, 0, len(items))
	for _, item := range items {
		views = append(views, LookupItemView{Name: item.Name, Label: item.Label})
	}
	return views
}
