package submit_booking

import (
	"strconv"
	"strings"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
)

// buildPayload assembles the CMS create-request from a validated form.
// Dates go out as the selected calendar day verbatim (no timezone
// shift), times are normalized to HH:MM:SS and the MATS flag to the
// capitalized form the backend expects. Callable only after validate
// returned an empty map; it does not re-check anything.
func buildPayload(state *domain.FormState, plans []domain.SessionEntry) *cmsapi.BookingCreateRequest {
	participants, _ := strconv.Atoi(strings.TrimSpace(state.NumberOfParticipants))

	req := &cmsapi.BookingCreateRequest{
		Academy:              state.AcademyID,
		MerilianCode:         state.MerilianCode,
		FullName:             state.FullName,
		ContactNumber:        state.ContactNumber,
		AttendeesVertical:    state.AttendeesVertical,
		AttendeesDepartment:  state.AttendeesDepartment,
		EventTitle:           state.TrainingTitle,
		Description:          state.Description,
		EventStartDate:       state.StartDate.Format(domain.DateFormat),
		EventEndDate:         state.EndDate.Format(domain.DateFormat),
		NoOfParticipants:     participants,
		ITRequirements:       state.ITRequirements,
		SpecificRequirements: state.SpecificRequirements,
		Email:                state.Email,
		MATSEvent:            normalizeMATSFlag(state.MATSEvent),
		MATSRequestNo:        state.MATSRequestNo,
		Plans:                make([]cmsapi.PlanRow, 0, len(plans)),
	}

	// Каждая запись плана остаётся отдельной строкой: расширение по
	// залам из шага добавления не схлопывается обратно, а hall уже
	// одиночный после этого расширения.
	for _, entry := range plans {
		req.Plans = append(req.Plans, cmsapi.PlanRow{
			Hall:        entry.HallID,
			BookingType: entry.BookingType,
			EventDate:   entry.EventDate.Format(domain.DateFormat),
			StartTime:   string(entry.StartTime.WithSeconds()),
			EndTime:     string(entry.EndTime.WithSeconds()),
		})
	}

	return req
}

// normalizeMATSFlag превращает строчный токен формы в капитализированную
// форму бэкенда; незнакомые значения проходят как есть.
func normalizeMATSFlag(flag string) string {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case domain.MATSYes:
		return domain.MATSYesWire
	case domain.MATSNo:
		return domain.MATSNoWire
	default:
		return flag
	}
}
