package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
)

// UseCase use case построения месячной сетки календаря
type UseCase struct {
	cms    CMSClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cms CMSClient, logger Logger) *UseCase {
	return &UseCase{cms: cms, logger: logger}
}

// Execute запрашивает бронирования на весь видимый диапазон сетки и
// раскладывает их по ячейкам. Каждая ячейка считается независимо, так
// что многодневные события попадают в каждый день своего диапазона.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	gridStart, gridEnd := gridRange(req.Year, req.Month)

	uc.logger.Info("GetCalendar: month=%d-%02d, grid %s..%s, academy=%q, hall=%q",
		req.Year, req.Month, gridStart.Format("2006-01-02"), gridEnd.Format("2006-01-02"),
		req.AcademyID, req.HallID)

	bookings, err := uc.cms.GetCalendarBookings(ctx, gridStart, gridEnd, req.AcademyID, req.HallID)
	if err != nil {
		if errors.Is(err, cmsapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		uc.logger.Error("GetCalendar: CMS request failed: %v", err)
		return nil, fmt.Errorf("%w: fetch calendar bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		Year:  req.Year,
		Month: req.Month,
	}
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		onDay := eventsOnDay(day, bookings)
		resp.Days = append(resp.Days, Day{
			Date:         day,
			InMonth:      day.Month() == req.Month,
			Bookings:     onDay,
			BookingCount: len(onDay),
		})
	}

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.Year < 1970 || req.Year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidInput, req.Year)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidInput, int(req.Month))
	}
	return nil
}
