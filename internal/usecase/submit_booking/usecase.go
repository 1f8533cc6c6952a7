package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
	"github.com/academyhall/booking-gateway/internal/service/formsessions"
)

// UseCase use case отправки заполненной формы бронирования в CMS
type UseCase struct {
	forms       FormSessionService
	cms         CMSClient
	invalidator StatsInvalidator
	logger      Logger

	// inFlight держит по одной отметке на сессию формы: повторная
	// отправка той же формы до завершения первой отклоняется.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(forms FormSessionService, cms CMSClient, invalidator StatsInvalidator, logger Logger) *UseCase {
	return &UseCase{
		forms:       forms,
		cms:         cms,
		invalidator: invalidator,
		logger:      logger,
		inFlight:    make(map[string]struct{}),
	}
}

// Execute выполняет отправку формы: загружает сессию, валидирует,
// собирает payload и создает бронирование в CMS. При успехе сессия
// формы удаляется, а кеш статистики планируется к сбросу.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: form=%s, user=%s", req.FormID, req.UserID)

	if !uc.acquire(req.FormID) {
		uc.logger.Warn("SubmitBooking: form=%s already has a submission in flight", req.FormID)
		return nil, ErrSubmitInFlight
	}
	defer uc.release(req.FormID)

	// 1. Загружаем сессию формы
	fs, err := uc.forms.Get(ctx, req.FormID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, formsessions.ErrNotFound):
			return nil, ErrFormNotFound
		case errors.Is(err, formsessions.ErrAccessDenied):
			return nil, ErrAccessDenied
		default:
			uc.logger.Error("SubmitBooking: failed to load form=%s: %v", req.FormID, err)
			return nil, fmt.Errorf("%w: load form session: %v", ErrInternal, err)
		}
	}

	// 2. Валидация всей формы; все нарушения собираются за один проход
	fieldErrors := validate(&fs.State, fs.Plans)
	if len(fieldErrors) > 0 {
		uc.logger.Warn("SubmitBooking: form=%s failed validation with %d errors", req.FormID, len(fieldErrors))
		if err := uc.forms.SaveErrors(ctx, fs, fieldErrors); err != nil {
			uc.logger.Error("SubmitBooking: failed to persist validation errors for form=%s: %v", req.FormID, err)
		}
		return &Response{Errors: fieldErrors}, ErrValidation
	}

	// 3. Собираем payload и создаем бронирование
	payload := buildPayload(&fs.State, fs.Plans)

	bookingID, err := uc.cms.CreateBooking(ctx, payload)
	if err != nil {
		// Состояние формы не трогаем: пользователь правит и отправляет снова
		switch {
		case errors.Is(err, cmsapi.ErrUnauthorized):
			return nil, ErrUnauthorized
		case errors.Is(err, cmsapi.ErrRemote):
			uc.logger.Warn("SubmitBooking: CMS rejected form=%s: %v", req.FormID, err)
			return nil, fmt.Errorf("%w: %v", ErrRemoteRejected, err)
		default:
			uc.logger.Error("SubmitBooking: CMS call failed for form=%s: %v", req.FormID, err)
			return nil, fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}
	}

	// 4. Сессия формы отработала своё
	if err := uc.forms.Discard(ctx, fs.ID); err != nil {
		uc.logger.Warn("SubmitBooking: booking=%s created but form=%s not discarded: %v", bookingID, fs.ID, err)
	}

	// 5. Счетчики дашборда устарели; сброс кеша отложенный
	if uc.invalidator != nil {
		uc.invalidator.Trigger()
	}

	uc.logger.Info("SubmitBooking: form=%s submitted, booking=%s", req.FormID, bookingID)
	return &Response{BookingID: bookingID}, nil
}

func (uc *UseCase) acquire(formID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[formID]; busy {
		return false
	}
	uc.inFlight[formID] = struct{}{}
	return true
}

func (uc *UseCase) release(formID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, formID)
}
