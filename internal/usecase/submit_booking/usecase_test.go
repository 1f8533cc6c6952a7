package submit_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/integrations/cmsapi"
	"github.com/academyhall/booking-gateway/internal/service/formsessions"
)

type stubForms struct {
	session     *domain.FormSession
	getErr      error
	savedErrors domain.FieldErrors
	discarded   []string
}

func (s *stubForms) Get(_ context.Context, formID, userID string) (*domain.FormSession, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.session, nil
}

func (s *stubForms) SaveErrors(_ context.Context, fs *domain.FormSession, fieldErrors domain.FieldErrors) error {
	s.savedErrors = fieldErrors
	fs.Errors = fieldErrors
	return nil
}

func (s *stubForms) Discard(_ context.Context, formID string) error {
	s.discarded = append(s.discarded, formID)
	return nil
}

type stubCMS struct {
	bookingID string
	err       error
	gate      chan struct{}
	payloads  []*cmsapi.BookingCreateRequest
	mu        sync.Mutex
}

func (s *stubCMS) CreateBooking(_ context.Context, payload *cmsapi.BookingCreateRequest) (string, error) {
	s.mu.Lock()
	s.payloads = append(s.payloads, payload)
	s.mu.Unlock()
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return "", s.err
	}
	return s.bookingID, nil
}

type countingInvalidator struct {
	mu    sync.Mutex
	count int
}

func (c *countingInvalidator) Trigger() {
	c.mu.Lock()
	c.count++
	c.mu.Unlock()
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validSession() *domain.FormSession {
	fs := domain.NewFormSession("user-1")
	fs.State = *validState()
	fs.Plans = validPlans()
	return fs
}

func TestExecute_Success(t *testing.T) {
	forms := &stubForms{session: validSession()}
	cms := &stubCMS{bookingID: "HB-100"}
	inv := &countingInvalidator{}
	uc := NewUseCase(forms, cms, inv, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FormID: forms.session.ID, UserID: "user-1"})
	require.NoError(t, err)
	require.Equal(t, "HB-100", resp.BookingID)

	// сессия формы удалена, сброс кеша запланирован
	require.Equal(t, []string{forms.session.ID}, forms.discarded)
	require.Equal(t, 1, inv.count)
	require.Len(t, cms.payloads, 1)
}

func TestExecute_ValidationFailure(t *testing.T) {
	fs := validSession()
	fs.State.Email = "broken"
	fs.Plans = nil
	forms := &stubForms{session: fs}
	cms := &stubCMS{bookingID: "HB-100"}
	uc := NewUseCase(forms, cms, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{FormID: fs.ID, UserID: "user-1"})
	require.ErrorIs(t, err, ErrValidation)
	require.NotNil(t, resp)
	require.True(t, resp.Errors.Has(domain.FieldEmail))
	require.True(t, resp.Errors.Has(domain.FieldSessions))

	// ошибки сохранены на сессии, CMS не вызывалась, форма не удалена
	require.NotEmpty(t, forms.savedErrors)
	require.Empty(t, cms.payloads)
	require.Empty(t, forms.discarded)
}

func TestExecute_RemoteFailureKeepsForm(t *testing.T) {
	forms := &stubForms{session: validSession()}
	cms := &stubCMS{err: cmsapi.ErrRemote}
	uc := NewUseCase(forms, cms, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FormID: forms.session.ID, UserID: "user-1"})
	require.ErrorIs(t, err, ErrRemoteRejected)

	// состояние формы остаётся для повторной отправки
	require.Empty(t, forms.discarded)
}

func TestExecute_FormErrors(t *testing.T) {
	uc := NewUseCase(&stubForms{getErr: formsessions.ErrNotFound}, &stubCMS{}, nil, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{FormID: "x", UserID: "user-1"})
	require.ErrorIs(t, err, ErrFormNotFound)

	uc = NewUseCase(&stubForms{getErr: formsessions.ErrAccessDenied}, &stubCMS{}, nil, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{FormID: "x", UserID: "user-1"})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_SecondSubmitRejectedWhileInFlight(t *testing.T) {
	forms := &stubForms{session: validSession()}
	cms := &stubCMS{bookingID: "HB-100", gate: make(chan struct{})}
	uc := NewUseCase(forms, cms, nil, nopLogger{})

	req := &Request{FormID: forms.session.ID, UserID: "user-1"}

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := uc.Execute(context.Background(), req)
		done <- err
	}()

	<-started
	// ждём пока первая отправка дойдет до CMS вызова
	for {
		cms.mu.Lock()
		n := len(cms.payloads)
		cms.mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSubmitInFlight)

	close(cms.gate)
	require.NoError(t, <-done)
}
