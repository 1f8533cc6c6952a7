package formsessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/academyhall/booking-gateway/internal/domain"
	storage "github.com/academyhall/booking-gateway/internal/infra/storage/formsession"
)

// memoryRepo хранилище сессий формы в памяти для тестов
type memoryRepo struct {
	sessions map[string]*domain.FormSession
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{sessions: make(map[string]*domain.FormSession)}
}

func (r *memoryRepo) Create(_ context.Context, fs *domain.FormSession) error {
	r.sessions[fs.ID] = fs
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.FormSession, error) {
	fs, ok := r.sessions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return fs, nil
}

func (r *memoryRepo) Update(_ context.Context, fs *domain.FormSession) error {
	r.sessions[fs.ID] = fs
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *domain.FormSession) {
	t.Helper()
	svc := NewService(newMemoryRepo(), nopLogger{})
	fs, err := svc.Create(context.Background(), "user-1")
	require.NoError(t, err)
	return svc, fs
}

func fillDraft(t *testing.T, svc *Service, formID string, halls []string) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.UpdateField(ctx, formID, "user-1", domain.FieldTrainingHall, "", halls)
	require.NoError(t, err)
	_, err = svc.UpdateField(ctx, formID, "user-1", domain.FieldBookingType, "Full Day", nil)
	require.NoError(t, err)
	_, err = svc.UpdateField(ctx, formID, "user-1", domain.FieldEventDate, "2026-09-10", nil)
	require.NoError(t, err)
	_, err = svc.UpdateField(ctx, formID, "user-1", domain.FieldStartTime, "09:00", nil)
	require.NoError(t, err)
	_, err = svc.UpdateField(ctx, formID, "user-1", domain.FieldEndTime, "17:00", nil)
	require.NoError(t, err)
}

func TestService_AddSession_ExpandsPerHall(t *testing.T) {
	svc, fs := newTestService(t)
	fillDraft(t, svc, fs.ID, []string{"HALL-2", "HALL-1", "HALL-3"})

	updated, err := svc.AddSession(context.Background(), fs.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, updated.Plans, 3)

	// порядок выбора залов сохраняется
	require.Equal(t, "HALL-2", updated.Plans[0].HallID)
	require.Equal(t, "HALL-1", updated.Plans[1].HallID)
	require.Equal(t, "HALL-3", updated.Plans[2].HallID)

	// у каждой записи свой id
	ids := map[string]bool{}
	for _, e := range updated.Plans {
		require.NotEmpty(t, e.ID)
		ids[e.ID] = true
	}
	require.Len(t, ids, 3)

	// черновик сброшен после коммита
	require.Empty(t, updated.Draft.HallIDs)
	require.Empty(t, updated.Draft.BookingType)
	require.Nil(t, updated.Draft.EventDate)
}

func TestService_AddSession_IncompleteDraft(t *testing.T) {
	svc, fs := newTestService(t)

	// черновик без залов и времени
	_, err := svc.UpdateField(context.Background(), fs.ID, "user-1", domain.FieldBookingType, "Full Day", nil)
	require.NoError(t, err)

	updated, err := svc.AddSession(context.Background(), fs.ID, "user-1")
	require.NoError(t, err)

	// ничего не закоммичено, одна list-level ошибка
	require.Empty(t, updated.Plans)
	require.True(t, updated.Errors.Has(domain.FieldSessions))

	// успешный коммит снимает ошибку
	fillDraft(t, svc, fs.ID, []string{"HALL-1"})
	updated, err = svc.AddSession(context.Background(), fs.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, updated.Plans, 1)
	require.False(t, updated.Errors.Has(domain.FieldSessions))
}

func TestService_AddSession_EntriesCopiedByValue(t *testing.T) {
	svc, fs := newTestService(t)
	fillDraft(t, svc, fs.ID, []string{"HALL-1"})

	updated, err := svc.AddSession(context.Background(), fs.ID, "user-1")
	require.NoError(t, err)
	committed := updated.Plans[0]

	// последующее редактирование черновика не меняет закоммиченную запись
	fillDraft(t, svc, fs.ID, []string{"HALL-9"})
	_, err = svc.UpdateField(context.Background(), fs.ID, "user-1", domain.FieldStartTime, "13:00", nil)
	require.NoError(t, err)

	current, err := svc.Get(context.Background(), fs.ID, "user-1")
	require.NoError(t, err)
	require.Equal(t, committed.HallID, current.Plans[0].HallID)
	require.Equal(t, committed.StartTime, current.Plans[0].StartTime)
}

func TestService_RemoveSession(t *testing.T) {
	svc, fs := newTestService(t)
	fillDraft(t, svc, fs.ID, []string{"HALL-1", "HALL-2"})

	updated, err := svc.AddSession(context.Background(), fs.ID, "user-1")
	require.NoError(t, err)
	require.Len(t, updated.Plans, 2)
	victim := updated.Plans[0].ID

	updated, err = svc.RemoveSession(context.Background(), fs.ID, "user-1", victim)
	require.NoError(t, err)
	require.Len(t, updated.Plans, 1)
	require.NotEqual(t, victim, updated.Plans[0].ID)

	// удаление несуществующего id — no-op
	updated, err = svc.RemoveSession(context.Background(), fs.ID, "user-1", "missing")
	require.NoError(t, err)
	require.Len(t, updated.Plans, 1)
}

func TestService_UpdateField_ClearsError(t *testing.T) {
	svc, fs := newTestService(t)

	require.NoError(t, svc.SaveErrors(context.Background(), fs, domain.FieldErrors{
		domain.FieldEmail:    "Invalid email address",
		domain.FieldFullName: "Full name is required",
	}))

	updated, err := svc.UpdateField(context.Background(), fs.ID, "user-1", domain.FieldEmail, "jamie@example.com", nil)
	require.NoError(t, err)

	require.False(t, updated.Errors.Has(domain.FieldEmail))
	require.True(t, updated.Errors.Has(domain.FieldFullName))
	require.Equal(t, "jamie@example.com", updated.State.Email)
}

func TestService_OwnershipEnforced(t *testing.T) {
	svc, fs := newTestService(t)

	_, err := svc.Get(context.Background(), fs.ID, "intruder")
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Get(context.Background(), "missing", "user-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_UnknownFieldRejected(t *testing.T) {
	svc, fs := newTestService(t)

	_, err := svc.UpdateField(context.Background(), fs.ID, "user-1",
		domain.Field{Section: domain.SectionGlobal, Name: "sessions"}, "x", nil)
	require.ErrorIs(t, err, ErrInvalidField)
}
