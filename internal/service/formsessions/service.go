package formsessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/academyhall/booking-gateway/internal/domain"
	storage "github.com/academyhall/booking-gateway/internal/infra/storage/formsession"
)

// msgIncompleteDraft is the single list-level error recorded when the
// day-wise plan draft is committed with required fields missing.
const msgIncompleteDraft = "Fill hall, booking type, date and both times before adding a session plan"

// Service is the form state manager: it owns the multi-section booking
// form state, the session draft and the committed plan list for each
// form session. All mutations go through here; nothing in this package
// talks to the network.
type Service struct {
	repo   FormSessionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса сессий формы
func NewService(repo FormSessionRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create starts an empty form session owned by the user
func (s *Service) Create(ctx context.Context, userID string) (*domain.FormSession, error) {
	fs := domain.NewFormSession(userID)
	if err := s.repo.Create(ctx, fs); err != nil {
		s.logger.Error("Create: failed to store form session for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: create form session: %v", ErrInternal, err)
	}
	s.logger.Info("Create: form session id=%s created for user=%s", fs.ID, userID)
	return fs, nil
}

// Get loads the user's form session
func (s *Service) Get(ctx context.Context, formID, userID string) (*domain.FormSession, error) {
	return s.load(ctx, formID, userID)
}

// UpdateField replaces one field of the form state or the session
// draft, clearing any existing error for that field. The hall selection
// is the only multi-valued field and arrives through values.
func (s *Service) UpdateField(ctx context.Context, formID, userID string, field domain.Field, value string, values []string) (*domain.FormSession, error) {
	fs, err := s.load(ctx, formID, userID)
	if err != nil {
		return nil, err
	}

	switch field.Section {
	case domain.SectionHall, domain.SectionParticipants:
		if err := fs.State.Set(field, value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
	case domain.SectionSession:
		if field == domain.FieldTrainingHall {
			fs.Draft.SetHalls(values)
		} else if err := fs.Draft.Set(field, value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
	default:
		return nil, fmt.Errorf("%w: field %s is not editable", ErrInvalidField, field.Path())
	}

	fs.Errors.Clear(field)

	if err := s.store(ctx, fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// AddSession commits the current draft into the plan list: one entry
// per selected hall, appended atomically. An incomplete draft records a
// single list-level error and commits nothing.
func (s *Service) AddSession(ctx context.Context, formID, userID string) (*domain.FormSession, error) {
	fs, err := s.load(ctx, formID, userID)
	if err != nil {
		return nil, err
	}

	entries, ok := fs.CommitDraft(msgIncompleteDraft)
	if ok {
		s.logger.Info("AddSession: form=%s committed %d plan entries", formID, len(entries))
	} else {
		s.logger.Warn("AddSession: form=%s draft incomplete, nothing committed", formID)
	}

	if err := s.store(ctx, fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// RemoveSession drops one committed plan entry by its local id.
// Removing an id that does not exist is a no-op.
func (s *Service) RemoveSession(ctx context.Context, formID, userID, entryID string) (*domain.FormSession, error) {
	fs, err := s.load(ctx, formID, userID)
	if err != nil {
		return nil, err
	}

	fs.RemovePlan(entryID)

	if err := s.store(ctx, fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// SaveErrors persists the current validation error map of the form
// session, replacing whatever was recorded before.
func (s *Service) SaveErrors(ctx context.Context, fs *domain.FormSession, fieldErrors domain.FieldErrors) error {
	fs.Errors = fieldErrors
	return s.store(ctx, fs)
}

// Discard deletes the form session. Called once submission succeeds;
// a missing session is not an error.
func (s *Service) Discard(ctx context.Context, formID string) error {
	if err := s.repo.Delete(ctx, formID); err != nil {
		s.logger.Error("Discard: failed to delete form=%s: %v", formID, err)
		return fmt.Errorf("%w: delete form session: %v", ErrInternal, err)
	}
	s.logger.Info("Discard: form session id=%s deleted", formID)
	return nil
}

func (s *Service) load(ctx context.Context, formID, userID string) (*domain.FormSession, error) {
	fs, err := s.repo.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("load: repository error for form=%s: %v", formID, err)
		return nil, fmt.Errorf("%w: load form session: %v", ErrInternal, err)
	}
	if fs.UserID != userID {
		s.logger.Warn("load: user=%s denied access to form=%s", userID, formID)
		return nil, ErrAccessDenied
	}
	return fs, nil
}

func (s *Service) store(ctx context.Context, fs *domain.FormSession) error {
	if err := s.repo.Update(ctx, fs); err != nil {
		s.logger.Error("store: failed to persist form=%s: %v", fs.ID, err)
		return fmt.Errorf("%w: persist form session: %v", ErrInternal, err)
	}
	return nil
}
