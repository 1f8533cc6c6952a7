package formsession

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/pkg/psqlbuilder"
)

// Repository хранилище сессий формы бронирования. Состояние формы,
// черновик и список планов лежат в jsonb-колонках: форма живёт недолго
// и читается/пишется только целиком.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий формы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию формы
func (r *Repository) Create(ctx context.Context, fs *domain.FormSession) error {
	state, draft, plans, fieldErrors, err := marshalParts(fs)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert("form_sessions").
		Columns("id", "user_id", "state", "draft", "plans", "field_errors").
		Values(fs.ID, fs.UserID, state, draft, plans, fieldErrors).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&fs.CreatedAt, &fs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID загружает сессию формы по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.FormSession, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"state",
		"draft",
		"plans",
		"field_errors",
		"created_at",
		"updated_at",
	).
		From("form_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		fs                              domain.FormSession
		state, draft, plans, fieldErrors []byte
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&fs.ID,
		&fs.UserID,
		&state,
		&draft,
		&plans,
		&fieldErrors,
		&fs.CreatedAt,
		&fs.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	if err := unmarshalParts(&fs, state, draft, plans, fieldErrors); err != nil {
		return nil, err
	}
	return &fs, nil
}

// Update перезаписывает состояние, черновик, планы и ошибки сессии
func (r *Repository) Update(ctx context.Context, fs *domain.FormSession) error {
	state, draft, plans, fieldErrors, err := marshalParts(fs)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("form_sessions").
		Set("state", state).
		Set("draft", draft).
		Set("plans", plans).
		Set("field_errors", fieldErrors).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": fs.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete удаляет сессию формы; отсутствие записи не считается ошибкой
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("form_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func marshalParts(fs *domain.FormSession) (state, draft, plans, fieldErrors []byte, err error) {
	if state, err = json.Marshal(fs.State); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: state: %v", ErrMarshal, err)
	}
	if draft, err = json.Marshal(fs.Draft); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: draft: %v", ErrMarshal, err)
	}
	if plans, err = json.Marshal(fs.Plans); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: plans: %v", ErrMarshal, err)
	}
	if fieldErrors, err = json.Marshal(fs.Errors); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: field errors: %v", ErrMarshal, err)
	}
	return state, draft, plans, fieldErrors, nil
}

func unmarshalParts(fs *domain.FormSession, state, draft, plans, fieldErrors []byte) error {
	if err := json.Unmarshal(state, &fs.State); err != nil {
		return fmt.Errorf("%w: state: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(draft, &fs.Draft); err != nil {
		return fmt.Errorf("%w: draft: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(plans, &fs.Plans); err != nil {
		return fmt.Errorf("%w: plans: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(fieldErrors, &fs.Errors); err != nil {
		return fmt.Errorf("%w: field errors: %v", ErrScanRow, err)
	}
	if fs.Errors == nil {
		fs.Errors = domain.FieldErrors{}
	}
	if fs.Plans == nil {
		fs.Plans = []domain.SessionEntry{}
	}
	return nil
}
