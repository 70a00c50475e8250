package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
)

const (
	DefaultQueryTimeout = 5 * time.Second
	BatchQueryTimeout   = 30 * time.Second
)

// BaseRepository carries the handle and query timeout every repository shares.
type BaseRepository struct {
	db             *bun.DB
	defaultTimeout time.Duration
}

func NewBaseRepository(db *bun.DB) BaseRepository {
	return BaseRepository{
		db:             db,
		defaultTimeout: DefaultQueryTimeout,
	}
}

// RepositoryError represents a repository-level error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (re *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s for %s: %v", re.Operation, re.Entity, re.Err)
}

func (re *RepositoryError) Unwrap() error {
	return re.Err
}

func (br BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, br.defaultTimeout)
}

// HandleError wraps err in a RepositoryError and logs it.
func (br BaseRepository) HandleError(operation, entity string, err error) error {
	if err == nil {
		return nil
	}
	slog.Error("Database operation failed",
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.String("entity", entity),
		slog.Any("error", err))
	return &RepositoryError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}

// HandleLookupError treats sql.ErrNoRows as "absent" rather than a failure.
func (br BaseRepository) HandleLookupError(operation, entity string, err error) (bool, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, br.HandleError(operation, entity, err)
	}
	return true, nil
}

// Transaction executes a function within a database transaction
func (br BaseRepository) Transaction(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, BatchQueryTimeout)
	defer cancel()

	return br.db.RunInTx(timeoutCtx, nil, fn)
}

func (br BaseRepository) GetDB() *bun.DB {
	return br.db
}

func IsRepositoryError(err error) bool {
	var re *RepositoryError
	return errors.As(err, &re)
}
