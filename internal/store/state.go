package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/ailearn/internal/progress"
)

// DefaultStateKey names the progress blob row.
const DefaultStateKey = "ailearn-storage"

// StateRepo keeps the progress blob in the app_state table. It implements
// progress.Backend.
type StateRepo struct {
	db  *sql.DB
	key string
}

var _ progress.Backend = (*StateRepo)(nil)

// Load returns the stored blob or progress.ErrNoState.
func (r *StateRepo) Load(ctx context.Context) ([]byte, error) {
	query, args := sqlite.
		Select("data").
		From(sqlite.Table(tableAppState)).
		Where(entsql.EQ("key", r.key)).
		Query()

	var data []byte
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, progress.ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("load state %q: %w", r.key, err)
	}
	return data, nil
}

// Save replaces the stored blob.
func (r *StateRepo) Save(ctx context.Context, data []byte) error {
	query, args := sqlite.
		Insert(tableAppState).
		Columns("key", "data", "updated_at").
		Values(r.key, data, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save state %q: %w", r.key, err)
	}
	return nil
}

// Delete removes the stored blob.
func (r *StateRepo) Delete(ctx context.Context) error {
	query, args := sqlite.
		Delete(tableAppState).
		Where(entsql.EQ("key", r.key)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete state %q: %w", r.key, err)
	}
	return nil
}
