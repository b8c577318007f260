package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/sportsboard/internal/domain/localstate"
	qb "github.com/riskibarqy/sportsboard/internal/platform/querybuilder"
)

const localStateTable = "local_state"

type localStateRow struct {
	Key       string    `db:"state_key"`
	Value     string    `db:"state_value"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r localStateRow) toEntry() localstate.Entry {
	return localstate.Entry{
		Key:       localstate.Key(r.Key),
		Value:     []byte(r.Value),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// LocalStateStore persists local state in a single key/value table. Writes
// are last-write-wins.
type LocalStateStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewLocalStateStore(db *sqlx.DB) *LocalStateStore {
	return &LocalStateStore{db: db, now: time.Now}
}

func (s *LocalStateStore) Get(ctx context.Context, key localstate.Key) (localstate.Entry, bool, error) {
	if err := key.Validate(); err != nil {
		return localstate.Entry{}, false, err
	}

	query, args, err := qb.Select("state_key", "state_value", "updated_at").
		From(localStateTable).
		Where(qb.Eq("state_key", string(key))).
		Limit(1).
		ToSQL()
	if err != nil {
		return localstate.Entry{}, false, fmt.Errorf("build select local state query: %w", err)
	}

	var row localStateRow
	if err := s.db.GetContext(ctx, &row, s.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return localstate.Entry{}, false, nil
		}
		return localstate.Entry{}, false, fmt.Errorf("select local state %s: %w", key, err)
	}
	return row.toEntry(), true, nil
}

func (s *LocalStateStore) Put(ctx context.Context, key localstate.Key, value []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}

	row := localStateRow{Key: string(key), Value: string(value), UpdatedAt: s.now().UTC()}
	query, args, err := qb.UpsertModel(localStateTable, row, "state_key")
	if err != nil {
		return fmt.Errorf("build upsert local state query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("upsert local state %s: %w", key, err)
	}
	return nil
}

func (s *LocalStateStore) Delete(ctx context.Context, key localstate.Key) error {
	if err := key.Validate(); err != nil {
		return err
	}

	query, args, err := qb.DeleteFrom(localStateTable).
		Where(qb.Eq("state_key", string(key))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete local state query: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("delete local state %s: %w", key, err)
	}
	return nil
}

func (s *LocalStateStore) ListByPrefix(ctx context.Context, prefix string) ([]localstate.Entry, error) {
	builder := qb.Select("state_key", "state_value", "updated_at").
		From(localStateTable).
		OrderBy("state_key")
	if prefix != "" {
		builder = builder.Where(qb.HasPrefix("state_key", prefix))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list local state query: %w", err)
	}

	var rows []localStateRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list local state %q: %w", prefix, err)
	}

	out := make([]localstate.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntry())
	}
	return out, nil
}
