package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/splitwise-slack/internal/entity/expense"
	"max.ks1230/splitwise-slack/internal/logger"
	"max.ks1230/splitwise-slack/internal/model/customerr"
)

const (
	dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=%s"
	stateTable  = "notifier_state"
)

const createStateTable = `
CREATE TABLE IF NOT EXISTS notifier_state (
	state_key  TEXT PRIMARY KEY,
	snapshot   JSONB NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

// PostgresStorage keeps the snapshot as one JSONB row per state key.
type PostgresStorage struct {
	db  *sql.DB
	key string
}

func NewPostgresStorage(ctx context.Context, config config, key string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if _, err = db.ExecContext(ctx, createStateTable); err != nil {
		return nil, errors.Wrap(err, "create state table")
	}
	return &PostgresStorage{db: db, key: key}, nil
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
}

func (s *PostgresStorage) Load(ctx context.Context) (*expense.Snapshot, error) {
	var raw []byte
	err := loadQuery(s.key).RunWith(s.db).QueryRowContext(ctx).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Info("no stored state, will create it on completion", zap.String("key", s.key))
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load state")
	}

	snapshot, err := decodeSnapshot(raw)
	if err != nil {
		return nil, &customerr.ParseError{Source: stateTable + ":" + s.key, Err: err}
	}
	return snapshot, nil
}

func (s *PostgresStorage) Save(ctx context.Context, snapshot *expense.Snapshot) error {
	raw, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	_, err = saveQuery(s.key, raw, time.Now()).RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "save state")
	}

	logger.Info("state saved", zap.String("key", s.key), zap.Int("expenses", len(snapshot.Expenses)))
	return nil
}

func loadQuery(key string) sq.SelectBuilder {
	return psql.Select("snapshot").
		From(stateTable).
		Where(sq.Eq{"state_key": key})
}

func saveQuery(key string, raw []byte, now time.Time) sq.InsertBuilder {
	// jsonb wants text, lib/pq would send []byte as bytea
	return psql.Insert(stateTable).
		Columns("state_key", "snapshot", "updated_at").
		Values(key, string(raw), now).
		Suffix("ON CONFLICT(state_key) DO UPDATE SET snapshot = EXCLUDED.snapshot, updated_at = EXCLUDED.updated_at")
}
