// Package postgres provides the durable storage backend on a pgx connection
// pool. The schema is managed by embedded goose migrations.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/todolist-service/internal/adapters/storage"
	"github.com/jsamuelsen11/todolist-service/internal/domain"
	"github.com/jsamuelsen11/todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
)

// Compile-time interface checks.
var (
	_ storage.Backend = (*Backend)(nil)
	_ storage.Tx      = (*tx)(nil)
)

// Backend implements storage.Backend on PostgreSQL.
type Backend struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Open connects a pool using cfg and verifies it with a ping bounded by
// cfg.ConnectTimeout. When cfg.Migrate is set, pending migrations run first.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Backend, error) {
	if cfg.Migrate {
		if err := Migrate(ctx, cfg.DSN, logger); err != nil {
			return nil, err
		}
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", classify(err))
	}

	logger.InfoContext(ctx, "connected to postgres",
		slog.Int("max_conns", int(cfg.MaxConns)),
		slog.Int("min_conns", int(cfg.MinConns)),
	)

	return &Backend{pool: pool, logger: logger}, nil
}

// Close releases every pooled connection.
func (b *Backend) Close() {
	b.pool.Close()
}

// Name implements ports.HealthChecker.
func (b *Backend) Name() string { return "database" }

// HealthCheck implements ports.HealthChecker by pinging the pool and running
// a trivial query against the categories table.
func (b *Backend) HealthCheck(ctx context.Context) error {
	if err := b.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", classify(err))
	}
	var n int
	if err := b.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return fmt.Errorf("database not queryable: %w", classify(err))
	}
	return nil
}

// Categories implements storage.Backend.
func (b *Backend) Categories(ctx context.Context) ([]string, error) {
	rows, err := b.pool.Query(ctx, `SELECT DISTINCT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, classify(err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, classify(err)
	}
	return names, nil
}

// Items implements storage.Backend. Percentages are read as hundredths so
// no float rounding is involved.
func (b *Backend) Items(ctx context.Context) ([]storage.ItemRecord, error) {
	rows, err := b.pool.Query(ctx, `
		SELECT id, title, description, category
		FROM todo_items ORDER BY id`)
	if err != nil {
		return nil, classify(err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (storage.ItemRecord, error) {
		var rec storage.ItemRecord
		err := row.Scan(&rec.ID, &rec.Title, &rec.Description, &rec.Category)
		return rec, err
	})
	if err != nil {
		return nil, classify(err)
	}

	index := make(map[todo.ID]int, len(records))
	for i, rec := range records {
		index[rec.ID] = i
	}

	rows, err = b.pool.Query(ctx, `
		SELECT todo_item_id, date_time, (percent * 100)::bigint
		FROM progressions ORDER BY todo_item_id, date_time, id`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID  todo.ID
			at      time.Time
			percent int64
		)
		if err := rows.Scan(&itemID, &at, &percent); err != nil {
			return nil, classify(err)
		}
		i, ok := index[itemID]
		if !ok {
			continue
		}
		records[i].Progressions = append(records[i].Progressions, storage.ProgressionRecord{
			At:      at,
			Percent: todo.Percent(percent),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return records, nil
}

// MaxID implements storage.Backend.
func (b *Backend) MaxID(ctx context.Context) (todo.ID, error) {
	var maxID todo.ID
	if err := b.pool.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM todo_items`).Scan(&maxID); err != nil {
		return 0, classify(err)
	}
	return maxID, nil
}

// WithinTx implements storage.Backend with a read-committed transaction.
func (b *Backend) WithinTx(ctx context.Context, fn func(storage.Tx) error) error {
	err := pgx.BeginFunc(ctx, b.pool, func(pgTx pgx.Tx) error {
		return fn(&tx{tx: pgTx})
	})
	return classify(err)
}

type tx struct {
	tx pgx.Tx
}

func (t *tx) StoredIDs(ctx context.Context) ([]todo.ID, error) {
	rows, err := t.tx.Query(ctx, `SELECT id FROM todo_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[todo.ID])
}

func (t *tx) Delete(ctx context.Context, id todo.ID) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM todo_items WHERE id = $1`, id)
	return err
}

func (t *tx) Insert(ctx context.Context, rec storage.ItemRecord) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO todo_items (id, title, description, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())`,
		rec.ID, rec.Title, rec.Description, rec.Category)
	if err != nil {
		return err
	}
	return t.insertProgressions(ctx, rec)
}

// Update overwrites the scalar fields and replaces every progression row.
func (t *tx) Update(ctx context.Context, rec storage.ItemRecord) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE todo_items
		SET title = $2, description = $3, category = $4, updated_at = NOW()
		WHERE id = $1`,
		rec.ID, rec.Title, rec.Description, rec.Category)
	if err != nil {
		return err
	}

	if _, err := t.tx.Exec(ctx, `DELETE FROM progressions WHERE todo_item_id = $1`, rec.ID); err != nil {
		return err
	}
	return t.insertProgressions(ctx, rec)
}

func (t *tx) insertProgressions(ctx context.Context, rec storage.ItemRecord) error {
	if len(rec.Progressions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range rec.Progressions {
		batch.Queue(`
			INSERT INTO progressions (todo_item_id, date_time, percent, created_at)
			VALUES ($1, $2, $3::numeric / 100, NOW())`,
			rec.ID, p.At, int64(p.Percent))
	}
	return t.tx.SendBatch(ctx, batch).Close()
}

// transientCodes are SQLSTATE values worth retrying besides class 08
// (connection exception).
var transientCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"57P03": true, // cannot_connect_now
}

// classify marks connection and concurrency failures as
// domain.ErrUnavailable so resilience policies retry them.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if transientCodes[pgErr.Code] || len(pgErr.Code) == 5 && pgErr.Code[:2] == "08" {
			return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	return err
}
