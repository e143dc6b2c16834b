// Package migrate rewrites a UUID column of a MySQL table into another column
// in the other representation, e.g. CHAR(36) into BINARY(16).
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Lzww0608/binuuid"
	"github.com/go-sql-driver/mysql"
)

// Stats summarizes a run.
type Stats struct {
	Batches   int
	Converted int
	Skipped   int // rows whose source value is not a UUID
}

// Open opens a connection pool for dsn. No connection is made until first use.
func Open(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("migrate: parse DSN: %w", err)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Convert converts one column value. It returns binuuid.ErrInvalidFormat or
// binuuid.ErrInvalidLength for values that are not UUIDs.
func Convert(d Direction, swap bool, v []byte) ([]byte, error) {
	switch d {
	case ToBinary:
		return binuuid.UUIDToBin(v, swap)
	case ToText:
		return binuuid.BinToUUID(v, swap)
	default:
		return nil, fmt.Errorf("migrate: unknown direction %v", d)
	}
}

type statements struct {
	first  string
	next   string
	update string
}

func buildStatements(c Config) statements {
	sel := fmt.Sprintf("SELECT `%s`, `%s` FROM `%s` WHERE `%s` IS NULL AND `%s` IS NOT NULL",
		c.Key, c.Source, c.Table, c.Target, c.Source)
	order := fmt.Sprintf(" ORDER BY `%s` LIMIT %d", c.Key, c.BatchSize)
	return statements{
		first:  sel + order,
		next:   sel + fmt.Sprintf(" AND `%s` > ?", c.Key) + order,
		update: fmt.Sprintf("UPDATE `%s` SET `%s` = ? WHERE `%s` = ?", c.Table, c.Target, c.Key),
	}
}

type row struct {
	key   interface{}
	value []byte
}

type update struct {
	key   interface{}
	value []byte
}

// convertBatch converts every row it can and counts the rest.
func convertBatch(d Direction, swap bool, rows []row) ([]update, int) {
	updates := make([]update, 0, len(rows))
	skipped := 0
	for _, r := range rows {
		out, err := Convert(d, swap, r.value)
		if err != nil {
			skipped++
			continue
		}
		updates = append(updates, update{key: r.key, value: out})
	}
	return updates, skipped
}

// Migrator walks a table in key order and fills the target column.
type Migrator struct {
	db     *sql.DB
	cfg    Config
	stmts  statements
	logger *slog.Logger
}

// New validates cfg and returns a Migrator using db. A nil logger means
// slog.Default().
func New(db *sql.DB, cfg Config, logger *slog.Logger) (*Migrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{
		db:     db,
		cfg:    cfg,
		stmts:  buildStatements(cfg),
		logger: logger.With("table", cfg.Table, "source", cfg.Source, "target", cfg.Target),
	}, nil
}

// Run converts rows until none are left. Rows are only selected while their
// target is NULL, so an interrupted run can be restarted.
func (m *Migrator) Run(ctx context.Context) (Stats, error) {
	var (
		stats   Stats
		lastKey interface{}
	)
	start := time.Now()
	m.logger.Info("migration started", "direction", m.cfg.Direction.String(), "swap", m.cfg.Swap)

	for {
		n, last, err := m.runBatch(ctx, lastKey, &stats)
		if err != nil {
			return stats, fmt.Errorf("migrate: batch %d: %w", stats.Batches+1, err)
		}
		if n == 0 {
			break
		}
		stats.Batches++
		lastKey = last
		m.logger.Debug("batch done", "batch", stats.Batches, "rows", n,
			"converted", stats.Converted, "skipped", stats.Skipped)
		if n < m.cfg.BatchSize {
			break
		}
	}

	m.logger.Info("migration finished", "batches", stats.Batches, "converted", stats.Converted,
		"skipped", stats.Skipped, "elapsed", time.Since(start))
	return stats, nil
}

// runBatch converts one batch inside a transaction and returns the number of
// rows read and the last key seen.
func (m *Migrator) runBatch(ctx context.Context, after interface{}, stats *Stats) (int, interface{}, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, err
	}
	defer tx.Rollback()

	var rs *sql.Rows
	if after == nil {
		rs, err = tx.QueryContext(ctx, m.stmts.first)
	} else {
		rs, err = tx.QueryContext(ctx, m.stmts.next, after)
	}
	if err != nil {
		return 0, nil, err
	}

	batch, err := scanRows(rs)
	if err != nil {
		return 0, nil, err
	}
	if len(batch) == 0 {
		return 0, nil, nil
	}

	updates, skipped := convertBatch(m.cfg.Direction, m.cfg.Swap, batch)
	if len(updates) > 0 {
		stmt, err := tx.PrepareContext(ctx, m.stmts.update)
		if err != nil {
			return 0, nil, err
		}
		defer stmt.Close()

		for _, u := range updates {
			if _, err := stmt.ExecContext(ctx, u.value, u.key); err != nil {
				return 0, nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, err
	}
	stats.Converted += len(updates)
	stats.Skipped += skipped
	return len(batch), batch[len(batch)-1].key, nil
}

func scanRows(rs *sql.Rows) ([]row, error) {
	defer rs.Close()

	var batch []row
	for rs.Next() {
		var r row
		if err := rs.Scan(&r.key, &r.value); err != nil {
			return nil, err
		}
		batch = append(batch, r)
	}
	return batch, rs.Err()
}
