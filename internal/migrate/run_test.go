package migrate

import (
	"context"
	"database/sql"
	"encoding/hex"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// openEvents returns an in-memory events table. Rows 2 and 5 do not hold UUIDs.
func openEvents(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	// every connection to :memory: gets its own database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	stmts := []string{
		"CREATE TABLE events (id INTEGER PRIMARY KEY, uuid_text TEXT, uuid_bin BLOB, uuid_back TEXT)",
		"INSERT INTO events (id, uuid_text) VALUES (1, '6ccd780c-baba-1026-9564-5b8c656024db')",
		"INSERT INTO events (id, uuid_text) VALUES (2, 'bad')",
		"INSERT INTO events (id, uuid_text) VALUES (3, '550E8400-E29B-41D4-A716-446655440000')",
		"INSERT INTO events (id, uuid_text) VALUES (4, 'f47ac10b-58cc-4372-a567-0e02b2c3d479')",
		"INSERT INTO events (id, uuid_text) VALUES (5, 'not-a-uuid-string-at-all-00000000000')",
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("Exec(%q) error = %v", s, err)
		}
	}
	return db
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// column returns the values of col keyed by id, with NULL as "NULL".
func column(t *testing.T, db *sql.DB, col string, asHex bool) map[int64]string {
	t.Helper()

	rs, err := db.Query("SELECT id, " + col + " FROM events ORDER BY id")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	defer rs.Close()

	got := make(map[int64]string)
	for rs.Next() {
		var (
			id int64
			v  []byte
		)
		if err := rs.Scan(&id, &v); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		switch {
		case v == nil:
			got[id] = "NULL"
		case asHex:
			got[id] = hex.EncodeToString(v)
		default:
			got[id] = string(v)
		}
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("rows error = %v", err)
	}
	return got
}

func TestMigrator_Run(t *testing.T) {
	db := openEvents(t)
	ctx := context.Background()

	cfg := validConfig()
	cfg.Swap = true
	cfg.BatchSize = 2

	m, err := New(db, cfg, quietLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	stats, err := m.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff(Stats{Batches: 3, Converted: 3, Skipped: 2}, stats); diff != "" {
		t.Errorf("Run() stats mismatch (-want +got):\n%s", diff)
	}

	wantBin := map[int64]string{
		1: "1026baba6ccd780c95645b8c656024db",
		2: "NULL",
		3: "41d4e29b550e8400a716446655440000",
		4: "437258ccf47ac10ba5670e02b2c3d479",
		5: "NULL",
	}
	if diff := cmp.Diff(wantBin, column(t, db, "uuid_bin", true)); diff != "" {
		t.Errorf("uuid_bin mismatch (-want +got):\n%s", diff)
	}

	// only the two invalid rows are still pending, and they stay that way
	stats, err = m.Run(ctx)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if diff := cmp.Diff(Stats{Batches: 1, Converted: 0, Skipped: 2}, stats); diff != "" {
		t.Errorf("second Run() stats mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantBin, column(t, db, "uuid_bin", true)); diff != "" {
		t.Errorf("uuid_bin changed on second run (-want +got):\n%s", diff)
	}
}

func TestMigrator_RunToText(t *testing.T) {
	db := openEvents(t)
	ctx := context.Background()

	toBin := validConfig()
	toBin.Swap = true
	m, err := New(db, toBin, quietLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := m.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	back := validConfig()
	back.Source = "uuid_bin"
	back.Target = "uuid_back"
	back.Direction = ToText
	back.Swap = true
	back.BatchSize = 2
	m, err = New(db, back, quietLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	stats, err := m.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// NULL sources are never selected
	if diff := cmp.Diff(Stats{Batches: 2, Converted: 3}, stats); diff != "" {
		t.Errorf("Run() stats mismatch (-want +got):\n%s", diff)
	}

	want := map[int64]string{
		1: "6ccd780c-baba-1026-9564-5b8c656024db",
		2: "NULL",
		3: "550e8400-e29b-41d4-a716-446655440000",
		4: "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		5: "NULL",
	}
	if diff := cmp.Diff(want, column(t, db, "uuid_back", false)); diff != "" {
		t.Errorf("uuid_back mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrator_RunCanceled(t *testing.T) {
	db := openEvents(t)

	m, err := New(db, validConfig(), quietLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Run(ctx); err == nil {
		t.Error("Run() with canceled context expected error")
	}
	if got := column(t, db, "uuid_bin", true)[1]; got != "NULL" {
		t.Errorf("uuid_bin[1] = %s, want NULL", got)
	}
}
