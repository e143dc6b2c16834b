package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/Lzww0608/binuuid/internal/migrate"
)

type migrateCommand struct {
	DSN     string `long:"dsn" env:"UUIDBIN_DSN" description:"MySQL DSN, e.g. user:pass@tcp(127.0.0.1:3306)/db"`
	Table   string `short:"t" long:"table" required:"yes" description:"Table to convert"`
	Key     string `short:"k" long:"key" default:"id" description:"Primary key column used to walk the table"`
	From    string `long:"from" required:"yes" description:"Source column"`
	To      string `long:"to" required:"yes" description:"Target column, must allow NULL"`
	ToText  bool   `long:"to-text" description:"Convert BINARY(16) to CHAR(36) instead"`
	Swap    bool   `short:"s" long:"swap" description:"Binary column uses storage order"`
	Batch   int    `short:"b" long:"batch" default:"500" description:"Rows per transaction"`
	Verbose bool   `short:"v" long:"verbose" description:"Log every batch"`
}

func (c *migrateCommand) config() migrate.Config {
	cfg := migrate.Config{
		DSN:       c.DSN,
		Table:     c.Table,
		Key:       c.Key,
		Source:    c.From,
		Target:    c.To,
		Direction: migrate.ToBinary,
		Swap:      c.Swap,
		BatchSize: c.Batch,
	}
	if c.ToText {
		cfg.Direction = migrate.ToText
	}
	return cfg
}

func (c *migrateCommand) Execute(_ []string) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := c.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := migrate.Open(cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := migrate.New(db, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := m.Run(ctx)
	printStats(os.Stdout, [][2]string{
		{"batches", strconv.Itoa(stats.Batches)},
		{"converted", strconv.Itoa(stats.Converted)},
		{"skipped", strconv.Itoa(stats.Skipped)},
	})
	return err
}
