package store

import (
	"context"
	"database/sql"

	_ "embed"

	"safewatch-chatbot/pkg"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the database schema to the given database. It executes
// the statements in schema.sql which create the reports table if it does
// not already exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

// PostgresSink writes each report as a row in the adverse_events table.
type PostgresSink struct {
	DB *sql.DB
}

// NewPostgresSink constructs a sink over an existing sql.DB. The caller
// is responsible for managing the connection lifecycle and for running
// Migrate before the first save.
func NewPostgresSink(db *sql.DB) *PostgresSink { return &PostgresSink{DB: db} }

// Save inserts the report. Reports are append-only; there is no
// corresponding read, update or delete path in this service.
func (s *PostgresSink) Save(ctx context.Context, report *pkg.AdverseEventReport) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO adverse_events (id, drug, reaction, age, gender, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		report.ID, report.Drug, report.Reaction, report.Age, string(report.Gender), report.Timestamp,
	)
	return err
}
