package store

import (
	"context"
	"database/sql"
	"fmt"

	"safewatch-chatbot/pkg"
)

// Backend names accepted by New.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// ReportSink persists completed adverse event reports. Implementations
// are append-only: a report handed to Save is never read back, updated
// or deleted by this service.
type ReportSink interface {
	Save(ctx context.Context, report *pkg.AdverseEventReport) error
}

// Config selects and parameterises a sink backend. Exactly one backend
// is active per process; the zero value falls back to a file sink with
// the default path.
type Config struct {
	Backend  string
	FilePath string // file backend: path of the JSON data file
	DB       *sql.DB // postgres backend: open connection, caller-managed
	RedisURL string // redis backend: connection URL
}

// New constructs the sink named by cfg.Backend. An empty backend name
// selects the file sink so the service runs without any external store.
func New(cfg Config) (ReportSink, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileSink(cfg.FilePath), nil
	case BackendPostgres:
		if cfg.DB == nil {
			return nil, fmt.Errorf("postgres backend requires an open database connection")
		}
		return NewPostgresSink(cfg.DB), nil
	case BackendRedis:
		return NewRedisSink(cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
