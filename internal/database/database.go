package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/taiwoajasa245/quran-api/pkg/config"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// DB exposes the shared handle. Repositories receive it once at
	// construction time and never reopen the store themselves.
	DB() *sqlx.DB

	Dialect() Dialect

	// Initialize creates any missing tables. It is idempotent.
	Initialize(ctx context.Context) error

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error
}

type service struct {
	db      *sqlx.DB
	dialect Dialect
	name    string
	logger  *slog.Logger
}

// New opens the store selected by cfg and makes sure its schema exists.
// Any error here means the process cannot serve requests.
func New(cfg *config.Config) (Service, error) {
	switch Dialect(cfg.DBDriver) {
	case SQLite:
		return NewSQLite(cfg.DBPath)
	case Postgres:
		return NewPostgres(cfg.PostgresURL(), cfg.DBName)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DBDriver)
	}
}

// NewSQLite opens (or creates) the file-backed store at path.
// Parent directories are created if needed.
func NewSQLite(path string) (Service, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	dsn := "file:" + path +
		"?_pragma=busy_timeout(10000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)"

	return open(SQLite, dsn, path)
}

// NewPostgres connects through pgx using a postgres:// URL.
func NewPostgres(url, name string) (Service, error) {
	return open(Postgres, url, name)
}

func open(dialect Dialect, dsn, name string) (Service, error) {
	logger := slog.Default().With("component", "store", "driver", string(dialect))

	sqlDB, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &service{
		db:      sqlx.NewDb(sqlDB, dialect.driverName()),
		dialect: dialect,
		name:    name,
		logger:  logger,
	}

	if err := s.Initialize(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("database initialized", "database", name)
	return s, nil
}

func (s *service) DB() *sqlx.DB {
	return s.db
}

func (s *service) Dialect() Dialect {
	return s.dialect
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	// Ping the database
	err := s.db.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		s.logger.Error("health check failed", "error", err)
		return stats
	}

	// Database is up, add more statistics
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["driver"] = string(s.dialect)

	// Get database stats (like open connections, in use, idle, etc.)
	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	// Evaluate stats to provide a health message
	if dbStats.OpenConnections > 40 {
		stats["message"] = "The database is experiencing heavy load."
	}

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection.
// It logs a message indicating the disconnection from the specific database.
// If the connection is successfully closed, it returns nil.
// If an error occurs while closing the connection, it returns the error.
func (s *service) Close() error {
	s.logger.Info("disconnected from database", "database", s.name)
	return s.db.Close()
}
