package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/masaslabs/customer-console/internal/db"
	"github.com/masaslabs/customer-console/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.CustomerRepo = (*SQLiteRepo)(nil)
var _ repository.ReferenceRepo = (*SQLiteRepo)(nil)
var _ repository.StatusRepo = (*SQLiteRepo)(nil)
var _ repository.HealthRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

// Ping verifies the store is reachable with a trivial version query.
func (r *SQLiteRepo) Ping(ctx context.Context) error {
	var version string
	if err := r.conn.QueryRow(ctx, `SELECT sqlite_version()`).Scan(&version); err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	return nil
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
