package db

import (
	"fmt"
	"time"

	"cosmoport/shipyard/internal/logging"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	connectAttempts = 10
	connectBackoff  = 500 * time.Millisecond
)

// InitPostgres opens a sqlx pool, retrying while the database comes up.
func InitPostgres(dsn string) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	for i := 0; i < connectAttempts; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			logging.Info("Connected to Postgres via sqlx", "attempts", i+1)
			return db, nil
		}
		logging.Warn("Postgres not ready", "attempt", i+1, "error", err)
		time.Sleep(connectBackoff)
	}
	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", connectAttempts, err)
}
