package db

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"cosmoport/shipyard/internal/logging"
	gormModels "cosmoport/shipyard/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormLogger reports slow queries and errors to w. A missing record is a
// normal lookup miss for the ship stores and is not logged.
func NewGormLogger(w io.Writer) gormlogger.Interface {
	return gormlogger.New(
		log.New(w, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// InitPostgresORM opens a GORM connection, retrying while the database comes up.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: NewGormLogger(os.Stdout),
		})
		if err == nil {
			logging.Info("Connected to Postgres via GORM", "attempts", i+1)
			return db, nil
		}
		logging.Warn("Postgres not ready", "attempt", i+1, "error", err)
		time.Sleep(connectBackoff)
	}
	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", connectAttempts, err)
}

// Migrate creates or alters the ships table to match the GORM model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&gormModels.Ship{}); err != nil {
		return fmt.Errorf("failed to migrate ships table: %w", err)
	}
	logging.Info("Schema migration complete", "tables", []string{gormModels.Ship{}.TableName()})
	return nil
}
