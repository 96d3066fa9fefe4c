// Package database opens the SQLite file that backs persisted debug settings.
package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"camerakitsample/internal/models"
)

// Config selects the database file and how chatty gorm is. Zero values pick
// the build's defaults.
type Config struct {
	Path     string
	LogLevel logger.LogLevel
}

// pragmas are appended to every DSN. WAL keeps reads from blocking the single
// writer; the busy timeout covers a second instance touching the file.
var pragmas = []string{
	"_journal_mode=WAL",
	"_busy_timeout=5000",
	"_foreign_keys=ON",
}

// DefaultLogLevel logs every statement in development builds and only slow or
// failing ones otherwise.
func DefaultLogLevel() logger.LogLevel {
	if IsDevelopment() {
		return logger.Info
	}
	return logger.Warn
}

func (c Config) withDefaults() Config {
	if c.Path == "" {
		c.Path = GetDefaultDBPath()
	}
	if c.LogLevel == 0 {
		c.LogLevel = DefaultLogLevel()
	}
	return c
}

func (c Config) dsn() string {
	return c.Path + "?" + strings.Join(pragmas, "&")
}

// Init opens the settings database and brings its schema up to date.
func Init(cfg Config) (*gorm.DB, error) {
	cfg = cfg.withDefaults()

	db, err := gorm.Open(sqlite.Open(cfg.dsn()), &gorm.Config{
		Logger: newGormLogger(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open settings db %s: %w", cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("settings db handle: %w", err)
	}
	// SQLite has a single writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&models.DebugSetting{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate settings db: %w", err)
	}
	return db, nil
}

func newGormLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(stdLogWriter{}, "gorm: ", 0),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  IsDevelopment(),
		},
	)
}

// stdLogWriter forwards gorm output to the standard logger so it shares the
// app's log destination and timestamps.
type stdLogWriter struct{}

func (stdLogWriter) Write(p []byte) (int, error) {
	log.Print(string(p))
	return len(p), nil
}
