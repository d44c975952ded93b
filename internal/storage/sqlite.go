package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entry is the database representation of a key and its value.
type entry struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

func (entry) TableName() string {
	return "entries"
}

// SQLite is a Medium persisting all keys in one table of an SQLite database.
type SQLite struct {
	db *gorm.DB
}

// Connect opens the SQLite database and migrates the schema.
func Connect(dsn string) (*SQLite, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(entry{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Load returns the value stored for key. The boolean is false if the key
// has never been written.
func (s *SQLite) Load(ctx context.Context, key Key) ([]byte, bool, error) {
	var entries []entry
	err := s.db.WithContext(ctx).
		Where(&entry{Key: string(key)}).
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return nil, false, fmt.Errorf("loading %s failed: %w", key, err)
	}

	if len(entries) == 0 {
		return nil, false, nil
	}

	return entries[0].Value, true, nil
}

// Save writes all entries in one transaction.
func (s *SQLite) Save(ctx context.Context, entries ...Entry) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&entry{
				Key:   string(e.Key),
				Value: e.Value,
			}).Error
			if err != nil {
				return fmt.Errorf("saving %s failed: %w", e.Key, err)
			}
		}

		return nil
	})

	// Starting the transaction does not run any callbacks
	if isDriverError(err) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// Ping verifies that the database is reachable.
func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	err = sqlDB.PingContext(ctx)
	if isDriverError(err) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func registerCallbacks(db *gorm.DB) error {
	err := db.Callback().Query().After("*").Register("networth:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("networth:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	return db.Callback().Update().After("*").Register("networth:after_update_general", generalCallback)
}

// generalCallback handles driver errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and a general error is returned.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if isDriverError(db.Error) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// isDriverError reports whether err originates from the database driver.
func isDriverError(err error) bool {
	if err == nil {
		return false
	}

	// "sql: database is closed" is hard-coded in the sql module
	var sqliteErr *go_sqlite.Error
	return err.Error() == "sql: database is closed" || errors.As(err, &sqliteErr)
}
