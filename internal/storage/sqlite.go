package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// snapshotRow is the table row shared by the SQL-backed slots.
type snapshotRow struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string {
	return "cv_snapshots"
}

// migrateSnapshots is replaced in tests.
var migrateSnapshots = func(db *gorm.DB) error {
	return db.AutoMigrate(&snapshotRow{})
}

// SQLiteSlot stores snapshots in a local SQLite database file.
type SQLiteSlot struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and migrates the snapshot table.
func OpenSQLite(path string) (*SQLiteSlot, error) {
	if path == "" {
		return nil, &Error{Message: "sqlite path is empty"}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to open sqlite database %s", path), Cause: err}
	}

	if err := migrateSnapshots(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, &Error{Message: "failed to migrate snapshot table", Cause: err}
	}

	return &SQLiteSlot{db: db}, nil
}

func (s *SQLiteSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &Error{Message: fmt.Sprintf("failed to load snapshot %s", key), Cause: err}
	}
	return row.Value, nil
}

func (s *SQLiteSlot) Save(ctx context.Context, key string, value []byte) error {
	row := snapshotRow{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return &Error{Message: fmt.Sprintf("failed to save snapshot %s", key), Cause: err}
	}
	return nil
}

func (s *SQLiteSlot) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return &Error{Message: "failed to access sqlite handle", Cause: err}
	}
	return sqlDB.Close()
}
