package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

// models lists every schema in registration order. Referenced tables
// come before the tables that point at them so FK constraints resolve.
func models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Folder{},
		&domain.Bookmark{},
		&domain.FolderCollaboration{},
		&domain.Board{},
		&domain.BoardCard{},
		&domain.BoardCollaboration{},
		&domain.BoardTimelineEntry{},
	}
}

// AutoMigrate registers every schema with the database. Idempotent:
// GORM only applies the difference on repeated calls.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates one table at a time so a failure names the
// offending table, logging whether each table existed beforehand.
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, m := range models() {
		tableExisted := migrator.HasTable(m)
		if err := db.AutoMigrate(m); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", tableName(db, m)),
				zap.Bool("table_existed", tableExisted),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", tableName(db, m), err)
		}
		logger.Debug("Migrated table",
			zap.String("table", tableName(db, m)),
			zap.Bool("was_existing", tableExisted),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables", len(models())))
	return nil
}

// SafeAutoMigrateWithRetry retries SafeAutoMigrate with linear backoff,
// covering databases that are still warming up at process start.
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = SafeAutoMigrate(db, logger); err == nil {
			return nil
		}
		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}

func tableName(db *gorm.DB, model interface{}) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return "unknown"
	}
	return stmt.Table
}
