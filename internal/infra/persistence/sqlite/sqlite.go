// Package sqlite contains the concrete implementation of the persistence
// layer using GORM over an embedded SQLite database. The store is local to
// one service instance with a single writer, which is exactly the guest
// cart's scope.
package sqlite

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"cartbridge/config"
	"cartbridge/internal/errors"
	"cartbridge/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the guest-cart database and migrates its schema.
func New(params Params) (*gorm.DB, error) {
	path := params.Config.GuestStore.Path
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create guest store directory")
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open guest store")
	}

	if err := db.AutoMigrate(&model.GuestCartItemModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate guest store schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get guest store sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing guest store", slog.String("path", path))

			return sqlDB.Close()
		},
	})

	return db, nil
}
