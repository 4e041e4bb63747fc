package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/rafabene/ecoleta/internal/domain/ports"
	"github.com/rafabene/ecoleta/internal/infrastructure/config"
	"github.com/rafabene/ecoleta/internal/infrastructure/i18n"
	"github.com/rafabene/ecoleta/internal/infrastructure/logging"
	"github.com/rafabene/ecoleta/internal/infrastructure/metrics"
	"github.com/rafabene/ecoleta/internal/infrastructure/persistence/database"
	"github.com/rafabene/ecoleta/internal/infrastructure/storage"
)

// InfrastructureModule fornece logger, banco, storage, i18n e métricas
var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		provideLogger,
		provideDatabase,
		fx.Annotate(provideStorage, fx.As(new(ports.FileStorage))),
		provideI18n,
		metrics.New,
	),
)

func provideLogger(cfg *config.Config) ports.Logger {
	return logging.NewSlogLogger(cfg.Logging.Level).With("env", cfg.Env)
}

// provideDatabase abre a conexão, aplica migrations e seed quando configurado
// e fecha o pool no shutdown.
func provideDatabase(lc fx.Lifecycle, cfg *config.Config, logger ports.Logger) (*gorm.DB, error) {
	db, err := database.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		inserted, err := database.SeedItems(db)
		if err != nil {
			_ = database.Close(db)
			return nil, err
		}
		logger.Info("database migrated", "seeded_items", inserted)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("closing database connection")
			return database.Close(db)
		},
	})

	return db, nil
}

func provideStorage(cfg *config.Config) (*storage.DiskStorage, error) {
	return storage.NewDiskStorage(
		filepath.Join(cfg.Storage.UploadsDir, storage.PhotosSubdir),
		cfg.Storage.MaxUploadBytes,
	)
}

func provideI18n(cfg *config.Config, logger ports.Logger) (*i18n.Service, error) {
	var (
		service *i18n.Service
		err     error
	)

	if cfg.I18n.LocalesDir != "" {
		service, err = i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	} else {
		service, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize i18n: %w", err)
	}

	logger.Info("i18n initialized",
		"default_language", service.GetDefaultLanguage(),
		"supported_languages", service.GetSupportedLanguages(),
	)

	return service, nil
}
