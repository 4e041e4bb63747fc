package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/rafabene/ecoleta/internal/app"
	"github.com/rafabene/ecoleta/internal/domain/ports"
	"github.com/rafabene/ecoleta/internal/infrastructure/config"
	"github.com/rafabene/ecoleta/internal/infrastructure/logging"
	"github.com/rafabene/ecoleta/internal/infrastructure/persistence/database"
)

var envFile string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "api",
		Short: "Ecoleta API - pontos de coleta de resíduos",
		Long: `Servidor REST do Ecoleta.

Subcommands:
  serve    - Inicia o servidor HTTP (padrão)
  migrate  - Cria/atualiza as tabelas items, points e point_items
  seed     - Insere os itens de referência`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Arquivo .env opcional")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Inicia o servidor HTTP",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Cria/atualiza o schema do banco",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(db *gorm.DB, logger ports.Logger) error {
					if err := database.Migrate(db); err != nil {
						return fmt.Errorf("failed to migrate database: %w", err)
					}
					logger.Info("database migrated")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insere os itens de referência (idempotente)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDatabase(func(db *gorm.DB, logger ports.Logger) error {
					inserted, err := database.SeedItems(db)
					if err != nil {
						return err
					}
					logger.Info("items seeded", "inserted", inserted)
					return nil
				})
			},
		},
	)

	return rootCmd
}

// runServe sobe a aplicação e bloqueia até SIGINT/SIGTERM
func runServe() error {
	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	application := fx.New(
		app.Options(cfg),
		fx.NopLogger,
	)
	if err := application.Err(); err != nil {
		return err
	}

	application.Run()
	return nil
}

// withDatabase abre uma conexão avulsa para comandos de manutenção
func withDatabase(fn func(db *gorm.DB, logger ports.Logger) error) error {
	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := database.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	return fn(db, logger)
}
