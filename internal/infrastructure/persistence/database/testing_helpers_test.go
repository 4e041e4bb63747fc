package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rafabene/ecoleta/internal/infrastructure/config"
	"github.com/rafabene/ecoleta/internal/infrastructure/logging"
)

// newTestDB abre um sqlite em memória já migrado e com os itens de referência
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDatabaseConnection(&config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
	}, "error", logging.NewNopLogger())
	require.NoError(t, err)

	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	_, err = SeedItems(db)
	require.NoError(t, err)

	return db
}
