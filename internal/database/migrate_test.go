package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestAutoMigrate(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"recipes", "ingredients", "preferences", "instruction_steps", "ingredient_quantities"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s must exist", table)
	}
}

func TestRunMigrations(t *testing.T) {
	t.Run("should fall back to auto-migration on sqlite", func(t *testing.T) {
		db := openSQLite(t)

		require.NoError(t, RunMigrations(db, "no-such-dir", zap.NewNop()))

		assert.True(t, db.Migrator().HasTable("recipes"))
		assert.True(t, db.Migrator().HasTable("ingredients"))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		db := openSQLite(t)

		require.NoError(t, RunMigrations(db, "no-such-dir", zap.NewNop()))
		require.NoError(t, RunMigrations(db, "no-such-dir", zap.NewNop()))
	})
}
