// Package dbtest opens throwaway sqlite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"

	"poi-be-svc/internal/database"
)

// New opens a migrated in-memory database private to the test
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", primitive.NewObjectID().Hex())
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	// a single connection keeps transactions and plain queries on one in-memory database
	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate())

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db.DB
}
