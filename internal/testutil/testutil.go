// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookstore/internal/config"
	"bookstore/internal/infra"
	"bookstore/pkg/utils"
)

const TestSecret = "test-signing-secret"

// NewDB opens an isolated in-memory sqlite database with the schema applied.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.Database{
		Driver:       "sqlite",
		URL:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
	}
	db, err := infra.OpenDatabase(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	t.Cleanup(func() { infra.CloseDatabase(db, zap.NewNop()) })
	return db
}

func NewTokenManager(t *testing.T) *utils.TokenManager {
	t.Helper()
	m, err := utils.NewTokenManager(TestSecret, 24*time.Hour)
	require.NoError(t, err)
	return m
}
