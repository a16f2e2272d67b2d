package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"notes-be/internal/entity"
	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// nopLogger keeps service construction quiet in tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

var testDBSeq atomic.Int64

// newTestFactory opens a fresh in-memory SQLite database with foreign keys
// enforced and runs the schema migration against it.
func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	name := fmt.Sprintf("service_test_%d", testDBSeq.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return unitofwork.NewRepositoryFactory(db)
}

func seedUser(t *testing.T, factory unitofwork.RepositoryFactory, email string, isAdmin bool) uint {
	t.Helper()

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	user := &entity.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "unused",
		IsAdmin:      isAdmin,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	require.NotZero(t, user.Id)
	return user.Id
}
