// Package testutil opens throwaway SQLite databases for tests.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"go_workout_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StepClock returns Start, Start+Step, Start+2*Step, ... on successive calls,
// so timestamps written by consecutive statements are strictly ordered.
type StepClock struct {
	mu    sync.Mutex
	Start time.Time
	Step  time.Duration
	n     int
}

func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.Start.Add(time.Duration(c.n) * c.Step)
	c.n++
	return t
}

// NewSQLiteDB returns a private in-memory database with the schema applied.
// It is closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()
	clock := &StepClock{Start: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), Step: time.Second}

	dsn := repository.SQLiteDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: clock.Now,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// one connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := repository.NewGormSchemaRepository().Bootstrap(context.Background(), db); err != nil {
		t.Fatalf("failed to bootstrap schema: %v", err)
	}
	return db
}
