package service

import (
	"context"
	"errors"
	"testing"

	"go_workout_tracker/internal/repository"
	"go_workout_tracker/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_schemaService_Initialize(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	repo := mocks.NewSchemaRepository(t)
	repo.On("Bootstrap", ctx, db).Return(nil).Once()
	assert.NoError(t, NewSchemaService(db, repo, nil).Initialize(ctx))

	failing := mocks.NewSchemaRepository(t)
	bootErr := errors.New("permission denied for schema public")
	failing.On("Bootstrap", ctx, db).Return(bootErr).Once()
	assert.ErrorIs(t, NewSchemaService(db, failing, nil).Initialize(ctx), bootErr)
}

func Test_schemaService_CheckConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("reports store version", func(t *testing.T) {
		db := setupTestDB(t)
		version, err := NewSchemaService(db, repository.NewGormSchemaRepository(), nil).CheckConnection(ctx)
		require.NoError(t, err)
		assert.Regexp(t, `^3\.\d+\.\d+`, version)
	})

	t.Run("closed pool", func(t *testing.T) {
		db := setupTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		repo := mocks.NewSchemaRepository(t)
		_, err = NewSchemaService(db, repo, nil).CheckConnection(ctx)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Version")
	})
}
