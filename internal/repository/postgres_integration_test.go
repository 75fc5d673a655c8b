package repository_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_workout_tracker/internal/model"
	"go_workout_tracker/internal/repository"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PostgresSuite runs the gateway against a disposable Postgres container.
// Set TEST_DB_HOST when the docker daemon is not reachable on localhost
// (for example host.docker.internal inside a devcontainer).
type PostgresSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB

	programs  repository.ProgramRepository
	exercises repository.ExerciseRepository
	schema    repository.SchemaRepository
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres integration tests in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		s.T().Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		s.T().Skipf("docker not reachable: %v", err)
	}
	pool.MaxWait = 120 * time.Second
	s.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=workout_tracker",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	s.Require().NoError(err, "could not start postgres")
	s.resource = resource

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	url := fmt.Sprintf("postgres://user:secret@%s:%s/workout_tracker?sslmode=disable", host, resource.GetPort("5432/tcp"))

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	err = pool.Retry(func() error {
		db, err := repository.NewDB(repository.DBOptions{Driver: repository.DriverPostgres, URL: url, MaxOpenConns: 5}, logger)
		if err != nil {
			return err
		}
		s.db = db
		return nil
	})
	s.Require().NoError(err, "could not connect to postgres")

	s.programs = repository.NewGormProgramRepository()
	s.exercises = repository.NewGormExerciseRepository()
	s.schema = repository.NewGormSchemaRepository()
	s.Require().NoError(s.schema.Bootstrap(context.Background(), s.db))
}

func (s *PostgresSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if s.pool != nil && s.resource != nil {
		if err := s.pool.Purge(s.resource); err != nil {
			s.T().Logf("could not purge postgres container: %v", err)
		}
	}
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE exercises, workout_programs RESTART IDENTITY CASCADE").Error)
}

func (s *PostgresSuite) TestBootstrapIsRepeatable() {
	ctx := context.Background()
	s.Require().NoError(s.schema.Bootstrap(ctx, s.db))
	s.True(s.db.Migrator().HasIndex("exercises", "idx_exercises_program_order"))

	version, err := s.schema.Version(ctx, s.db)
	s.Require().NoError(err)
	s.Contains(version, "PostgreSQL")
}

func (s *PostgresSuite) TestProgramLifecycle() {
	ctx := context.Background()
	a := &model.WorkoutProgram{Name: "A"}
	s.Require().NoError(s.programs.Create(ctx, s.db, a))
	s.Equal("", a.Description)
	s.True(a.CreatedAt.Equal(a.UpdatedAt))

	// keep the two programs' timestamps apart on a fast machine
	time.Sleep(5 * time.Millisecond)
	b := &model.WorkoutProgram{Name: "B"}
	s.Require().NoError(s.programs.Create(ctx, s.db, b))

	list, err := s.programs.FindAll(ctx, s.db)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(b.ID, list[0].ID)

	time.Sleep(5 * time.Millisecond)
	updated, err := s.programs.Update(ctx, s.db, a.ID, map[string]interface{}{"name": "A2", "description": "d"})
	s.Require().NoError(err)
	s.Equal(a.ID, updated.ID)
	s.True(updated.UpdatedAt.After(updated.CreatedAt))

	list, err = s.programs.FindAll(ctx, s.db)
	s.Require().NoError(err)
	s.Equal(a.ID, list[0].ID)

	_, err = s.programs.Update(ctx, s.db, 9999, map[string]interface{}{"name": "x", "description": ""})
	s.ErrorIs(err, model.ErrNotFound)
}

func (s *PostgresSuite) TestExercisesOrderingAndCascade() {
	ctx := context.Background()
	p := &model.WorkoutProgram{Name: "Full body"}
	s.Require().NoError(s.programs.Create(ctx, s.db, p))

	rpe := 8.5
	var ids []int64
	for _, idx := range []int{2, 0, 1} {
		e := &model.Exercise{ProgramID: p.ID, Name: fmt.Sprintf("ex-%d", idx), Sets: 3, Reps: "8-10", RPE: &rpe, OrderIndex: idx}
		s.Require().NoError(s.exercises.Create(ctx, s.db, e))
		ids = append(ids, e.ID)
	}

	list, err := s.exercises.FindByProgramID(ctx, s.db, p.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal([]int{0, 1, 2}, []int{list[0].OrderIndex, list[1].OrderIndex, list[2].OrderIndex})
	s.Require().NotNil(list[0].RPE)
	s.Equal(8.5, *list[0].RPE)

	s.Require().NoError(s.programs.Delete(ctx, s.db, p.ID))
	for _, id := range ids {
		_, err := s.exercises.FindByID(ctx, s.db, id)
		s.ErrorIs(err, model.ErrNotFound)
	}
	s.NoError(s.programs.Delete(ctx, s.db, p.ID))
}

func (s *PostgresSuite) TestExerciseForeignKeyViolation() {
	err := s.exercises.Create(context.Background(), s.db, &model.Exercise{ProgramID: 42, Name: "Ghost", Sets: 1, Reps: "1"})
	s.ErrorIs(err, model.ErrForeignKeyViolation)
}
