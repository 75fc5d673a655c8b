package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	ddl, err := schemaFor(DriverPostgres)
	require.NoError(t, err)

	stmts := splitStatements(ddl)
	require.Len(t, stmts, 4)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS workout_programs")
	assert.Contains(t, stmts[1], "ON DELETE CASCADE")
	assert.Contains(t, stmts[2], "idx_exercises_program_id")
	assert.Contains(t, stmts[3], "idx_exercises_program_order")

	sqliteStmts := splitStatements(sqliteSchema)
	assert.Len(t, sqliteStmts, 4)

	_, err = schemaFor("mysql")
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:test.db?_foreign_keys=on", SQLiteDSN("file:test.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", SQLiteDSN("file::memory:?cache=shared"))
	assert.Equal(t, "file:test.db?_fk=1", SQLiteDSN("file:test.db?_fk=1"))
}

func TestNewDB_Validation(t *testing.T) {
	_, err := NewDB(DBOptions{Driver: DriverPostgres}, nil)
	assert.Error(t, err, "empty url")

	_, err = NewDB(DBOptions{Driver: "oracle", URL: "x"}, nil)
	assert.ErrorContains(t, err, "unsupported driver")
}

func TestNewDB_SQLite(t *testing.T) {
	db, err := NewDB(DBOptions{Driver: DriverSQLite, URL: "file::memory:?cache=private", MaxOpenConns: 1}, nil)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, DriverSQLite, db.Dialector.Name())
	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}
