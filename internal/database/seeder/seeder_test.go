package seeder

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"career-guide/internal/database"
	"career-guide/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	vals []string
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.vals)
}
func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.vals[r.i-1]
	return nil
}

type countRow struct{ n int }

func (r countRow) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.n
	return nil
}

type fakeTx struct {
	db *fakeDB
}

func (t fakeTx) Exec(_ context.Context, _ string, args ...any) (int64, error) {
	t.db.inserted = append(t.db.inserted, args)
	return 1, nil
}
func (t fakeTx) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("unexpected")
}
func (t fakeTx) QueryRow(context.Context, string, ...any) database.Row { return countRow{} }
func (t fakeTx) Commit(context.Context) error {
	t.db.committed = true
	return nil
}
func (t fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct {
	columns   []string
	count     int
	inserted  [][]any
	committed bool
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }
func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &fakeRows{vals: d.columns}, nil
}
func (d *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	return countRow{n: d.count}
}
func (d *fakeDB) Begin(context.Context) (database.Tx, error) { return fakeTx{db: d}, nil }
func (d *fakeDB) SQLDB() *sql.DB                             { return nil }

var catalogColumns = []string{"position", "title", "salary", "description", "category", "company"}

func TestJobCatalogSeeder_InsertsFixtureInOrder(t *testing.T) {
	db := &fakeDB{columns: catalogColumns}
	require.NoError(t, Runner{Seeders: Defaults()}.Run(context.Background(), db))

	require.Len(t, db.inserted, 60)
	assert.True(t, db.committed)
	assert.Equal(t, 1, db.inserted[0][0])
	assert.Equal(t, "Delivery Partner", db.inserted[0][1])
	assert.Equal(t, 60, db.inserted[59][0])
	assert.Equal(t, string(catalog.CategoryCreativeFreelance), db.inserted[59][4])
}

func TestJobCatalogSeeder_SkipsPopulatedTable(t *testing.T) {
	db := &fakeDB{columns: catalogColumns, count: 3}
	require.NoError(t, JobCatalogSeeder{}.Run(context.Background(), db))
	assert.Empty(t, db.inserted)
}

func TestEnsureTableColumns_ListsEveryMissingColumn(t *testing.T) {
	db := &fakeDB{columns: []string{"title"}}
	err := EnsureTableColumns(context.Background(), db, "job_catalog", "title", "salary", "company")

	require.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "job_catalog.salary, job_catalog.company")
}

func TestRunner_NilDB(t *testing.T) {
	assert.Error(t, Runner{Seeders: Defaults()}.Run(context.Background(), nil))
}
