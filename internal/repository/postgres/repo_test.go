package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"muto-jobboard/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoConn = errors.New("no connection")

// recordingDB captures the last statement and answers every read with rowErr
type recordingDB struct {
	sql    string
	args   []any
	rowErr error
}

func (db *recordingDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.sql, db.args = sql, args
	return nil, errNoConn
}

func (db *recordingDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.sql, db.args = sql, args
	return errRow{err: db.rowErr}
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func strPtr(s string) *string { return &s }

// squash collapses whitespace so assertions don't depend on query layout
func squash(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func TestJobRepoFetchActiveQuery(t *testing.T) {
	db := &recordingDB{}
	_, err := NewJobRepository(db).FetchActive(context.Background())
	require.ErrorIs(t, err, errNoConn)

	sql := squash(db.sql)
	assert.Contains(t, sql, "FROM jobs WHERE status = $1 ORDER BY created_at DESC")
	assert.Equal(t, []any{domain.JobStatusActive}, db.args)
}

func TestJobRepoGetByIDNotFound(t *testing.T) {
	db := &recordingDB{rowErr: pgx.ErrNoRows}
	id := uuid.New()

	job, err := NewJobRepository(db).GetByID(context.Background(), id)
	assert.Nil(t, job)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, squash(db.sql), "FROM jobs WHERE id = $1")
	assert.Equal(t, []any{id}, db.args)

	db.rowErr = errNoConn
	_, err = NewJobRepository(db).GetByID(context.Background(), id)
	assert.ErrorIs(t, err, errNoConn)
}

func TestApplicationRepoQueries(t *testing.T) {
	db := &recordingDB{}
	_, err := NewApplicationRepository(db).FetchByUserWithJob(context.Background(), "user-1")
	require.ErrorIs(t, err, errNoConn)

	sql := squash(db.sql)
	assert.Contains(t, sql, "LEFT JOIN jobs j ON a.job_id = j.id WHERE a.user_id = $1 ORDER BY a.created_at DESC")
	assert.Equal(t, []any{"user-1"}, db.args)

	db.rowErr = errNoConn
	_, err = NewApplicationRepository(db).Create(context.Background(), &domain.ApplicationInsert{
		JobID:       uuid.New(),
		UserID:      "user-1",
		ResumeURL:   strPtr("https://example.com/cv.pdf"),
		CoverLetter: strPtr("hi"),
	})
	require.ErrorIs(t, err, errNoConn)
	require.Len(t, db.args, 5)
	assert.Equal(t, domain.ApplicationStatusPending, db.args[2])
}

func TestProfileRepoMissingRow(t *testing.T) {
	db := &recordingDB{rowErr: pgx.ErrNoRows}

	p, err := NewProfileRepository(db).GetByUserID(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.Contains(t, squash(db.sql), "FROM profiles WHERE user_id = $1")
}
