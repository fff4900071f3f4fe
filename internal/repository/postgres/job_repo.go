package postgres

import (
	"context"
	"errors"
	"muto-jobboard/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type jobRepo struct {
	db DBTX
}

func NewJobRepository(db DBTX) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company, location, description, requirements, salary_range, type, created_at, deadline, status`

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Description, &job.Requirements,
		&job.SalaryRange, &job.Type, &job.CreatedAt, &job.Deadline, &job.Status,
	)
}

// FetchActive returns the public listing: active jobs only, newest first
func (r *jobRepo) FetchActive(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, domain.JobStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, in *domain.JobInsert) (*domain.Job, error) {
	query := `INSERT INTO jobs (title, company, location, description, requirements, salary_range, type, deadline, status)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING ` + jobColumns

	var job domain.Job
	err := scanJob(r.db.QueryRow(ctx, query,
		in.Title, in.Company, in.Location, in.Description, in.Requirements,
		in.SalaryRange, in.Type, in.Deadline, in.Status,
	), &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
