package postgres

import (
	"context"

	"muto-jobboard/internal/domain"
)

type applicationRepo struct {
	db DBTX
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db DBTX) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. Referential integrity of job_id is left to
// the foreign key.
func (r *applicationRepo) Create(ctx context.Context, in *domain.ApplicationInsert) (*domain.Application, error) {
	query := `
		INSERT INTO applications (job_id, user_id, status, resume_url, cover_letter)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, job_id, user_id, status, created_at, resume_url, cover_letter`

	status := in.Status
	if status == "" {
		status = domain.ApplicationStatusPending
	}

	var app domain.Application
	err := r.db.QueryRow(ctx, query,
		in.JobID,
		in.UserID,
		status,
		in.ResumeURL,
		in.CoverLetter,
	).Scan(&app.ID, &app.JobID, &app.UserID, &app.Status, &app.CreatedAt, &app.ResumeURL, &app.CoverLetter)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// FetchByUserWithJob retrieves all applications of a user joined with their job, newest first
func (r *applicationRepo) FetchByUserWithJob(ctx context.Context, userID string) ([]domain.ApplicationWithJob, error) {
	query := `
		SELECT
			a.id, a.job_id, a.user_id, a.status, a.created_at, a.resume_url, a.cover_letter,
			j.title, j.company, j.location
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []domain.ApplicationWithJob{}
	for rows.Next() {
		var app domain.ApplicationWithJob
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.UserID, &app.Status, &app.CreatedAt, &app.ResumeURL, &app.CoverLetter,
			&app.Job.Title, &app.Job.Company, &app.Job.Location,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}
