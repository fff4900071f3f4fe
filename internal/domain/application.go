package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Application status constants. Only pending is written here; the rest are set
// by agency staff out of band.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

// Application represents a job application from a signed-in user
type Application struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ResumeURL   *string   `json:"resume_url"`
	CoverLetter *string   `json:"cover_letter"`
}

type ApplicationInsert struct {
	JobID       uuid.UUID
	UserID      string
	Status      string
	ResumeURL   *string
	CoverLetter *string
}

// JobSummary is the slice of a Job joined onto an application row.
// Fields are nil when the job row no longer exists.
type JobSummary struct {
	Title    *string `json:"title"`
	Company  *string `json:"company"`
	Location *string `json:"location"`
}

type ApplicationWithJob struct {
	Application
	Job JobSummary `json:"job"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *ApplicationInsert) (*Application, error)
	FetchByUserWithJob(ctx context.Context, userID string) ([]ApplicationWithJob, error)
}
