package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

const JobStatusActive = "active"

// Employment types offered on the post-job form
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// JobTypes is also the oneof list on PostJobForm.Type
var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

// DateLayout is the wire format of Job.Deadline.
const DateLayout = "2006-01-02"

type Job struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	SalaryRange  *string   `json:"salary_range"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
	Deadline     time.Time `json:"deadline"`
	Status       string    `json:"status"`
}

// JobInsert is the optional-field subset accepted when creating a job.
// ID and CreatedAt are generated by the store.
type JobInsert struct {
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements string
	SalaryRange  *string
	Type         string
	Deadline     time.Time
	Status       string
}

// IsClosed reports whether the deadline day is over in now's location.
// Deadline is a calendar date, so only its year, month and day are read.
// Display only; the store never closes jobs on its own.
func (j *Job) IsClosed(now time.Time) bool {
	y, m, d := j.Deadline.Date()
	endOfDay := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return !now.Before(endOfDay)
}

type JobRepository interface {
	FetchActive(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	Create(ctx context.Context, job *JobInsert) (*Job, error)
}
