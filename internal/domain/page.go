package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PageState is the terminal state a page lands in once its reads have settled.
// The loading state is the request itself being in flight.
type PageState string

const (
	PageStatePopulated PageState = "populated"
	PageStateEmpty     PageState = "empty"
	PageStateFailed    PageState = "failed"
	PageStateReady     PageState = "ready"
	PageStateNotFound  PageState = "not_found"
)

// SubmitResult tells the client where to navigate after a successful write.
type SubmitResult struct {
	RedirectTo string      `json:"redirect_to"`
	Record     interface{} `json:"record"`
}

// --- Jobs listing ---

type JobCard struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	SalaryRange *string   `json:"salary_range,omitempty"`
	Deadline    string    `json:"deadline"`
	Closed      bool      `json:"closed"`
	ApplyPath   string    `json:"apply_path"`
}

type JobsListingView struct {
	State   PageState `json:"state"`
	Query   string    `json:"query,omitempty"`
	Jobs    []JobCard `json:"jobs"`
	Message string    `json:"message,omitempty"`
}

type JobsListingUsecase interface {
	Load(ctx context.Context, query string) JobsListingView
}

// --- Apply to job ---

type ApplicationForm struct {
	ResumeURL   string `json:"resume_url" validate:"required,http_url"`
	CoverLetter string `json:"cover_letter" validate:"required,not_blank"`
}

type ApplyJobView struct {
	State    PageState  `json:"state"`
	JobID    *uuid.UUID `json:"job_id,omitempty"`
	Title    string     `json:"title,omitempty"`
	Company  string     `json:"company,omitempty"`
	Location string     `json:"location,omitempty"`
	Message  string     `json:"message,omitempty"`
}

type ApplyJobUsecase interface {
	Load(ctx context.Context, jobID string) ApplyJobView
	Submit(ctx context.Context, jobID string, form ApplicationForm) (*SubmitResult, error)
}

// --- Post job ---

type PostJobForm struct {
	Title        string `json:"title" validate:"required,not_blank"`
	Company      string `json:"company" validate:"required,not_blank"`
	Location     string `json:"location" validate:"required,not_blank"`
	Type         string `json:"type" validate:"required,oneof=Full-time Part-time Contract Internship"`
	Description  string `json:"description" validate:"required,not_blank"`
	Requirements string `json:"requirements" validate:"required,not_blank"`
	SalaryRange  string `json:"salary_range" validate:"max=100"`
	Deadline     string `json:"deadline" validate:"required,date_only"`
	// Status is accepted on the wire but never stored; new jobs are always active.
	Status string `json:"status,omitempty" validate:"-"`
}

type JobFormDefinition struct {
	TypeOptions    []string `json:"type_options"`
	RequiredFields []string `json:"required_fields"`
	OptionalFields []string `json:"optional_fields"`
}

type PostJobUsecase interface {
	Form() JobFormDefinition
	Submit(ctx context.Context, form PostJobForm, submitterKey string) (*SubmitResult, error)
}

// --- Profile ---

type ProfileForm struct {
	FullName string `json:"full_name" validate:"required,not_blank,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,valid_phone"`
	Location string `json:"location" validate:"max=120"`
	Bio      string `json:"bio" validate:"max=2000"`
	Skills   string `json:"skills" validate:"max=1000"`
}

// BadgeTier is the visual tier of an application status badge.
type BadgeTier string

const (
	BadgeTierHighlight BadgeTier = "highlight"
	BadgeTierPositive  BadgeTier = "positive"
	BadgeTierNegative  BadgeTier = "negative"
)

type ApplicationCard struct {
	ID          uuid.UUID  `json:"id"`
	JobID       uuid.UUID  `json:"job_id"`
	Status      string     `json:"status"`
	StatusLabel string     `json:"status_label"`
	Tier        BadgeTier  `json:"tier"`
	AppliedAt   time.Time  `json:"applied_at"`
	Job         JobSummary `json:"job"`
}

type ProfileView struct {
	Form              ProfileForm       `json:"form"`
	HasProfile        bool              `json:"has_profile"`
	Applications      []ApplicationCard `json:"applications"`
	ProfileError      string            `json:"profile_error,omitempty"`
	ApplicationsError string            `json:"applications_error,omitempty"`
}

type ProfileUsecase interface {
	Load(ctx context.Context) (*ProfileView, error)
	Save(ctx context.Context, form ProfileForm) (*ProfileForm, error)
	ExportApplications(ctx context.Context) ([]byte, string, error)
}
