package usecase

import (
	"context"
	"strings"
	"time"

	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/apperror"
	"muto-jobboard/pkg/eventlog"
	"muto-jobboard/pkg/logger"
	"muto-jobboard/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	postJobFallbackMessage = "An error occurred while posting the job"
	postJobSuccessRedirect = "/jobs"
)

type postJobUsecase struct {
	gw       *domain.Gateway
	validate *validator.Validate
	guard    *SubmitGuard
	events   *eventlog.Logger
}

// NewPostJobUsecase creates the post-job page controller. Posting is a public
// intake form: no identity is required.
func NewPostJobUsecase(gw *domain.Gateway, validate *validator.Validate, guard *SubmitGuard, events *eventlog.Logger) domain.PostJobUsecase {
	return &postJobUsecase{
		gw:       gw,
		validate: validate,
		guard:    guard,
		events:   events,
	}
}

func (u *postJobUsecase) Form() domain.JobFormDefinition {
	return domain.JobFormDefinition{
		TypeOptions:    append([]string(nil), domain.JobTypes...),
		RequiredFields: []string{"title", "company", "location", "type", "description", "requirements", "deadline"},
		OptionalFields: []string{"salary_range"},
	}
}

// Submit validates the form and inserts the job. Whatever status the caller
// sent, the stored status is always active.
func (u *postJobUsecase) Submit(ctx context.Context, form domain.PostJobForm, submitterKey string) (*domain.SubmitResult, error) {
	form = trimJobForm(form)
	if err := u.validate.Struct(form); err != nil {
		return nil, apperror.Validation(validation.FieldErrors(err))
	}

	// date_only already accepted this layout
	deadline, _ := time.Parse(domain.DateLayout, form.Deadline)

	release, ok := u.guard.Acquire("post:" + submitterKey + ":" + strings.ToLower(form.Company+"|"+form.Title))
	if !ok {
		u.events.Log(ctx, eventlog.Event{
			Event:        eventlog.EventDuplicateSubmit,
			SubjectType:  "ip",
			SubjectValue: submitterKey,
			RequestID:    domain.RequestIDFromContext(ctx),
		})
		return nil, apperror.Conflict(inProgressMessage)
	}
	defer release()

	insert := &domain.JobInsert{
		Title:        form.Title,
		Company:      form.Company,
		Location:     form.Location,
		Description:  form.Description,
		Requirements: form.Requirements,
		Type:         form.Type,
		Deadline:     deadline,
		Status:       domain.JobStatusActive,
	}
	if form.SalaryRange != "" {
		insert.SalaryRange = &form.SalaryRange
	}

	job, err := u.gw.Jobs.Create(ctx, insert)
	if err != nil {
		logger.Log.Error("Error posting job", "error", err)
		u.events.Log(ctx, eventlog.Event{
			Event:     eventlog.EventWriteRejected,
			RequestID: domain.RequestIDFromContext(ctx),
			Details:   map[string]interface{}{"table": "jobs"},
		})
		return nil, apperror.Write(err, postJobFallbackMessage)
	}

	u.events.Log(ctx, eventlog.Event{
		Event:        eventlog.EventJobPosted,
		SubjectType:  "ip",
		SubjectValue: submitterKey,
		RequestID:    domain.RequestIDFromContext(ctx),
		Details:      map[string]interface{}{"job_id": job.ID.String(), "company": job.Company},
	})

	return &domain.SubmitResult{RedirectTo: postJobSuccessRedirect, Record: job}, nil
}

func trimJobForm(f domain.PostJobForm) domain.PostJobForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Company = strings.TrimSpace(f.Company)
	f.Location = strings.TrimSpace(f.Location)
	f.Type = strings.TrimSpace(f.Type)
	f.SalaryRange = strings.TrimSpace(f.SalaryRange)
	f.Deadline = strings.TrimSpace(f.Deadline)
	return f
}
