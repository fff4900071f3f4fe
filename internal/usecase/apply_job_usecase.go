package usecase

import (
	"context"
	"strings"

	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/apperror"
	"muto-jobboard/pkg/eventlog"
	"muto-jobboard/pkg/logger"
	"muto-jobboard/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	jobNotFoundMessage   = "Job not found"
	signInToApplyMessage = "Please sign in to apply"
	applyFallbackMessage = "An error occurred while submitting your application"
	inProgressMessage    = "Submission already in progress"
	applySuccessRedirect = "/profile"
)

type applyJobUsecase struct {
	gw       *domain.Gateway
	validate *validator.Validate
	guard    *SubmitGuard
	events   *eventlog.Logger
}

// NewApplyJobUsecase creates the apply-to-job page controller
func NewApplyJobUsecase(gw *domain.Gateway, validate *validator.Validate, guard *SubmitGuard, events *eventlog.Logger) domain.ApplyJobUsecase {
	return &applyJobUsecase{
		gw:       gw,
		validate: validate,
		guard:    guard,
		events:   events,
	}
}

// Load fetches the job being applied to. A malformed id, a missing row and a
// failed read all land on the same not-found panel.
func (uc *applyJobUsecase) Load(ctx context.Context, jobID string) domain.ApplyJobView {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return domain.ApplyJobView{State: domain.PageStateNotFound, Message: jobNotFoundMessage}
	}

	job, err := uc.gw.Jobs.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error("Error fetching job", "job_id", jobID, "error", err)
		return domain.ApplyJobView{State: domain.PageStateNotFound, Message: jobNotFoundMessage}
	}

	return domain.ApplyJobView{
		State:    domain.PageStateReady,
		JobID:    &job.ID,
		Title:    job.Title,
		Company:  job.Company,
		Location: job.Location,
	}
}

// Submit validates the form, resolves the signed-in identity and inserts one
// pending application. Validation failures never reach the store.
func (uc *applyJobUsecase) Submit(ctx context.Context, jobID string, form domain.ApplicationForm) (*domain.SubmitResult, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, apperror.NotFound(jobNotFoundMessage)
	}

	form.ResumeURL = strings.TrimSpace(form.ResumeURL)
	if err := uc.validate.Struct(form); err != nil {
		return nil, apperror.Validation(validation.FieldErrors(err))
	}

	identity, ok := uc.gw.Identity.CurrentIdentity(ctx)
	if !ok {
		uc.events.Log(ctx, eventlog.Event{
			Event:     eventlog.EventAuthRequired,
			RequestID: domain.RequestIDFromContext(ctx),
			Details:   map[string]interface{}{"job_id": id.String()},
		})
		return nil, apperror.Unauthorized(signInToApplyMessage)
	}

	release, ok := uc.guard.Acquire("apply:" + identity.UserID + ":" + id.String())
	if !ok {
		uc.events.Log(ctx, eventlog.Event{
			Event:        eventlog.EventDuplicateSubmit,
			SubjectType:  "user_id",
			SubjectValue: identity.UserID,
			RequestID:    domain.RequestIDFromContext(ctx),
		})
		return nil, apperror.Conflict(inProgressMessage)
	}
	defer release()

	app, err := uc.gw.Applications.Create(ctx, &domain.ApplicationInsert{
		JobID:       id,
		UserID:      identity.UserID,
		Status:      domain.ApplicationStatusPending,
		ResumeURL:   &form.ResumeURL,
		CoverLetter: &form.CoverLetter,
	})
	if err != nil {
		logger.Log.Error("Error submitting application", "job_id", id.String(), "error", err)
		uc.events.Log(ctx, eventlog.Event{
			Event:        eventlog.EventWriteRejected,
			SubjectType:  "user_id",
			SubjectValue: identity.UserID,
			RequestID:    domain.RequestIDFromContext(ctx),
			Details:      map[string]interface{}{"table": "applications", "job_id": id.String()},
		})
		return nil, apperror.Write(err, applyFallbackMessage)
	}

	uc.events.Log(ctx, eventlog.Event{
		Event:        eventlog.EventApplicationSubmitted,
		SubjectType:  "user_id",
		SubjectValue: identity.UserID,
		RequestID:    domain.RequestIDFromContext(ctx),
		Details:      map[string]interface{}{"application_id": app.ID.String(), "job_id": id.String()},
	})

	return &domain.SubmitResult{RedirectTo: applySuccessRedirect, Record: app}, nil
}
