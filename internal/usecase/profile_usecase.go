package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/apperror"
	"muto-jobboard/pkg/eventlog"
	"muto-jobboard/pkg/logger"
	"muto-jobboard/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

const (
	notAuthenticatedMessage    = "Not authenticated"
	profileLoadFailedMessage   = "We couldn't load your profile right now."
	applicationsFailedMessage  = "We couldn't load your applications right now."
	profileSaveFallbackMessage = "An error occurred while saving your profile"
)

type profileUsecase struct {
	gw       *domain.Gateway
	validate *validator.Validate
	guard    *SubmitGuard
	events   *eventlog.Logger
	now      func() time.Time
}

// NewProfileUsecase creates the profile + applications page controller
func NewProfileUsecase(gw *domain.Gateway, validate *validator.Validate, guard *SubmitGuard, events *eventlog.Logger) domain.ProfileUsecase {
	return &profileUsecase{
		gw:       gw,
		validate: validate,
		guard:    guard,
		events:   events,
		now:      time.Now,
	}
}

func (u *profileUsecase) identity(ctx context.Context) (*domain.Identity, error) {
	id, ok := u.gw.Identity.CurrentIdentity(ctx)
	if !ok {
		return nil, apperror.Unauthorized(notAuthenticatedMessage)
	}
	return id, nil
}

// Load issues the profile read and the applications read side by side.
// Either may fail without affecting the other.
func (u *profileUsecase) Load(ctx context.Context) (*domain.ProfileView, error) {
	id, err := u.identity(ctx)
	if err != nil {
		return nil, err
	}

	var (
		wg      sync.WaitGroup
		profile *domain.Profile
		apps    []domain.ApplicationWithJob
		profErr error
		appsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profErr = u.gw.Profiles.GetByUserID(ctx, id.UserID)
	}()
	go func() {
		defer wg.Done()
		apps, appsErr = u.gw.Applications.FetchByUserWithJob(ctx, id.UserID)
	}()
	wg.Wait()

	view := &domain.ProfileView{Applications: []domain.ApplicationCard{}}

	if profErr != nil {
		logger.Log.Error("Error fetching profile", "error", profErr)
		view.ProfileError = profileLoadFailedMessage
	} else if profile != nil {
		view.Form = ProfileFormFromRow(profile)
		view.HasProfile = true
	}

	if appsErr != nil {
		logger.Log.Error("Error fetching applications", "error", appsErr)
		view.ApplicationsError = applicationsFailedMessage
	} else {
		for i := range apps {
			view.Applications = append(view.Applications, toApplicationCard(&apps[i]))
		}
	}

	return view, nil
}

// Save upserts the profile of the signed-in user. The row is always keyed by
// the current identity, never by anything the client sent.
func (u *profileUsecase) Save(ctx context.Context, form domain.ProfileForm) (*domain.ProfileForm, error) {
	id, err := u.identity(ctx)
	if err != nil {
		return nil, err
	}

	form.FullName = strings.TrimSpace(form.FullName)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	if err := u.validate.Struct(form); err != nil {
		return nil, apperror.Validation(validation.FieldErrors(err))
	}

	release, ok := u.guard.Acquire("profile:" + id.UserID)
	if !ok {
		u.events.Log(ctx, eventlog.Event{
			Event:        eventlog.EventDuplicateSubmit,
			SubjectType:  "user_id",
			SubjectValue: id.UserID,
			RequestID:    domain.RequestIDFromContext(ctx),
		})
		return nil, apperror.Conflict(inProgressMessage)
	}
	defer release()

	saved, err := u.gw.Profiles.Upsert(ctx, &domain.ProfileUpsert{
		UserID:    id.UserID,
		FullName:  form.FullName,
		Email:     form.Email,
		Phone:     optionalString(form.Phone),
		Location:  optionalString(form.Location),
		Bio:       optionalString(form.Bio),
		Skills:    domain.SplitSkills(form.Skills),
		UpdatedAt: u.now().UTC(),
	})
	if err != nil {
		logger.Log.Error("Error saving profile", "error", err)
		u.events.Log(ctx, eventlog.Event{
			Event:        eventlog.EventWriteRejected,
			SubjectType:  "user_id",
			SubjectValue: id.UserID,
			RequestID:    domain.RequestIDFromContext(ctx),
			Details:      map[string]interface{}{"table": "profiles"},
		})
		return nil, apperror.Write(err, profileSaveFallbackMessage)
	}

	u.events.Log(ctx, eventlog.Event{
		Event:        eventlog.EventProfileSaved,
		SubjectType:  "email",
		SubjectValue: saved.Email,
		RequestID:    domain.RequestIDFromContext(ctx),
		Details:      map[string]interface{}{"skills": len(saved.Skills)},
	})

	hydrated := ProfileFormFromRow(saved)
	return &hydrated, nil
}

// ExportApplications renders the signed-in user's applications as an xlsx workbook
func (u *profileUsecase) ExportApplications(ctx context.Context) ([]byte, string, error) {
	id, err := u.identity(ctx)
	if err != nil {
		return nil, "", err
	}

	apps, err := u.gw.Applications.FetchByUserWithJob(ctx, id.UserID)
	if err != nil {
		return nil, "", apperror.Unavailable(applicationsFailedMessage, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheetName := "Applications"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"JOB TITLE", "COMPANY", "LOCATION", "STATUS", "APPLIED AT"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx := range apps {
		card := toApplicationCard(&apps[rowIdx])
		values := []interface{}{
			derefOr(card.Job.Title, "Job removed"),
			derefOr(card.Job.Company, ""),
			derefOr(card.Job.Location, ""),
			card.StatusLabel,
			card.AppliedAt.Format("2006-01-02 15:04"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range headers {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("applications_%s.xlsx", u.now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

// ProfileFormFromRow maps a stored profile onto the editable form. Every form
// field is assigned here explicitly; skills are joined for the text input.
func ProfileFormFromRow(p *domain.Profile) domain.ProfileForm {
	return domain.ProfileForm{
		FullName: p.FullName,
		Email:    p.Email,
		Phone:    derefOr(p.Phone, ""),
		Location: derefOr(p.Location, ""),
		Bio:      derefOr(p.Bio, ""),
		Skills:   domain.JoinSkills(p.Skills),
	}
}

// statusTier maps an application status to its badge tier. Anything that is
// neither pending nor accepted, including unknown values, is negative.
func statusTier(status string) domain.BadgeTier {
	switch status {
	case domain.ApplicationStatusPending:
		return domain.BadgeTierHighlight
	case domain.ApplicationStatusAccepted:
		return domain.BadgeTierPositive
	default:
		return domain.BadgeTierNegative
	}
}

func statusLabel(status string) string {
	if status == "" {
		return "Unknown"
	}
	first, size := utf8.DecodeRuneInString(status)
	return string(unicode.ToUpper(first)) + status[size:]
}

func toApplicationCard(a *domain.ApplicationWithJob) domain.ApplicationCard {
	return domain.ApplicationCard{
		ID:          a.ID,
		JobID:       a.JobID,
		Status:      a.Status,
		StatusLabel: statusLabel(a.Status),
		Tier:        statusTier(a.Status),
		AppliedAt:   a.CreatedAt,
		Job:         a.Job,
	}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
