package usecase

import (
	"context"
	"strings"
	"time"

	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/logger"
)

const (
	jobsUnavailableMessage = "We couldn't load job listings right now. Please check back later."
	jobsEmptyMessage       = "No jobs found. Check back later for new opportunities."
)

type jobsListingUsecase struct {
	gw  *domain.Gateway
	loc *time.Location
	now func() time.Time
}

// NewJobsListingUsecase creates the listing controller. Deadlines close at
// midnight in loc; nil means UTC.
func NewJobsListingUsecase(gw *domain.Gateway, loc *time.Location) domain.JobsListingUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &jobsListingUsecase{gw: gw, loc: loc, now: time.Now}
}

// Load runs the single listing read and settles the page into populated,
// empty or failed. A failed read is never shown as "no jobs".
func (u *jobsListingUsecase) Load(ctx context.Context, query string) domain.JobsListingView {
	query = strings.TrimSpace(query)
	view := domain.JobsListingView{Query: query, Jobs: []domain.JobCard{}}

	jobs, err := u.gw.Jobs.FetchActive(ctx)
	if err != nil {
		logger.Log.Error("Error fetching jobs", "error", err)
		view.State = domain.PageStateFailed
		view.Message = jobsUnavailableMessage
		return view
	}

	now := u.now().In(u.loc)
	for i := range jobs {
		job := &jobs[i]
		// The store filter already does this; the listing must hold even if it didn't
		if job.Status != domain.JobStatusActive || !matchesQuery(job, query) {
			continue
		}
		view.Jobs = append(view.Jobs, toJobCard(job, now))
	}

	if len(view.Jobs) == 0 {
		view.State = domain.PageStateEmpty
		view.Message = jobsEmptyMessage
		return view
	}
	view.State = domain.PageStatePopulated
	return view
}

// matchesQuery is a case-insensitive substring match on title, company and location
func matchesQuery(job *domain.Job, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{job.Title, job.Company, job.Location} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func toJobCard(job *domain.Job, now time.Time) domain.JobCard {
	card := domain.JobCard{
		ID:        job.ID,
		Title:     job.Title,
		Company:   job.Company,
		Location:  job.Location,
		Type:      job.Type,
		Deadline:  job.Deadline.Format(domain.DateLayout),
		Closed:    job.IsClosed(now),
		ApplyPath: "/jobs/" + job.ID.String() + "/apply",
	}
	if job.SalaryRange != nil && strings.TrimSpace(*job.SalaryRange) != "" {
		card.SalaryRange = job.SalaryRange
	}
	return card
}
