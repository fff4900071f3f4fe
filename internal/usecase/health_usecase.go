package usecase

import (
	"context"
	"sort"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// HealthCheck probes one backing dependency.
type HealthCheck func(ctx context.Context) error

type healthUsecase struct {
	version string
	checks  map[string]HealthCheck
}

// NewHealthUsecase reports "ok" when every check passes and "degraded"
// otherwise. A nil checks map always reports ok.
func NewHealthUsecase(version string, checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{version: version, checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status":  "ok",
		"version": u.version,
	}

	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := u.checks[name](checkCtx)
		cancel()
		if err != nil {
			result[name] = "down"
			result["status"] = "degraded"
			continue
		}
		result[name] = "up"
	}
	return result
}
