package usecase_test

import (
	"context"

	"muto-jobboard/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) FetchActive(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobInsert) (*domain.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.ApplicationInsert) (*domain.Application, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FetchByUserWithJob(ctx context.Context, userID string) ([]domain.ApplicationWithJob, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApplicationWithJob), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, p *domain.ProfileUpsert) (*domain.Profile, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type fixture struct {
	jobs     *MockJobRepo
	apps     *MockApplicationRepo
	profiles *MockProfileRepo
	gw       *domain.Gateway
}

func newFixture() *fixture {
	f := &fixture{
		jobs:     new(MockJobRepo),
		apps:     new(MockApplicationRepo),
		profiles: new(MockProfileRepo),
	}
	f.gw = &domain.Gateway{
		Jobs:         f.jobs,
		Applications: f.apps,
		Profiles:     f.profiles,
		Identity:     domain.ContextIdentity{},
	}
	return f
}

func signedIn(userID, email string) context.Context {
	return domain.WithIdentity(context.Background(), &domain.Identity{UserID: userID, Email: email})
}

func strPtr(s string) *string { return &s }
