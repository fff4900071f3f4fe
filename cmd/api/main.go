package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"muto-jobboard/config"
	_ "muto-jobboard/docs" // Important for Swagger
	"muto-jobboard/internal/delivery/http/middleware"
	v1 "muto-jobboard/internal/delivery/http/v1"
	"muto-jobboard/internal/domain"
	"muto-jobboard/internal/repository/postgres"
	"muto-jobboard/internal/seed"
	"muto-jobboard/internal/usecase"
	"muto-jobboard/pkg/auth"
	"muto-jobboard/pkg/database"
	"muto-jobboard/pkg/eventlog"
	"muto-jobboard/pkg/logger"
	"muto-jobboard/pkg/redis"
	"muto-jobboard/pkg/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var Version = "dev"

// @title           Muto Consults Job Board API
// @version         1.0
// @description     Job listings, applications, job posting and applicant profiles for the Muto Consults recruitment site.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jobboard",
		Short:         "Muto Consults job board backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context())
		},
	})

	var seedFile string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Post the job listings in a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seedJobs(cmd.Context(), seedFile)
		},
	}
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "jobs.yaml", "Seed file (YAML)")
	cmd.AddCommand(seedCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("jobboard version %s\n", Version)
		},
	})

	return cmd
}

// setup loads config, initialises logging and connects to the database
func setup(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.LogLevel)

	if cfg.DBUrl == "" {
		return nil, nil, errors.New("DATABASE_URL is required")
	}
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return cfg, dbPool, nil
}

func newEventLog(cfg *config.Config) *eventlog.Logger {
	if !cfg.EventLogEnabled {
		return nil
	}
	return eventlog.New(cfg.ServiceName, cfg.Environment)
}

func newGateway(dbPool *pgxpool.Pool) *domain.Gateway {
	return &domain.Gateway{
		Jobs:         postgres.NewJobRepository(dbPool),
		Applications: postgres.NewApplicationRepository(dbPool),
		Profiles:     postgres.NewProfileRepository(dbPool),
		Identity:     domain.ContextIdentity{},
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, dbPool, err := setup(ctx)
	if err != nil {
		return err
	}
	defer dbPool.Close()
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "env", cfg.Environment)

	// Redis is optional: without it rate limits are kept per instance
	var redisClient *goredis.Client
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	events := newEventLog(cfg)
	defer events.Sync()

	gw := newGateway(dbPool)
	validate := validation.New()
	guard := usecase.NewSubmitGuard()

	checks := map[string]usecase.HealthCheck{
		"database": dbPool.Ping,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	var jwksProvider *auth.Provider
	if url := cfg.JWKSURL(); url != "" {
		jwksProvider = auth.NewProvider(url)
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Log.Warn("Unknown TIMEZONE, closing deadlines in UTC", "timezone", cfg.Timezone, "error", err)
	}

	metrics := middleware.NewMetrics("jobboard")
	router := v1.NewRouter(v1.RouterDeps{
		JobsListingUC: usecase.NewJobsListingUsecase(gw, loc),
		ApplyJobUC:    usecase.NewApplyJobUsecase(gw, validate, guard, events),
		PostJobUC:     usecase.NewPostJobUsecase(gw, validate, guard, events),
		ProfileUC:     usecase.NewProfileUsecase(gw, validate, guard, events),
		HealthUC:      usecase.NewHealthUsecase(Version, checks),
		JWKSProvider:  jwksProvider,
		Metrics:       metrics,
		RateLimiter:   middleware.NewRateLimiter(redisClient, events, metrics),
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}

func migrate(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, dbPool, err := setup(ctx)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := postgres.Migrate(ctx, dbPool); err != nil {
		return err
	}
	logger.Log.Info("Migrations applied")
	return nil
}

func seedJobs(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()

	jobs, err := seed.Load(file)
	if err != nil {
		return err
	}

	cfg, dbPool, err := setup(ctx)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	events := newEventLog(cfg)
	defer events.Sync()

	postJob := usecase.NewPostJobUsecase(newGateway(dbPool), validation.New(), usecase.NewSubmitGuard(), events)
	res, err := seed.Run(ctx, postJob, jobs)
	if err != nil {
		return err
	}
	logger.Log.Info("Seed complete", "inserted", res.Inserted, "failed", res.Failed)
	return nil
}
