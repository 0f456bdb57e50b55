package main

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	redisout "dispatch/internal/adapters/out/redis"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/logger"
	"dispatch/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// A missing .env is fine; the environment may be set by the platform.
	_ = godotenv.Load(".env")

	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Error(context.Background(), "dispatch stopped with error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cmd.Config, log *logger.Logger) error {
	dbCfg := postgres.Config{
		DSN:             cfg.DB.DSN,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
	}

	gormDB, err := postgres.Open(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() { _ = postgres.Close(gormDB) }()

	if cfg.App.AutoMigrate {
		if err = postgres.Migrate(gormDB); err != nil {
			return fmt.Errorf("migrating schema: %w", err)
		}
		log.Info(ctx, "schema migrated")
	}

	reader, err := postgres.OpenReader(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := cmd.NewCompositionRoot(gormDB, reader, cmd.SystemClock{Location: cfg.App.BOLLocation()})

	if cfg.Jobs.Enabled {
		stopJobs, err := startJobs(ctx, cfg, app, log, metrics.NewJobMetrics(reg))
		if err != nil {
			return err
		}
		defer stopJobs()
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:             app.CreateCreateOrderCommandHandler(),
		CompleteOrder:           app.CreateCompleteOrderCommandHandler(),
		CreateDraftTruckload:    app.CreateCreateDraftTruckloadCommandHandler(),
		AssignLeg:               app.CreateAssignLegCommandHandler(),
		UnassignLeg:             app.CreateUnassignLegCommandHandler(),
		SetLoadValueExclusion:   app.CreateSetLoadValueExclusionCommandHandler(),
		ReorderStops:            app.CreateReorderStopsCommandHandler(),
		PromoteTruckload:        app.CreatePromoteTruckloadCommandHandler(),
		CompleteTruckload:       app.CreateCompleteTruckloadCommandHandler(),
		UncompleteTruckload:     app.CreateUncompleteTruckloadCommandHandler(),
		GetTruckloadStops:       app.CreateGetTruckloadStopsQueryHandler(),
		ListSplitLoadDeductions: app.CreateListSplitLoadDeductionsQueryHandler(),
		PeekNextBOL:             app.CreatePeekNextBOLQueryHandler(),
	})

	e := httpin.NewEcho(server, httpin.Options{
		Session:     httpin.SessionConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer},
		Logger:      log.Component("http"),
		Metrics:     metrics.NewHTTPMetrics(reg),
		Gatherer:    reg,
		HealthCheck: reader.PingContext,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info(log.WithField(ctx, "port", cfg.App.HTTPPort), "http server listening")
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.App.HTTPPort)); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func startJobs(
	ctx context.Context,
	cfg cmd.Config,
	app cmd.CompositionRoot,
	log *logger.Logger,
	jobMetrics *metrics.JobMetrics,
) (func(), error) {
	var lease jobs.Lease
	closeLease := func() {}
	if cfg.Redis.Enabled() {
		client, err := redisout.Open(ctx, redisout.Config{
			URL:      cfg.Redis.URL,
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, err
		}
		closeLease = func() { _ = client.Close() }
		hostname, _ := os.Hostname()
		lease = redisout.NewLease(client, fmt.Sprintf("%s-%d", hostname, os.Getpid()))
	}

	opts := func(spec string) jobs.Options {
		return jobs.Options{
			Spec:     spec,
			Lease:    lease,
			LeaseTTL: cfg.Jobs.LeaseTTL,
			Timeout:  cfg.Jobs.Timeout,
			Metrics:  jobMetrics,
			Logger:   log,
		}
	}

	jobManager := jobs.NewJobManager(
		jobs.NewStopSequenceAuditJob(app.CreateFindSequenceGapsQueryHandler(), opts(cfg.Jobs.StopSequenceSpec)),
		jobs.NewOrderDriftAuditJob(app.CreateFindOrderDriftQueryHandler(), opts(cfg.Jobs.OrderDriftSpec)),
	)
	if err := jobManager.StartAll(); err != nil {
		closeLease()
		return nil, err
	}
	return func() {
		jobManager.StopAll()
		closeLease()
	}, nil
}
