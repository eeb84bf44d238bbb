package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/leasing-crm/internal/api/http"
	"github.com/spec-kit/leasing-crm/internal/api/http/handlers"
	"github.com/spec-kit/leasing-crm/internal/auth"
	"github.com/spec-kit/leasing-crm/internal/config"
	"github.com/spec-kit/leasing-crm/internal/events"
	"github.com/spec-kit/leasing-crm/internal/observability"
	"github.com/spec-kit/leasing-crm/internal/persistence"
	"github.com/spec-kit/leasing-crm/internal/repository"
	"github.com/spec-kit/leasing-crm/internal/scheduling"
	"github.com/spec-kit/leasing-crm/internal/service"
	"github.com/spec-kit/leasing-crm/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	teamRepo := repository.NewTeamRepository(pool)
	memberRepo := repository.NewTeamMemberRepository(pool)
	agentRepo := repository.NewAgentRepository(pool)
	eventRepo := repository.NewCalendarEventRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	floatingRepo := repository.NewFloatingAvailabilityRepository(pool)
	programRepo := repository.NewProgramRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	engine := scheduling.NewEngine(
		service.NewEngineDataSource(teamRepo, memberRepo, eventRepo, appointmentRepo, floatingRepo),
		cfg.Availability.SlotDuration(),
	)

	availabilityService := service.NewAvailabilityService(service.AvailabilityDependencies{
		ProgramRepo:  programRepo,
		PropertyRepo: propertyRepo,
		Engine:       engine,
		Cache:        redis.Client,
		CacheTTL:     cfg.Availability.CacheTTL(),
		Logger:       logger,
	})
	bookingService := service.NewBookingService(service.BookingDependencies{
		ProgramRepo:     programRepo,
		PropertyRepo:    propertyRepo,
		AppointmentRepo: appointmentRepo,
		Engine:          engine,
		Dispatcher:      dispatcher,
	})
	floatingService := service.NewFloatingAgentService(service.FloatingAgentDependencies{
		AgentRepo:    agentRepo,
		MemberRepo:   memberRepo,
		FloatingRepo: floatingRepo,
		Dispatcher:   dispatcher,
	})
	calendarEventService := service.NewCalendarEventService(eventRepo, dispatcher)
	authService := service.NewAuthService(*cfg, agentRepo)
	auditService := service.NewAuditService(dispatcher, auditRepo, logger)

	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), agentRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		GuestCard:      handlers.NewGuestCardHandler(availabilityService, bookingService, authService),
		FloatingAgents: handlers.NewFloatingAgentsHandler(floatingService),
		CalendarEvents: handlers.NewCalendarEventsHandler(calendarEventService),
		Agents:         handlers.NewAgentsHandler(authService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
