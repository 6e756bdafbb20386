package cmd

import (
	"log/slog"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/redis/journeycache"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	journeys   *journeycache.Cache
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. A nil redisClient disables the
// journey cache.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	var journeys *journeycache.Cache
	if redisClient != nil {
		journeys = journeycache.NewCache(redisClient, configs.JourneyCacheTTL)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		journeys:   journeys,
		logger:     logger,
	}
}

func (c *CompositionRoot) JourneyCache() queries.JourneyCache {
	if c.journeys == nil {
		return queries.NoopJourneyCache{}
	}
	return c.journeys
}

func (c *CompositionRoot) JourneyInvalidator() commands.JourneyInvalidator {
	if c.journeys == nil {
		return commands.NoopJourneyInvalidator{}
	}
	return c.journeys
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.JourneyInvalidator(), c.logger)
}

func (c *CompositionRoot) CreateAppendTraceabilityRecordCommandHandler() commands.AppendTraceabilityRecordCommandHandler {
	var f commands.TraceabilityUoWFactory = FuncTraceabilityUoWFactory(func() commands.TraceabilityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTraceabilityRecordCommandHandler(f, c.JourneyInvalidator(), c.logger)
}

func (c *CompositionRoot) CreateGetProductJourneyQueryHandler() queries.GetProductJourneyQueryHandler {
	return queries.NewGetProductJourneyQueryHandler(c.gormDB, c.JourneyCache(), c.logger)
}

func (c *CompositionRoot) CreateGetLedgerDiscrepanciesQueryHandler() queries.GetLedgerDiscrepanciesQueryHandler {
	return queries.NewGetLedgerDiscrepanciesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetLedgerDiscrepanciesQueryHandler(), c.configs.ReconciliationSchedule, c.logger)
}

func (c *CompositionRoot) CreateAuthenticator() (*httpadapter.Authenticator, error) {
	return httpadapter.NewAuthenticator(c.configs.JWTSecret, c.configs.JWTIssuer)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateTransitionOrderCommandHandler(),
		c.CreateAppendTraceabilityRecordCommandHandler(),
		c.CreateGetProductJourneyQueryHandler(),
		c.logger,
	)
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncTraceabilityUoWFactory func() commands.TraceabilityUoW

func (f FuncTraceabilityUoWFactory) Create() commands.TraceabilityUoW {
	return f()
}
