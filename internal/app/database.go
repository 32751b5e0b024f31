// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/Audacity88/chatcache/config"
	"github.com/Audacity88/chatcache/internal/circuitbreaker"
	"github.com/Audacity88/chatcache/internal/repository"
	"github.com/Audacity88/chatcache/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	MessageRepo    repository.MessageRepositoryInterface
	ChannelRepo    repository.ChannelRepositoryInterface
	UserRepo       repository.UserRepositoryInterface
	LoggingService service.LoggingService
	Feed           *repository.ChangeFeed

	EntitiesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates required
// repositories and services. Returns nil if the database is disabled or the
// connection fails; the caller then runs cache-only.
func InitializeDatabase(cfg config.DatabaseConfig, feedCfg config.FeedConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	entitiesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-entities",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	messageRepo := repository.NewMessageRepositoryWithCircuitBreaker(repository.NewMessageRepository(db), entitiesCB)
	channelRepo := repository.NewChannelRepositoryWithCircuitBreaker(repository.NewChannelRepository(db), entitiesCB)
	userRepo := repository.NewUserRepositoryWithCircuitBreaker(repository.NewUserRepository(db), entitiesCB)

	var feed *repository.ChangeFeed
	if feedCfg.Enabled {
		feed = repository.NewChangeFeed(db, feedCfg.Buffer)
	}

	return &DatabaseComponents{
		DB:                     db,
		MessageRepo:            messageRepo,
		ChannelRepo:            channelRepo,
		UserRepo:               userRepo,
		LoggingService:         loggingService,
		Feed:                   feed,
		EntitiesCircuitBreaker: entitiesCB,
		LogsCircuitBreaker:     logsCB,
	}
}
