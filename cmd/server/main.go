package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"travel-backoffice/config"
	"travel-backoffice/internal/cache"
	"travel-backoffice/internal/database"
	"travel-backoffice/internal/handler"
	"travel-backoffice/internal/queue"
	"travel-backoffice/internal/repository"
	"travel-backoffice/internal/service"
	"travel-backoffice/internal/session"
	"travel-backoffice/internal/upstream"
	"travel-backoffice/internal/worker"
	"travel-backoffice/pkg/logger"
	"travel-backoffice/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.L.Fatal("Failed to load config", zap.Error(err))
	}
	log := logger.WithComponent("main")
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn("Unknown log level, keeping info", zap.String("level", cfg.Log.Level))
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, &cfg.Telemetry)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	instanceID := cfg.Bus.InstanceID
	if instanceID == "" {
		instanceID = uuid.NewString()
	}

	var (
		store         session.Store
		confirmations session.ConfirmationStore
		bus           queue.InvalidationQueue
	)
	switch cfg.Bus.Driver {
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()
		store = cache.NewRedisSessionStore(rdb)
		confirmations = cache.NewRedisConfirmationStore(rdb)
		bus, err = queue.NewRedisStreamInvalidationQueue(rdb, instanceID, &queue.RedisStreamInvalidationQueueConfig{
			ClaimMinIdleTime: cfg.Bus.ClaimMinIdleTime,
			MaxRetryCount:    cfg.Bus.MaxRetryCount,
			MaxLen:           cfg.Bus.MaxLen,
		})
		if err != nil {
			log.Fatal("Failed to initialize invalidation bus", zap.Error(err))
		}
	default:
		store = session.NewMemoryStore()
		confirmations = session.NewMemoryConfirmationStore()
		bus = queue.NewInvalidationQueue(256)
	}

	registry := session.NewRegistry(store, cfg.Session, cfg.Cache)
	go registry.RunPruner(ctx, cfg.Cache.PruneInterval)

	if err := worker.NewInvalidationWorker(registry, bus, instanceID).Start(ctx); err != nil {
		log.Fatal("Failed to start invalidation worker", zap.Error(err))
	}

	client, err := upstream.NewClient(cfg.Upstream)
	if err != nil {
		log.Fatal("Failed to create upstream client", zap.Error(err))
	}

	journal := repository.NewActivityRepository(pool)
	dispatcher := service.NewDispatcher(registry, bus, journal, instanceID)

	authService := service.NewAuthService(client, registry, dispatcher)
	agents := service.NewAgentCatalog(client, dispatcher)
	providers := service.NewProviderCatalog(client, dispatcher)
	users := service.NewUserCatalog(client, dispatcher)
	paymentMethods := service.NewPaymentMethodCatalog(client, dispatcher)
	tickets := service.NewTicketService(client, dispatcher)
	ledgers := service.NewLedgerService(client, dispatcher)
	searches := service.NewSearchService(agents, providers, users, paymentMethods, tickets, ledgers)

	sessions := handler.NewSessions(registry, authService, cfg.Upstream.CookieName)
	deletions := handler.NewDeletions(session.NewConfirmationGate(confirmations, cfg.Session.ConfirmationTTL))
	router := handler.NewRouter(cfg.Telemetry.ServiceName, sessions,
		handler.NewAuthHandler(authService, sessions, cfg.Upstream, cfg.Session),
		handler.NewCatalogHandler(agents, deletions, handler.AgentRoutes),
		handler.NewCatalogHandler(providers, deletions, handler.ProviderRoutes),
		handler.NewCatalogHandler(users, deletions, handler.UserRoutes),
		handler.NewCatalogHandler(paymentMethods, deletions, handler.PaymentMethodRoutes),
		handler.NewTicketHandler(tickets, deletions),
		handler.NewLedgerHandler(ledgers),
		handler.NewSearchHandler(searches),
		handler.NewActivityHandler(service.NewActivityService(journal)),
		deletions,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Info("Gateway listening",
			zap.String("addr", srv.Addr),
			zap.String("instance_id", instanceID),
			zap.String("bus", cfg.Bus.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	registry.CloseAll()
	if err := bus.Close(shutdownCtx); err != nil {
		log.Error("Failed to close invalidation bus", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces", zap.Error(err))
	}
	_ = logger.L.Sync()
}
