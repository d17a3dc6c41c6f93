package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/benjomoments/studio-api/internal/audit"
	"github.com/benjomoments/studio-api/internal/auth"
	"github.com/benjomoments/studio-api/internal/config"
	"github.com/benjomoments/studio-api/internal/handlers"
	"github.com/benjomoments/studio-api/internal/repository"
	"github.com/benjomoments/studio-api/internal/services"
	xhttp "github.com/benjomoments/studio-api/pkg/http"
	"github.com/benjomoments/studio-api/pkg/logger"
	"github.com/benjomoments/studio-api/pkg/pg"
	"github.com/benjomoments/studio-api/pkg/prom"
	"github.com/benjomoments/studio-api/pkg/redis"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {

	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	s := xhttp.NewServer(xhttp.DefaultServerOption)
	s.Server.ReadBufferSize = 1024 * 16
	s.Server.WriteBufferSize = 1024 * 16
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	redisAdap, err := redis.NewRedisAdapter("default", config.Get().RedisUniversalKeyPrefix, &redis.Options{
		Addrs:      []string{config.Get().RedisAddr},
		ClientName: "default",
		DB:         config.Get().RedisDatabase,
		Username:   config.Get().RedisUsername,
		Password:   config.Get().RedisPassword,
	})
	if err != nil {
		logger.Error("failed connecting to redis", "error", err)
		return
	}

	if config.Get().PromNamespace != "" {
		host, _ := os.Hostname()
		if err := prom.Create(host, config.Get().AppEnv, config.Get().PromNamespace); err != nil {
			logger.Error("failed creating metrics", "error", err)
		}
		if config.Get().PromListenAddr != "" {
			go prom.ListenAndServer(config.Get().PromListenAddr, "/metrics")
		}
	}

	incomeRepo := repository.NewIncomeRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// audit trail runs off the request path
	recorder := audit.NewRecorder(auditRepo, config.Get().AuditQueueSize, config.Get().AuditWorkers)
	go func() {
		if err := recorder.Start(); err != nil {
			logger.Info("audit recorder stopped", "reason", err)
		}
	}()

	sessions := auth.NewSessionStore(redisAdap, config.Get().SessionTTL)
	s.Use(auth.Middleware(sessions))

	// services
	ledgerService := services.NewLedgerService(incomeRepo, expenseRepo, assetRepo, customerRepo)
	billingService := services.NewBillingService(customerRepo, invoiceRepo)
	authService := auth.NewAuthService(userRepo, sessions)
	healthService := services.NewHealthService(db)

	// handlers
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, recorder)
	billingHandler := handlers.NewBillingHandler(billingService, recorder)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(healthService)

	g := s.Router.Group("/api")
	handlers.RegisterHealthRoutes(g, healthHandler)
	handlers.RegisterAuthRoutes(g, authHandler)
	handlers.RegisterLedgerRoutes(g, ledgerHandler)
	handlers.RegisterBillingRoutes(g, billingHandler)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	logger.Info("studio-api started", "version", version, "commit", commit, "built", date)

	<-c
	recorder.Stop()
	s.Shutdown()
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
