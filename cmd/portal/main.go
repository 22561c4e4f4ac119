package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yashpatel/fileportal/internal/pkg/config"
	"github.com/yashpatel/fileportal/internal/pkg/database"
	"github.com/yashpatel/fileportal/internal/pkg/health"
	httpclient "github.com/yashpatel/fileportal/internal/pkg/http"
	"github.com/yashpatel/fileportal/internal/pkg/logger"
	"github.com/yashpatel/fileportal/internal/pkg/middleware"
	"github.com/yashpatel/fileportal/internal/pkg/newrelic"
	"github.com/yashpatel/fileportal/internal/pkg/server"
	"github.com/yashpatel/fileportal/services/portal"
	"github.com/yashpatel/fileportal/services/portal/gateway"
	"github.com/yashpatel/fileportal/services/portal/handler"
	portalhttp "github.com/yashpatel/fileportal/services/portal/handler/http"
	"github.com/yashpatel/fileportal/services/portal/repository"
	"github.com/yashpatel/fileportal/services/portal/usecase"
)

const serviceName = "portal"

func main() {
	cfg := config.InitConfig(".env")

	nrApp := newrelic.InitNewRelic(cfg)

	zapLogger, err := logger.NewZapLogger(cfg.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// OTP storage: Redis when configured, in-process memory otherwise.
	// Outside local OTP mode the backend owns codes and no store is used.
	otpTTL := time.Duration(cfg.OTP.TTLMinutes) * time.Minute
	var otpRepo portal.OTPRepo
	if cfg.OTP.LocalMode && cfg.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		defer redisClient.Close()
		otpRepo = repository.NewRedisOTPRepo(redisClient, otpTTL)
	} else {
		otpRepo = repository.NewMemoryOTPRepo(otpTTL)
	}

	backendGW := gateway.NewBackendClient(cfg, httpclient.NewClient(cfg.Backend))
	portalUC := usecase.NewPortalUC(cfg, otpRepo, backendGW)

	authHandler := portalhttp.NewAuthHandler(portalUC, cfg)
	fileHandler := portalhttp.NewFileHandler(portalUC)
	userHandler := portalhttp.NewUserHandler(portalUC)
	accountHandler := portalhttp.NewAccountHandler(portalUC)
	h := handler.NewHandler(authHandler, fileHandler, userHandler, accountHandler, portalUC, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(newrelic.Middleware(nrApp))
	}

	health.RegisterHealthEndpoints(e, serviceName)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
