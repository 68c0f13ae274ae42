package main

import (
	"ceam-backend/controller"
	"ceam-backend/dal"
	"ceam-backend/mailer"
	"ceam-backend/middelware"
	"ceam-backend/models"
	"ceam-backend/repository"
	"ceam-backend/services"
	"ceam-backend/utils"
	"ceam-backend/utils/logger"
	"ceam-backend/worker"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title CEAM Website API
// @version 1.0.0
// @description Backend for the K'Cho Ethnic Association Malaysia (CEAM) website.
// @description Public endpoints serve the contact form, the event catalog and the news catalog.
// @description Admin endpoints need a Bearer token carrying the admin role.

// @contact.name CEAM
// @contact.email contact@ceamalaysia.org

// @host localhost:8081
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Enter 'Bearer' [space] and then your token.
func main() {
	issueToken := flag.String("issue-admin-token", "", "print an admin JWT for the given email and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "lifetime of a token issued with -issue-admin-token")
	flag.Parse()

	Init()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	jwtManager := middelware.NewJWTManager(config, appLogger)

	if *issueToken != "" {
		token, err := jwtManager.GenerateToken(*issueToken, models.AdminRole, *tokenTTL)
		if err != nil {
			log.Fatalf("Failed to issue admin token: %v", err)
		}
		fmt.Println(token)
		return
	}

	appLogger.Debugf("Config Loaded :: %s", utils.PrintPrettyJSON(config))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The delivery ledger is the only DynamoDB consumer
	var db dal.DatabaseClientInterface
	var tables worker.TableAPI
	if config.DeliveryLogEnabled {
		client, err := dal.NewDynamoDBClient(config, appLogger)
		if err != nil {
			log.Fatalf("Failed to create DynamoDB client: %v", err)
		}
		db, tables = client, client
	}

	repo, err := repository.NewRepository(db, config, appLogger)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	transport, err := mailer.NewTransport(ctx, config, appLogger)
	if err != nil {
		log.Fatalf("Failed to create mail transport: %v", err)
	}
	renderer, err := mailer.NewRenderer(mailer.DefaultOrganization)
	if err != nil {
		log.Fatalf("Failed to parse mail templates: %v", err)
	}

	bgWorker, err := worker.NewWorker(config, repo.Catalog, tables, appLogger)
	if err != nil {
		log.Fatalf("Failed to create background worker: %v", err)
	}
	if err := bgWorker.Start(); err != nil {
		log.Fatalf("Failed to start background worker: %v", err)
	}
	defer bgWorker.Stop()

	svc := services.NewService(repo, transport, renderer, bgWorker, appLogger, config)

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	logging := middelware.NewLoggingMiddleware(appLogger, config.BasePath+"/health")
	r.Use(logging.Recovery(), logging.StructuredLogger(), middelware.NewCORSMiddleware(config).CORS())

	controller.NewController(ctx, svc, jwtManager, config, appLogger).RegisterRoutes(r, config.BasePath)

	srv := &http.Server{
		Addr:              net.JoinHostPort(config.AppHost, config.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("%s %s listening on %s", config.AppName, config.AppVersion, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Graceful shutdown failed: %v", err)
	}
}
