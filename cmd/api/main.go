package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/app"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/config"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/database"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/engine"
	apphttp "github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/handlers"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/metrics"
	httpmw "github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/middleware"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/http/response"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/identity"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/locker"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/observability"
	mongorepo "github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/repository/mongo"
	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/scheduler"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.JSONLogs, cfg.Debug)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	mongoClient, err := database.NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	db := mongoClient.Database(cfg.MongoDatabase)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}

	redisClient, err := database.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal(err)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	userRepo := mongorepo.NewUserRepository(db)
	studentRepo := mongorepo.NewStudentProfileRepository(db)
	institutionRepo := mongorepo.NewInstitutionRepository(db)
	courseRepo := mongorepo.NewCourseRepository(db)
	applicationRepo := mongorepo.NewApplicationRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)
	jobApplicationRepo := mongorepo.NewJobApplicationRepository(db)
	transcriptRepo := mongorepo.NewTranscriptRepository(db)
	notificationRepo := mongorepo.NewNotificationRepository(db)

	eng := engine.New(engine.Config{
		AcademicWeight:           cfg.AcademicWeight,
		CertificateWeight:        cfg.CertificateWeight,
		ExtraCertificateBonus:    cfg.ExtraCertificateBonus,
		ExtraCertificateBonusCap: cfg.ExtraCertificateBonusCap,
		ExperienceWeight:         cfg.ExperienceWeight,
		ExperienceCapYears:       cfg.ExperienceCapYears,
		InstitutionLimit:         cfg.InstitutionLimit,
	})

	var locks locker.Locker
	var limiter httpmw.Limiter
	if redisClient != nil {
		locks = locker.NewRedisLocker(redisClient)
		limiter = httpmw.NewRedisLimiter(redisClient)
		logger.Info("using redis for locking and rate limiting")
	} else {
		locks = locker.NewMemoryLocker()
		limiter = httpmw.NewRateLimiter()
		logger.Warn("redis not configured, using in-process locking and rate limiting")
	}

	idp := identity.NewProvider(cfg.JWTSecret, cfg.JWTIssuer, cfg.VerificationURL, userRepo)

	profileService := app.NewProfileService(studentRepo)
	transcriptService := app.NewTranscriptService(transcriptRepo)
	catalogService := app.NewCatalogService(institutionRepo, courseRepo)
	applicationService := app.NewApplicationService(applicationRepo, courseRepo, institutionRepo, eng, locks, notificationRepo, logger, cfg.LockTTL)
	jobService := app.NewJobService(jobRepo, studentRepo, transcriptRepo, notificationRepo, eng, logger, cfg.FanoutPageSize)
	jobApplicationService := app.NewJobApplicationService(jobApplicationRepo, jobRepo, studentRepo, transcriptRepo, notificationRepo, eng, logger)
	notificationService := app.NewNotificationService(notificationRepo)
	reportService := app.NewReportService(applicationRepo, jobRepo, transcriptRepo, notificationRepo)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		ProfileHandler:        handlers.NewProfileHandler(profileService),
		TranscriptHandler:     handlers.NewTranscriptHandler(transcriptService),
		ApplicationHandler:    handlers.NewApplicationHandler(applicationService),
		JobHandler:            handlers.NewJobHandler(jobService),
		JobApplicationHandler: handlers.NewJobApplicationHandler(jobApplicationService),
		CatalogHandler:        handlers.NewCatalogHandler(catalogService),
		NotificationHandler:   handlers.NewNotificationHandler(notificationService),
		ReportHandler:         handlers.NewReportHandler(reportService),
		MetricsHandler:        handlers.NewMetricsHandler(collector),
		AuthMiddleware:        httpmw.NewAuthMiddleware(idp),
		Metrics:               collector,
		Limiter:               limiter,
		Logger:                logger,
		RequestTimeout:        cfg.RequestTimeout,
	})

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	})

	sweeper := scheduler.New(jobService, logger, cfg.JobSweepSpec)
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer sweeper.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      corsWrapper.Handler(router),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
