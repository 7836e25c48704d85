package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "formbuilder/docs"
	"formbuilder/src/config"
	"formbuilder/src/controllers"
	"formbuilder/src/database"
	"formbuilder/src/jobs"
	"formbuilder/src/logger"
	"formbuilder/src/middleware"
	"formbuilder/src/routes"
	"formbuilder/src/seeder"
	"formbuilder/src/services/forms"
	"formbuilder/src/services/responses"
	"formbuilder/src/services/stats"
	"formbuilder/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// @title        Form Builder API
// @version      1.0
// @description  Create forms, fetch them for respondents and store submitted responses.
// @BasePath     /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// เชื่อมต่อกับ MongoDB
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = database.ConnectMongoDB(connectCtx, cfg.MongoURI, cfg.MongoDB, zlog)
	cancel()
	if err != nil {
		zlog.Fatal("Error connecting to the database", zap.Error(err))
	}

	// Redis เป็น optional: ไม่มีก็ปิด cache และ background jobs
	if err := database.InitRedis(ctx, cfg.RedisURI); err != nil {
		zlog.Warn("Redis unavailable, cache and stats disabled", zap.Error(err))
	}
	database.InitAsynq(zlog)

	statsSvc := stats.NewService(stats.NewMongoStore(database.FormStatsCollection))

	var cache forms.Cache
	var notifier responses.Notifier
	var worker *asynq.Server
	if database.RedisClient != nil {
		cache = forms.NewRedisCache(database.RedisClient, cfg.FormCacheTTL)
	}
	if database.AsynqClient != nil {
		notifier = jobs.NewEnqueuer(database.AsynqClient)
		worker = jobs.NewServer(database.RedisURI, zlog)
		if err := worker.Start(jobs.NewServeMux(statsSvc, zlog)); err != nil {
			zlog.Fatal("Error starting worker", zap.Error(err))
		}
	}

	formSvc := forms.NewService(forms.NewMongoStore(database.FormCollection), cache, zlog)
	responseSvc := responses.NewService(responses.NewMongoStore(database.ResponseCollection), notifier, zlog)

	if cfg.SeedFile != "" {
		seed(ctx, cfg.SeedFile, formSvc, responseSvc, zlog)
	}

	// ไม่มี worker ก็ไม่มีใครอัปเดต stats
	var statsHandler controllers.StatsService
	if worker != nil {
		statsHandler = statsSvc
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          utils.ErrorHandler,
	})

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))
	// recover sits inside the access log so panics still get a 500 log line
	app.Use(middleware.RequestLogger(zlog))
	app.Use(recover.New())

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Handlers{
		Forms:     controllers.NewFormController(formSvc, statsHandler, cfg.RequestTimeout),
		Responses: controllers.NewResponseController(responseSvc, cfg.RequestTimeout),
	})

	go func() {
		<-ctx.Done()
		zlog.Info("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Warn("server shutdown", zap.Error(err))
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	zlog.Info("Server is running", zap.String("port", cfg.AppURI))
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		zlog.Error("server stopped", zap.Error(err))
	}

	if worker != nil {
		worker.Shutdown()
	}
	if database.AsynqClient != nil {
		_ = database.AsynqClient.Close()
	}
	if database.RedisClient != nil {
		_ = database.RedisClient.Close()
	}
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.DisconnectMongoDB(closeCtx); err != nil {
		zlog.Warn("mongodb disconnect", zap.Error(err))
	}
}

func seed(ctx context.Context, path string, formSvc *forms.Service, responseSvc *responses.Service, log *zap.Logger) {
	defs, err := seeder.LoadDefinitions(path)
	if err != nil {
		log.Warn("seed file skipped", zap.String("path", path), zap.Error(err))
		return
	}
	seeded, err := seeder.New(formSvc, formSvc, responseSvc, log).SeedForms(ctx, defs)
	if err != nil {
		log.Warn("seeding incomplete", zap.Error(err))
	}
	for _, f := range seeded {
		log.Info("seeded form available", zap.String("title", f.Title), zap.String("preview", f.PreviewLink))
	}
	log.Info("seeding done", zap.Int("forms", len(seeded)))
}
