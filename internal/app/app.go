package app

import (
	"context"
	"devquiz_backend/internal/config"
	"devquiz_backend/internal/controller"
	"devquiz_backend/internal/repository"
	"devquiz_backend/internal/service"
	"devquiz_backend/pkg/configwatcher"
	"devquiz_backend/pkg/database"
	"devquiz_backend/pkg/logger"
	"devquiz_backend/pkg/monitoring"
	"devquiz_backend/pkg/security"
	"devquiz_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	position   *repository.PositionRepository
	question   *repository.QuestionRepository
	quiz       *repository.QuizRepository
	assignment *repository.AssignmentRepository
	analytics  *repository.AnalyticsRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	storage    *service.StorageService
	position   *service.PositionService
	question   *service.QuestionService
	quiz       *service.QuizService
	assignment *service.AssignmentService
	analytics  *service.AnalyticsService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	position   *controller.PositionController
	question   *controller.QuestionController
	quiz       *controller.QuizController
	assignment *controller.AssignmentController
	analytics  *controller.AnalyticsController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		position:   repository.NewPositionRepository(db),
		question:   repository.NewQuestionRepository(db),
		quiz:       repository.NewQuizRepository(db),
		assignment: repository.NewAssignmentRepository(db),
		analytics:  repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.position = service.NewPositionService(repos.position)
	s.question = service.NewQuestionService(repos.question, s.storage)
	s.quiz = service.NewQuizService(repos.quiz, repos.question)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.question)
	s.analytics = service.NewAnalyticsService(repos.analytics, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user, s.storage),
		position:   controller.NewPositionController(s.position),
		question:   controller.NewQuestionController(s.question),
		quiz:       controller.NewQuizController(s.quiz),
		assignment: controller.NewAssignmentController(s.assignment),
		analytics:  controller.NewAnalyticsController(s.analytics),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("devquiz-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// reloadConfig applies the settings that can change while the server is
// running. Ports, routes and connection pools are fixed at startup and
// need a restart.
func (a *App) reloadConfig(next *config.Config) {
	logger.SetMode(next.Server.Mode)
	logger.Log.Info("Configuration reloaded",
		zap.String("mode", next.Server.Mode))
}

func (a *App) Run() {
	go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), a.reloadConfig)

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
