package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackathon_judging_backend/internal/config"
	"hackathon_judging_backend/internal/controller"
	"hackathon_judging_backend/internal/repository"
	"hackathon_judging_backend/internal/service"
	"hackathon_judging_backend/pkg/database"
	"hackathon_judging_backend/pkg/logger"
	"hackathon_judging_backend/pkg/monitoring"
	"hackathon_judging_backend/pkg/security"
	"hackathon_judging_backend/pkg/tracing"

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
	hackathon *repository.HackathonRepository
	team      *repository.TeamRepository
	criterion *repository.CriterionRepository
	judge     *repository.JudgeRepository
	score     *repository.ScoreRepository
	snapshot  *repository.SnapshotRepository
}

type services struct {
	storage     *service.StorageService
	evaluation  *service.EvaluationService
	aggregation *service.AggregationService
	ranking     *service.RankingService
	results     *service.ResultsService
	activity    *service.JudgeActivityService
	snapshot    *service.SnapshotService
}

type controllers struct {
	evaluation *controller.EvaluationController
	results    *controller.ResultsController
	snapshot   *controller.SnapshotController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		hackathon: repository.NewHackathonRepository(db),
		team:      repository.NewTeamRepository(db),
		criterion: repository.NewCriterionRepository(db),
		judge:     repository.NewJudgeRepository(db),
		score:     repository.NewScoreRepository(db),
		snapshot:  repository.NewSnapshotRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.evaluation = service.NewEvaluationService(repos.hackathon, repos.judge, repos.team, repos.criterion, repos.score)
	s.aggregation = service.NewAggregationService(repos.team, repos.score)
	s.ranking = service.NewRankingService(cfg.Evaluation.WinnerCount)
	s.results = service.NewResultsService(repos.hackathon, repos.judge, repos.criterion, repos.score, s.aggregation, s.ranking)
	s.activity = service.NewJudgeActivityService(repos.judge, repos.team, repos.score)
	s.snapshot = service.NewSnapshotService(repos.snapshot, s.results, rdb, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		evaluation: controller.NewEvaluationController(s.evaluation),
		results:    controller.NewResultsController(s.results, s.activity),
		snapshot:   controller.NewSnapshotController(s.snapshot),
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
		if _, err := tracing.InitTracer("hackathon-judging", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
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
