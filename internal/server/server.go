package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todoapp/internal/ai"
	"todoapp/internal/config"
	"todoapp/internal/handler"
	"todoapp/internal/middleware"
	"todoapp/internal/model"
	"todoapp/internal/monitoring"
	"todoapp/internal/repository"
	"todoapp/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const aiRateBurst = 3

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("✅ Connected to database")

	// Setup Gin
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(monitoring.MetricsMiddleware())
	r.Use(cors.New(corsConfig(cfg)))

	// Initialize repositories and services
	todoRepo := repository.NewTodoRepository(db)
	todoService := service.NewTodoService(todoRepo)
	aiService := ai.NewService(ai.BuildProviders(cfg),
		ai.WithAttemptTimeout(cfg.AITimeout()),
		ai.WithMaxRetries(uint64(cfg.AIMaxRetries)),
	)

	// Initialize handlers
	todoHandler := handler.NewTodoHandler(todoService)
	aiHandler := handler.NewAIHandler(aiService, todoService)
	healthHandler := handler.NewHealthHandler(db)

	// Service routes
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", monitoring.MetricsHandler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Todo routes
	todos := r.Group("/todos")
	{
		todos.GET("", todoHandler.GetAll)
		todos.POST("", todoHandler.Create)
		todos.GET("/completed", todoHandler.GetCompleted)
		todos.GET("/priority/:level", todoHandler.GetByPriority)
		todos.GET("/:id", todoHandler.GetByID)
		todos.PUT("/:id", todoHandler.Update)
		todos.DELETE("/:id", todoHandler.Delete)
		todos.POST("/:id/toggle", todoHandler.Toggle)

		// AI generation is the only route with an upstream cost, so it
		// carries its own rate limit.
		todos.POST("/ai-generate",
			middleware.RateLimiter(middleware.PerMinute(cfg.AIRatePerMin), aiRateBurst),
			aiHandler.Generate,
		)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

// openDatabase connects to postgres when DATABASE_URL is set and falls
// back to a local sqlite file otherwise. Postgres schemas are managed
// by versioned migrations, the sqlite store auto-migrates.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		if err := repository.RunMigrations(db, repository.DefaultMigrationConfig()); err != nil {
			return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&model.Todo{}); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate sqlite store: %w", err)
	}
	return db, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	conf := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			// Credentials cannot be combined with a wildcard origin.
			conf.AllowOrigins = nil
			conf.AllowAllOrigins = true
			conf.AllowCredentials = false
			break
		}
	}
	return conf
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		log.Printf("📊 Metrics available at http://localhost:%s/metrics\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
