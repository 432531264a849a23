package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"todoweb/internal/config"
	"todoweb/internal/constants"
	"todoweb/internal/database"
	"todoweb/internal/handlers"
	"todoweb/internal/middleware"
	"todoweb/internal/repository"
	"todoweb/internal/services"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.LoadHTMLGlob(cfg.TemplateGlob)

	store, err := sessionStore(cfg)
	if err != nil {
		logger.Error("failed to create session store", slog.Any("error", err))
		os.Exit(1)
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Wiring: repositories -> services -> handlers
	db := database.GetDB()
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)

	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo)
	authService := services.NewAuthService(userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService, taskService)
	taskHandler := handlers.NewTaskHandler(taskService, projectService)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/projects/")
	})

	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/signup", authHandler.SignupPage)
	r.POST("/signup", authHandler.Signup)
	r.POST("/logout", authHandler.Logout)

	projects := r.Group("/projects")
	projects.Use(middleware.RequireAuth())
	{
		projects.GET("/", projectHandler.List)
		projects.GET("/all/", projectHandler.All)
		projects.GET("/partial/", projectHandler.ListPartial)
		projects.GET("/create/", projectHandler.CreateForm)
		projects.POST("/create/", projectHandler.Create)
		projects.GET("/:id/", projectHandler.Detail)
		projects.GET("/:id/update/", projectHandler.UpdateForm)
		projects.POST("/:id/update/", projectHandler.Update)
		projects.POST("/:id/delete/", projectHandler.Delete)
		projects.DELETE("/:id/delete/", projectHandler.Delete)
		projects.GET("/:id/tasks/create/", taskHandler.CreateForm)
		projects.POST("/:id/tasks/create/", taskHandler.Create)
	}

	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth())
	{
		tasks.GET("/:id/update/", taskHandler.UpdateForm)
		tasks.POST("/:id/update/", taskHandler.Update)
		tasks.POST("/:id/delete/", taskHandler.Delete)
		tasks.DELETE("/:id/delete/", taskHandler.Delete)
		tasks.POST("/:id/toggle/", taskHandler.Toggle)
	}

	logger.Info("server starting", slog.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func sessionStore(cfg *config.Config) (sessions.Store, error) {
	isProduction := cfg.GinMode == "release"

	opts := sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	}

	if cfg.SessionStore == "redis" {
		store, err := redisStore.NewStore(
			10,
			"tcp",
			cfg.RedisHost+":"+cfg.RedisPort,
			"",
			"",
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, err
		}
		store.Options(opts)
		return store, nil
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(opts)
	return store, nil
}
