package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/denisAlshanov/recipeGrab/internal/api/handlers"
	"github.com/denisAlshanov/recipeGrab/internal/api/middleware"
	"github.com/denisAlshanov/recipeGrab/internal/config"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, videoHandler *handlers.VideoHandler, recipeHandler *handlers.RecipeHandler, healthHandler *handlers.HealthHandler) *Router {
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(middleware.MetricsMiddleware())

	// Health and operational endpoints
	engine.GET("/", healthHandler.Root)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/live", healthHandler.Liveness)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group("/api")
	{
		api.POST("/fetch-video", videoHandler.FetchVideo)    // /api/fetch-video
		api.POST("/parse-recipe", recipeHandler.ParseRecipe) // /api/parse-recipe

		recipes := api.Group("/recipes")
		{
			recipes.POST("", recipeHandler.SaveRecipe)          // /api/recipes
			recipes.GET("", recipeHandler.ListRecipes)          // /api/recipes
			recipes.GET("/:recipe_id", recipeHandler.GetRecipe) // /api/recipes/{recipe_id}
		}
	}

	return &Router{
		engine: engine,
		config: cfg,
	}
}

// Server wraps the engine in an http.Server so the caller can shut it down.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:         r.config.Addr(),
		Handler:      r.engine,
		ReadTimeout:  r.config.Server.ReadTimeout,
		WriteTimeout: r.config.Server.WriteTimeout,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
