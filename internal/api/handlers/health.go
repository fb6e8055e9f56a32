package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/recipeGrab/internal/services/recipe"
	"github.com/denisAlshanov/recipeGrab/internal/services/youtube"
)

const rootMessage = "Recipe API Server is running!"

type HealthHandler struct {
	youtube   youtube.YouTubeClient
	extractor recipe.RecipeExtractor
}

type HealthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Version   string                   `json:"version"`
	Services  map[string]ServiceHealth `json:"services"`
}

type ServiceHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewHealthHandler(youtube youtube.YouTubeClient, extractor recipe.RecipeExtractor) *HealthHandler {
	return &HealthHandler{
		youtube:   youtube,
		extractor: extractor,
	}
}

// Root godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// Health godoc
// @Summary Health check endpoint
// @Description Report which upstream integrations are configured. Video lookups need the YouTube key; recipe extraction degrades without the OpenAI key.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "1.0.0",
		Services: map[string]ServiceHealth{
			"youtube": configuredHealth(h.youtube.Configured(), "unconfigured", "YOUTUBE_API_KEY is not set"),
			"openai":  configuredHealth(h.extractor.Configured(), "degraded", "OPENAI_API_KEY is not set, recipes will not be parsed"),
		},
	}

	if !h.youtube.Configured() {
		response.Status = "degraded"
	}

	c.JSON(http.StatusOK, response)
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func configuredHealth(ok bool, status, reason string) ServiceHealth {
	if ok {
		return ServiceHealth{Status: "healthy"}
	}
	return ServiceHealth{Status: status, Error: reason}
}
