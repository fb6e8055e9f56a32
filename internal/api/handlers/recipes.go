package handlers

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/recipeGrab/internal/models"
	"github.com/denisAlshanov/recipeGrab/internal/services/recipe"
	"github.com/denisAlshanov/recipeGrab/internal/utils"
)

const (
	savedMessage      = "Recipe saved successfully!"
	emptyListMessage  = "No recipes saved yet. Use POST /api/recipes to save recipes."
	notFoundMessage   = "Recipe not found. This is a placeholder endpoint."
	savedAtTimeLayout = "2006-01-02T15:04:05.000000"
)

// RecipeHandler serves the recipe endpoints. Nothing is persisted: saves are
// acknowledged and logged, reads always come back empty.
type RecipeHandler struct {
	extractor recipe.RecipeExtractor
	now       func() time.Time
}

func NewRecipeHandler(extractor recipe.RecipeExtractor) *RecipeHandler {
	return &RecipeHandler{
		extractor: extractor,
		now:       time.Now,
	}
}

// SaveRecipe godoc
// @Summary Save a recipe from YouTube video data
// @Description Accept a recipe submission and acknowledge it. The submission is not stored. When no parsed recipe is supplied the description is sent for extraction; a blank description yields empty lists.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body models.RecipeSubmission true "Recipe submission"
// @Success 200 {object} models.SaveRecipeResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/recipes [post]
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.RecipeSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, bindingError(err))
		return
	}

	description := *req.Description

	parsed := models.EmptyRecipe()
	switch {
	case req.Parsed != nil:
		parsed = req.Parsed.Normalized()
	case strings.TrimSpace(description) != "":
		parsed = h.extractor.Extract(ctx, description)
	}

	utils.LogInfo(ctx, "Recipe submission received", utils.Fields{
		"video_id":           *req.VideoID,
		"title":              *req.Title,
		"channel":            valueOr(req.ChannelTitle, "Unknown"),
		"published_at":       valueOr(req.PublishedAt, "Unknown"),
		"youtube_url":        *req.YoutubeURL,
		"thumbnail_url":      *req.ThumbnailURL,
		"description_length": utf8.RuneCountInString(description),
		"parsed":             !parsed.IsEmpty(),
	})

	c.JSON(http.StatusOK, models.SaveRecipeResponse{
		Success: true,
		Message: savedMessage,
		Data: models.SavedRecipeData{
			VideoID:           *req.VideoID,
			Title:             *req.Title,
			DescriptionLength: utf8.RuneCountInString(description),
			SavedAt:           h.now().Format(savedAtTimeLayout),
			Parsed:            parsed,
		},
	})
}

// ListRecipes godoc
// @Summary List saved recipes
// @Description Always empty; recipes are not persisted.
// @Tags recipes
// @Produce json
// @Success 200 {object} models.RecipeListResponse
// @Router /api/recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, models.RecipeListResponse{
		Recipes: []models.RecipeSubmission{},
		Message: emptyListMessage,
	})
}

// GetRecipe godoc
// @Summary Get a recipe by ID
// @Description Placeholder; always reports the recipe as not found.
// @Tags recipes
// @Produce json
// @Param recipe_id path string true "Recipe ID"
// @Success 200 {object} models.RecipeLookupResponse
// @Router /api/recipes/{recipe_id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	c.JSON(http.StatusOK, models.RecipeLookupResponse{
		RecipeID: c.Param("recipe_id"),
		Message:  notFoundMessage,
	})
}

// ParseRecipe godoc
// @Summary Extract a recipe from a description
// @Description Send a video description to the completion model and return ingredients and instructions. Returns empty lists when extraction is unavailable or fails.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body models.ParseRecipeRequest true "Video description"
// @Success 200 {object} models.ParseRecipeResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/parse-recipe [post]
func (h *RecipeHandler) ParseRecipe(c *gin.Context) {
	var req models.ParseRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, bindingError(err))
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		errorResponse(c, utils.NewValidationError("description is required", nil))
		return
	}

	c.JSON(http.StatusOK, models.ParseRecipeResponse{
		Success: true,
		Parsed:  h.extractor.Extract(c.Request.Context(), req.Description),
	})
}

func valueOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}
