package models

// VideoMetadata is the normalized public metadata of a single video.
type VideoMetadata struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// ParsedRecipe is the structured recipe extracted from a video description.
// Both slices are always non-nil so they encode as [] rather than null.
type ParsedRecipe struct {
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

func EmptyRecipe() ParsedRecipe {
	return ParsedRecipe{
		Ingredients:  []string{},
		Instructions: []string{},
	}
}

// Normalized replaces nil slices with empty ones.
func (r ParsedRecipe) Normalized() ParsedRecipe {
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
	return r
}

func (r ParsedRecipe) IsEmpty() bool {
	return len(r.Ingredients) == 0 && len(r.Instructions) == 0
}

type FetchVideoRequest struct {
	YoutubeURL string `json:"youtubeUrl" binding:"required"`
}

type FetchVideoResponse struct {
	Success bool `json:"success"`
	VideoMetadata
}

// RecipeSubmission is what a client sends to save a recipe. It is echoed
// back in summarized form and never stored. The five core keys must be
// present but may be empty strings, hence the pointers.
type RecipeSubmission struct {
	VideoID      *string       `json:"videoId" binding:"required"`
	Title        *string       `json:"title" binding:"required"`
	Description  *string       `json:"description" binding:"required"`
	ThumbnailURL *string       `json:"thumbnailUrl" binding:"required"`
	YoutubeURL   *string       `json:"youtubeUrl" binding:"required"`
	ChannelTitle *string       `json:"channelTitle,omitempty"`
	PublishedAt  *string       `json:"publishedAt,omitempty"`
	Parsed       *ParsedRecipe `json:"parsed,omitempty"`
}

type SaveRecipeResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    SavedRecipeData `json:"data"`
}

type SavedRecipeData struct {
	VideoID           string       `json:"videoId"`
	Title             string       `json:"title"`
	DescriptionLength int          `json:"description_length"`
	SavedAt           string       `json:"saved_at"`
	Parsed            ParsedRecipe `json:"parsed"`
}

type RecipeListResponse struct {
	Recipes []RecipeSubmission `json:"recipes"`
	Message string             `json:"message"`
}

type RecipeLookupResponse struct {
	RecipeID string `json:"recipe_id"`
	Message  string `json:"message"`
}

type ParseRecipeRequest struct {
	Description string `json:"description" binding:"required"`
}

type ParseRecipeResponse struct {
	Success bool         `json:"success"`
	Parsed  ParsedRecipe `json:"parsed"`
}
