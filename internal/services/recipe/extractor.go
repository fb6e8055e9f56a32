// Package recipe extracts structured recipes from free-text video
// descriptions with a chat-completion model.
package recipe

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/denisAlshanov/recipeGrab/internal/config"
	"github.com/denisAlshanov/recipeGrab/internal/metrics"
	"github.com/denisAlshanov/recipeGrab/internal/models"
	"github.com/denisAlshanov/recipeGrab/internal/utils"
)

// RecipeExtractor is best effort: Extract never fails, it returns an empty
// recipe instead.
type RecipeExtractor interface {
	Extract(ctx context.Context, description string) models.ParsedRecipe
	Configured() bool
}

// Extractor implements RecipeExtractor on the OpenAI chat completion API.
type Extractor struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewExtractor creates an Extractor. Without an API key it makes no requests.
func NewExtractor(cfg *config.OpenAIConfig) *Extractor {
	e := &Extractor{
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
	if e.model == "" {
		e.model = config.DefaultOpenAIModel
	}
	if e.timeout <= 0 {
		e.timeout = 30 * time.Second
	}
	if cfg.APIKey == "" {
		return e
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	e.client = openai.NewClientWithConfig(clientCfg)

	return e
}

// Configured reports whether an API key is set.
func (e *Extractor) Configured() bool {
	return e.client != nil
}

// Extract asks the model for the recipe in description.
func (e *Extractor) Extract(ctx context.Context, description string) models.ParsedRecipe {
	if e.client == nil {
		metrics.RecordUpstream(metrics.ServiceOpenAI, metrics.OutcomeSkipped, 0)
		return models.EmptyRecipe()
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: description,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: temperature,
	})
	elapsed := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordUpstream(metrics.ServiceOpenAI, metrics.OutcomeError, elapsed)
		utils.LogWarn(ctx, "Recipe extraction request failed", utils.Fields{
			"model": e.model,
			"error": err.Error(),
		})
		return models.EmptyRecipe()
	}

	if len(resp.Choices) == 0 {
		metrics.RecordUpstream(metrics.ServiceOpenAI, metrics.OutcomeInvalid, elapsed)
		utils.LogWarn(ctx, "Recipe extraction returned no choices", utils.Fields{"model": e.model})
		return models.EmptyRecipe()
	}

	content := resp.Choices[0].Message.Content
	parsed, ok := ParseCompletion(content)
	if !ok {
		metrics.RecordUpstream(metrics.ServiceOpenAI, metrics.OutcomeInvalid, elapsed)
		utils.LogWarn(ctx, "Recipe extraction returned invalid JSON", utils.Fields{
			"model":          e.model,
			"content_length": len(content),
		})
		return models.EmptyRecipe()
	}

	metrics.RecordUpstream(metrics.ServiceOpenAI, metrics.OutcomeSuccess, elapsed)
	utils.LogDebug(ctx, "Recipe extracted", utils.Fields{
		"ingredients":  len(parsed.Ingredients),
		"instructions": len(parsed.Instructions),
	})
	return parsed
}
