package recipe

import (
	"encoding/json"
	"strings"

	"github.com/denisAlshanov/recipeGrab/internal/models"
)

// ParseCompletion turns raw completion content into a recipe. Content that is
// not a JSON object, even after repair, yields ok=false and an empty recipe.
func ParseCompletion(content string) (models.ParsedRecipe, bool) {
	var fields map[string]json.RawMessage
	if !decodeObject(content, &fields) {
		return models.EmptyRecipe(), false
	}

	return models.ParsedRecipe{
		Ingredients:  stringList(fields["ingredients"]),
		Instructions: stringList(fields["instructions"]),
	}, true
}

// decodeObject tries the content as-is, then without markdown fences, then
// the outermost brace-delimited span.
func decodeObject(content string, v any) bool {
	candidates := []string{content, stripCodeFences(content)}
	if span, ok := outerObject(content); ok {
		candidates = append(candidates, span)
	}

	for _, candidate := range candidates {
		if err := json.Unmarshal([]byte(candidate), v); err == nil {
			return true
		}
	}
	return false
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func outerObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// stringList keeps the string items of a JSON array. Anything that is not an
// array becomes an empty list.
func stringList(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}

	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
