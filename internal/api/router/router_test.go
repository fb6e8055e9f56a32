package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisAlshanov/recipeGrab/internal/api/handlers"
	"github.com/denisAlshanov/recipeGrab/internal/config"
	"github.com/denisAlshanov/recipeGrab/internal/services/recipe"
	"github.com/denisAlshanov/recipeGrab/internal/services/youtube"
)

type upstream struct {
	server *httptest.Server
	calls  atomic.Int32
}

func newUpstream(t *testing.T, status int, body string) *upstream {
	t.Helper()
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(u.server.Close)
	return u
}

func completion(content string) string {
	encoded, _ := json.Marshal(content)
	return fmt.Sprintf(`{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":%s}}]}`, encoded)
}

type testEnv struct {
	engine  *gin.Engine
	youtube *upstream
	openai  *upstream
}

type envOptions struct {
	youtubeKey    string
	youtubeStatus int
	youtubeBody   string
	openaiKey     string
	openaiBody    string
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if opts.youtubeStatus == 0 {
		opts.youtubeStatus = http.StatusOK
	}
	if opts.youtubeBody == "" {
		opts.youtubeBody = `{"items":[]}`
	}
	if opts.openaiBody == "" {
		opts.openaiBody = completion(`{"ingredients":[],"instructions":[]}`)
	}

	yt := newUpstream(t, opts.youtubeStatus, opts.youtubeBody)
	oa := newUpstream(t, http.StatusOK, opts.openaiBody)

	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		YouTube: config.YouTubeConfig{APIKey: opts.youtubeKey, Endpoint: yt.server.URL + "/"},
		OpenAI: config.OpenAIConfig{
			APIKey:  opts.openaiKey,
			Model:   "gpt-4o-mini",
			BaseURL: oa.server.URL + "/v1",
			Timeout: 2 * time.Second,
		},
		CORS: config.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		},
	}

	ytClient, err := youtube.NewClient(context.Background(), &cfg.YouTube)
	require.NoError(t, err)
	extractor := recipe.NewExtractor(&cfg.OpenAI)

	r := NewRouter(cfg,
		handlers.NewVideoHandler(ytClient),
		handlers.NewRecipeHandler(extractor),
		handlers.NewHealthHandler(ytClient, extractor),
	)

	return &testEnv{engine: r.Engine(), youtube: yt, openai: oa}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func errorCode(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected error object, got %v", body)
	return errObj["code"].(string)
}

func TestRoot(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w, body := env.do(t, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recipe API Server is running!", body["message"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestFetchVideoEndToEnd(t *testing.T) {
	env := newTestEnv(t, envOptions{
		youtubeKey: "yt-key",
		youtubeBody: `{"items":[{"id":"dQw4w9WgXcQ","snippet":{
			"title":"Test Video",
			"description":"2 eggs",
			"channelTitle":"Kitchen",
			"publishedAt":"2009-10-25T06:57:33Z"}}]}`,
	})

	w, body := env.do(t, http.MethodPost, "/api/fetch-video",
		`{"youtubeUrl": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "dQw4w9WgXcQ", body["videoId"])
	assert.Equal(t, "Test Video", body["title"])
	assert.Equal(t, "2 eggs", body["description"])
	assert.Equal(t, "Kitchen", body["channelTitle"])
	assert.Equal(t, "2009-10-25T06:57:33Z", body["publishedAt"])
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", body["thumbnailUrl"])
	assert.Equal(t, int32(1), env.youtube.calls.Load())
}

func TestFetchVideoErrors(t *testing.T) {
	testCases := []struct {
		name       string
		opts       envOptions
		body       string
		wantStatus int
		wantCode   string
		wantCalls  int32
	}{
		{
			name:       "missing url",
			opts:       envOptions{youtubeKey: "yt-key"},
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed body",
			opts:       envOptions{youtubeKey: "yt-key"},
			body:       `{"youtubeUrl":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "invalid url",
			opts:       envOptions{youtubeKey: "yt-key"},
			body:       `{"youtubeUrl":"https://vimeo.com/12345"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_LINK_FORMAT",
		},
		{
			name:       "api key unset",
			opts:       envOptions{},
			body:       `{"youtubeUrl":"https://youtu.be/dQw4w9WgXcQ"}`,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "CONFIGURATION_ERROR",
		},
		{
			name:       "no items",
			opts:       envOptions{youtubeKey: "yt-key", youtubeBody: `{"items":[]}`},
			body:       `{"youtubeUrl":"https://youtu.be/dQw4w9WgXcQ"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "VIDEO_NOT_FOUND",
			wantCalls:  1,
		},
		{
			name: "quota exceeded",
			opts: envOptions{
				youtubeKey:    "yt-key",
				youtubeStatus: http.StatusForbidden,
				youtubeBody:   `{"error":{"code":403,"message":"quotaExceeded"}}`,
			},
			body:       `{"youtubeUrl":"https://youtu.be/dQw4w9WgXcQ"}`,
			wantStatus: http.StatusForbidden,
			wantCode:   "QUOTA_OR_AUTH_ERROR",
			wantCalls:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, tc.opts)

			w, body := env.do(t, http.MethodPost, "/api/fetch-video", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantCode, errorCode(t, body))
			assert.Equal(t, tc.wantCalls, env.youtube.calls.Load())
		})
	}
}

func TestParseRecipeEndToEnd(t *testing.T) {
	env := newTestEnv(t, envOptions{
		openaiKey:  "oa-key",
		openaiBody: completion(`{"ingredients":["2 eggs","1 cup flour"],"instructions":["Mix and bake."]}`),
	})

	w, _ := env.do(t, http.MethodPost, "/api/parse-recipe",
		`{"description": "2 eggs\n1 cup flour\nMix and bake."}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"parsed":{"ingredients":["2 eggs","1 cup flour"],"instructions":["Mix and bake."]}}`,
		w.Body.String())
	assert.Equal(t, int32(1), env.openai.calls.Load())
}

func TestParseRecipeWithoutAPIKey(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w, _ := env.do(t, http.MethodPost, "/api/parse-recipe", `{"description":"2 eggs"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"parsed":{"ingredients":[],"instructions":[]}}`, w.Body.String())
	assert.Equal(t, int32(0), env.openai.calls.Load())
}

func TestParseRecipeInvalidCompletion(t *testing.T) {
	env := newTestEnv(t, envOptions{openaiKey: "oa-key", openaiBody: completion("no recipe here")})

	w, _ := env.do(t, http.MethodPost, "/api/parse-recipe", `{"description":"2 eggs"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"parsed":{"ingredients":[],"instructions":[]}}`, w.Body.String())
}

func TestParseRecipeMissingDescription(t *testing.T) {
	env := newTestEnv(t, envOptions{openaiKey: "oa-key"})

	for _, body := range []string{`{}`, `{"description":""}`, `{"description":"   "}`} {
		w, decoded := env.do(t, http.MethodPost, "/api/parse-recipe", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, decoded))
	}
	assert.Equal(t, int32(0), env.openai.calls.Load())
}

func TestSaveRecipe(t *testing.T) {
	submission := `{
		"videoId": "dQw4w9WgXcQ",
		"title": "Pancakes",
		"description": "2 eggs\n1 cup flour",
		"thumbnailUrl": "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		"youtubeUrl": "https://youtu.be/dQw4w9WgXcQ"
	}`

	t.Run("extracts when configured", func(t *testing.T) {
		env := newTestEnv(t, envOptions{
			openaiKey:  "oa-key",
			openaiBody: completion(`{"ingredients":["2 eggs","1 cup flour"],"instructions":["Cook."]}`),
		})

		w, body := env.do(t, http.MethodPost, "/api/recipes", submission)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Recipe saved successfully!", body["message"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "dQw4w9WgXcQ", data["videoId"])
		assert.Equal(t, "Pancakes", data["title"])
		assert.Equal(t, float64(18), data["description_length"])
		assert.NotEmpty(t, data["saved_at"])
		parsed := data["parsed"].(map[string]interface{})
		assert.Equal(t, []interface{}{"2 eggs", "1 cup flour"}, parsed["ingredients"])
		assert.Equal(t, int32(1), env.openai.calls.Load())
	})

	t.Run("degrades without key", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})

		w, body := env.do(t, http.MethodPost, "/api/recipes", submission)

		require.Equal(t, http.StatusOK, w.Code)
		parsed := body["data"].(map[string]interface{})["parsed"].(map[string]interface{})
		assert.Equal(t, []interface{}{}, parsed["ingredients"])
		assert.Equal(t, []interface{}{}, parsed["instructions"])
		assert.Equal(t, int32(0), env.openai.calls.Load())
	})

	t.Run("blank description without key", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})

		w, body := env.do(t, http.MethodPost, "/api/recipes",
			`{"videoId":"dQw4w9WgXcQ","title":"t","description":"","thumbnailUrl":"","youtubeUrl":"https://youtu.be/dQw4w9WgXcQ"}`)

		require.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(0), data["description_length"])
		parsed := data["parsed"].(map[string]interface{})
		assert.Equal(t, []interface{}{}, parsed["ingredients"])
		assert.Equal(t, []interface{}{}, parsed["instructions"])
		assert.Equal(t, int32(0), env.openai.calls.Load())
	})

	t.Run("missing required field", func(t *testing.T) {
		env := newTestEnv(t, envOptions{})

		w, body := env.do(t, http.MethodPost, "/api/recipes", `{"title":"Pancakes"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, body))
	})
}

func TestListRecipesNeverPersists(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	env.do(t, http.MethodPost, "/api/recipes",
		`{"videoId":"dQw4w9WgXcQ","title":"t","description":"","thumbnailUrl":"","youtubeUrl":"https://youtu.be/dQw4w9WgXcQ"}`)
	w, body := env.do(t, http.MethodGet, "/api/recipes", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, body["recipes"])
	assert.NotEmpty(t, body["message"])
}

func TestGetRecipePlaceholder(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w, body := env.do(t, http.MethodGet, "/api/recipes/abc123", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", body["recipe_id"])
	assert.Equal(t, "Recipe not found. This is a placeholder endpoint.", body["message"])
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	req := httptest.NewRequest(http.MethodOptions, "/api/fetch-video", nil)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, int32(0), env.youtube.calls.Load())
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, envOptions{youtubeKey: "yt-key"})

	w, body := env.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	services := body["services"].(map[string]interface{})
	assert.Equal(t, "healthy", services["youtube"].(map[string]interface{})["status"])
	assert.Equal(t, "degraded", services["openai"].(map[string]interface{})["status"])
}
