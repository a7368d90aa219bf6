package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oai "github.com/kstulgys/social-media-post-generator/internal/openai"
	"github.com/kstulgys/social-media-post-generator/internal/product"
	"github.com/kstulgys/social-media-post-generator/internal/research"
)

type stubCompleter struct {
	posts      []oai.SocialMediaPost
	err        error
	lastPrompt string
}

func (s *stubCompleter) GeneratePosts(ctx context.Context, prompt string) ([]oai.SocialMediaPost, error) {
	s.lastPrompt = prompt
	return s.posts, s.err
}

type stubResearcher struct {
	result research.Result
	called bool
}

func (s *stubResearcher) Research(ctx context.Context, p product.Product) research.Result {
	s.called = true
	return s.result
}

func generateBody(p product.Product) map[string]interface{} {
	return map[string]interface{}{"product": p}
}

func ecoBottle() product.Product {
	return product.Product{
		Name:        "EcoBottle Pro",
		Description: "Reusable bottle with UV purification and 24h insulation.",
		Price:       29.99,
		Tone:        product.ToneCasual,
		Platforms:   []product.Platform{product.PlatformTwitter},
	}
}

func TestHandleGenerateRoundTrip(t *testing.T) {
	start := time.Now().UTC().Truncate(time.Second)

	completer := &stubCompleter{posts: []oai.SocialMediaPost{
		{Platform: product.PlatformTwitter, Content: "Stay hydrated with EcoBottle Pro 💧"},
	}}
	handler := NewGenerateHandler(completer, &stubResearcher{})

	c, rec := NewTestContext(http.MethodPost, "/api/generate", generateBody(ecoBottle()))
	require.NoError(t, handler.HandleGenerate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := DecodeJSONResponse(rec)
	require.NoError(t, err)

	posts := body["posts"].([]interface{})
	require.Len(t, posts, 1)
	first := posts[0].(map[string]interface{})
	assert.Equal(t, "twitter", first["platform"])
	assert.Equal(t, float64(1), body["count"])

	generatedAt, err := time.Parse(time.RFC3339, body["generated_at"].(string))
	require.NoError(t, err)
	assert.False(t, generatedAt.Before(start), "generated_at must not be earlier than request start")
}

func TestHandleGenerateValidationFailure(t *testing.T) {
	p := ecoBottle()
	p.Description = "too short"

	completer := &stubCompleter{}
	handler := NewGenerateHandler(completer, &stubResearcher{})

	c, rec := NewTestContext(http.MethodPost, "/api/generate", generateBody(p))
	require.NoError(t, handler.HandleGenerate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body, err := DecodeJSONResponse(rec)
	require.NoError(t, err)
	assert.Equal(t, "Validation failed", body["error"])
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	details := body["details"].([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "description", details[0].(map[string]interface{})["field"])

	assert.Empty(t, completer.lastPrompt, "no outbound call may be attempted on invalid input")
}

func TestHandleGenerateFiltersUnrequestedPlatforms(t *testing.T) {
	completer := &stubCompleter{posts: []oai.SocialMediaPost{
		{Platform: product.PlatformTwitter, Content: "keep"},
		{Platform: product.PlatformInstagram, Content: "drop"},
		{Platform: product.Platform("tiktok"), Content: "drop"},
		{Platform: product.PlatformTwitter, Content: "keep too"},
	}}
	handler := NewGenerateHandler(completer, &stubResearcher{})

	c, rec := NewTestContext(http.MethodPost, "/api/generate", generateBody(ecoBottle()))
	require.NoError(t, handler.HandleGenerate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := DecodeJSONResponse(rec)
	require.NoError(t, err)

	posts := body["posts"].([]interface{})
	require.Len(t, posts, 2)
	for _, raw := range posts {
		assert.Equal(t, "twitter", raw.(map[string]interface{})["platform"])
	}
	assert.Equal(t, float64(2), body["count"])
}

func TestHandleGenerateRateLimit(t *testing.T) {
	completer := &stubCompleter{err: &openai.Error{
		StatusCode: http.StatusTooManyRequests,
		Request:    httptest.NewRequest(http.MethodPost, "/v1/chat/completions", nil),
		Response:   &http.Response{StatusCode: http.StatusTooManyRequests},
	}}
	handler := NewGenerateHandler(completer, &stubResearcher{})

	c, rec := NewTestContext(http.MethodPost, "/api/generate", generateBody(ecoBottle()))
	require.NoError(t, handler.HandleGenerate(c))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	body, err := DecodeJSONResponse(rec)
	require.NoError(t, err)
	assert.Equal(t, "OPENAI_RATE_LIMIT", body["code"])
}

func TestHandleGenerateResearchOnlyWhenRequested(t *testing.T) {
	researcher := &stubResearcher{result: research.Result{
		TrendingHashtags: []string{"#EcoFriendly"},
		MarketInsights:   []string{"Reusable bottles are trending"},
		SearchQuery:      "q",
	}}
	completer := &stubCompleter{posts: []oai.SocialMediaPost{}}
	handler := NewGenerateHandler(completer, researcher)

	c, _ := NewTestContext(http.MethodPost, "/api/generate", generateBody(ecoBottle()))
	require.NoError(t, handler.HandleGenerate(c))
	assert.False(t, researcher.called)
	assert.NotContains(t, completer.lastPrompt, "Web research findings:")

	p := ecoBottle()
	p.IncludeResearch = true
	c, _ = NewTestContext(http.MethodPost, "/api/generate", generateBody(p))
	require.NoError(t, handler.HandleGenerate(c))
	assert.True(t, researcher.called)
	assert.Contains(t, completer.lastPrompt, "Web research findings:")
	assert.Contains(t, completer.lastPrompt, "#EcoFriendly")
}

func TestHandleGenerateEmptyPostsStillSucceeds(t *testing.T) {
	handler := NewGenerateHandler(&stubCompleter{posts: []oai.SocialMediaPost{}}, &stubResearcher{})

	c, rec := NewTestContext(http.MethodPost, "/api/generate", generateBody(ecoBottle()))
	require.NoError(t, handler.HandleGenerate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Body.String(), `"posts":[]`)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestHandleGenerateMalformedBody(t *testing.T) {
	handler := NewGenerateHandler(&stubCompleter{}, &stubResearcher{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.HandleGenerate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
