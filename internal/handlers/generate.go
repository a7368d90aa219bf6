package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"

	"github.com/kstulgys/social-media-post-generator/internal/apperr"
	"github.com/kstulgys/social-media-post-generator/internal/openai"
	"github.com/kstulgys/social-media-post-generator/internal/product"
	"github.com/kstulgys/social-media-post-generator/internal/prompt"
	"github.com/kstulgys/social-media-post-generator/internal/research"
)

// Completer sends a built prompt to the completion endpoint. Implemented
// by openai.Client; stubbed in tests.
type Completer interface {
	GeneratePosts(ctx context.Context, prompt string) ([]openai.SocialMediaPost, error)
}

// Researcher gathers hashtags and insights for a product. It never
// fails (see the research package contract).
type Researcher interface {
	Research(ctx context.Context, p product.Product) research.Result
}

type GenerateHandler struct {
	completer  Completer
	researcher Researcher
}

func NewGenerateHandler(completer Completer, researcher Researcher) *GenerateHandler {
	return &GenerateHandler{completer: completer, researcher: researcher}
}

type GenerateRequest struct {
	Product product.Product `json:"product"`
}

type GenerateResponse struct {
	Posts       []openai.SocialMediaPost `json:"posts"`
	GeneratedAt string                   `json:"generated_at"`
	Count       int                      `json:"count"`
}

type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    apperr.Code `json:"code"`
	Details any         `json:"details,omitempty"`
}

// HandleGenerate runs the whole pipeline for one request: validate,
// optionally research, build the prompt, complete, filter, respond.
func (h *GenerateHandler) HandleGenerate(c echo.Context) error {
	ctx := c.Request().Context()

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.Validation([]product.FieldError{
			{Field: "body", Message: "Request body must be a JSON object with a product"},
		}))
	}

	if errs := product.Validate(req.Product); len(errs) > 0 {
		return respondError(c, apperr.Validation(errs))
	}
	p := req.Product

	generationID := ulid.Make().String()
	slog.Info("generating posts",
		"generation_id", generationID,
		"product", p.Name,
		"platforms", p.Platforms,
		"tone", product.ResolveTone(p.Tone),
		"research", p.IncludeResearch,
	)

	// Research cannot fail; it degrades to a default result instead.
	var res *research.Result
	if p.IncludeResearch {
		r := h.researcher.Research(ctx, p)
		res = &r
		slog.Info("web research completed",
			"generation_id", generationID,
			"hashtags", len(r.TrendingHashtags),
			"insights", len(r.MarketInsights),
		)
	}

	posts, err := h.completer.GeneratePosts(ctx, prompt.Build(p, res))
	if err != nil {
		appErr := apperr.Classify(err)
		slog.Error("post generation failed",
			"generation_id", generationID,
			"code", appErr.Code,
			"error", err,
		)
		return respondError(c, appErr)
	}

	posts = filterPlatforms(posts, p)

	slog.Info("posts generated", "generation_id", generationID, "count", len(posts))

	return c.JSON(http.StatusOK, GenerateResponse{
		Posts:       posts,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Count:       len(posts),
	})
}

// filterPlatforms drops posts for platforms the request did not select.
// The model occasionally returns extras despite the prompt's contract.
func filterPlatforms(posts []openai.SocialMediaPost, p product.Product) []openai.SocialMediaPost {
	filtered := make([]openai.SocialMediaPost, 0, len(posts))
	for _, post := range posts {
		if p.HasPlatform(post.Platform) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

func respondError(c echo.Context, err *apperr.Error) error {
	return c.JSON(err.Status, ErrorResponse{
		Error:   err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
}
