// Package research enriches prompts with trending hashtags and market
// insights gathered through a web-search-augmented model call. It is
// strictly best-effort: every failure degrades to a usable default and
// the caller never sees an error.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/kstulgys/social-media-post-generator/internal/product"
)

// Result is what the prompt builder consumes. It is discarded once the
// prompt is assembled.
type Result struct {
	TrendingHashtags []string `json:"trendingHashtags"`
	MarketInsights   []string `json:"marketInsights"`
	SearchQuery      string   `json:"searchQuery"`
}

// Empty reports whether the research produced nothing worth quoting.
func (r Result) Empty() bool {
	return len(r.TrendingHashtags) == 0 && len(r.MarketInsights) == 0
}

const (
	maxFallbackHashtags = 10

	fallbackInsight    = "Research completed but structured data extraction failed"
	unavailableInsight = "Web research was skipped or unavailable - using standard generation"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// Searcher issues one web-search-augmented completion and returns the
// model's output text. Implemented by openai.Client.
type Searcher interface {
	SearchCompletion(ctx context.Context, input string) (string, error)
}

type Fetcher struct {
	searcher Searcher
}

func NewFetcher(searcher Searcher) *Fetcher {
	return &Fetcher{searcher: searcher}
}

// Research performs one outbound web-search call for the product and
// always returns a usable Result.
func (f *Fetcher) Research(ctx context.Context, p product.Product) Result {
	query := buildSearchQuery(p)

	text, err := f.searcher.SearchCompletion(ctx, buildResearchInput(p))
	if err != nil {
		slog.Warn("web research failed, using defaults", "error", err, "query", query)
		return defaultResult(query)
	}
	if text == "" {
		slog.Warn("web research returned no text, using defaults", "query", query)
		return defaultResult(query)
	}

	return extract(text, query)
}

// extract pulls a structured result out of free-form model output. The
// ladder: strict JSON from the first brace-delimited substring, then a
// hashtag scan over the raw text, then the fixed default.
func extract(text, query string) Result {
	if raw, ok := braceDelimited(text); ok {
		var parsed struct {
			TrendingHashtags []string `json:"trendingHashtags"`
			MarketInsights   []string `json:"marketInsights"`
		}
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			return Result{
				TrendingHashtags: parsed.TrendingHashtags,
				MarketInsights:   parsed.MarketInsights,
				SearchQuery:      query,
			}
		}
		slog.Debug("research JSON parse failed, scanning for hashtags")
	}

	if hashtags := scanHashtags(text); len(hashtags) > 0 {
		return Result{
			TrendingHashtags: hashtags,
			MarketInsights:   []string{fallbackInsight},
			SearchQuery:      query,
		}
	}

	return defaultResult(query)
}

// braceDelimited returns the first {...} substring, spanning to the last
// closing brace so nested objects survive.
func braceDelimited(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func scanHashtags(text string) []string {
	seen := make(map[string]bool)
	var hashtags []string
	for _, tag := range hashtagPattern.FindAllString(text, -1) {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		hashtags = append(hashtags, tag)
		if len(hashtags) == maxFallbackHashtags {
			break
		}
	}
	return hashtags
}

func buildSearchQuery(p product.Product) string {
	category := p.Category
	if category == "" {
		category = "products"
	}
	return fmt.Sprintf("trending hashtags %s %s social media marketing 2024", category, p.Name)
}

func buildResearchInput(p product.Product) string {
	category := p.Category
	if category == "" {
		category = "General"
	}

	return fmt.Sprintf(`Research trending hashtags and market insights for a product in the social media marketing context.

Product: %s
Description: %s
Category: %s

Please search for:
1. Currently trending hashtags related to this product category
2. Recent market trends or news that could make social media posts more relevant
3. Popular marketing angles being used for similar products

Return your findings as a JSON object with this structure:
{
  "trendingHashtags": ["#hashtag1", "#hashtag2", ...],
  "marketInsights": ["insight 1", "insight 2", ...]
}

Focus on hashtags that are currently popular and insights that could make posts more timely and engaging.`, p.Name, p.Description, category)
}

func defaultResult(query string) Result {
	return Result{
		TrendingHashtags: []string{},
		MarketInsights:   []string{unavailableInsight},
		SearchQuery:      query,
	}
}
