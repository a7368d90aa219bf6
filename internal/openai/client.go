// Package openai wraps the OpenAI SDK behind the two narrow calls this
// system makes: a JSON-shaped chat completion and a web-search-augmented
// research query. Retries and timeouts live on the SDK transport.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"github.com/kstulgys/social-media-post-generator/internal/apperr"
	"github.com/kstulgys/social-media-post-generator/internal/product"
)

const (
	DefaultModel = "gpt-4o"

	maxRetries        = 2
	completionTimeout = 30 * time.Second
	// Web search takes noticeably longer than a plain completion.
	researchTimeout = 60 * time.Second
)

// SocialMediaPost is one generated post as returned by the model.
type SocialMediaPost struct {
	Platform product.Platform `json:"platform"`
	Content  string           `json:"content"`
}

type Client struct {
	client openai.Client
	model  string
}

// NewClient builds the process-lifetime client. It is safe for
// concurrent use because it is never mutated after construction.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(maxRetries),
		option.WithRequestTimeout(completionTimeout),
	)

	return &Client{client: client, model: model}
}

// GeneratePosts sends the built prompt and decodes the model's JSON
// reply. No content means an empty list; a malformed reply is a hard
// parse error, not a soft default.
func (c *Client) GeneratePosts(ctx context.Context, prompt string) ([]SocialMediaPost, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return []SocialMediaPost{}, nil
	}

	return ParsePosts(resp.Choices[0].Message.Content)
}

// SearchCompletion issues one Responses API call with the web_search
// tool and returns the concatenated output text. Implements
// research.Searcher.
func (c *Client) SearchCompletion(ctx context.Context, input string) (string, error) {
	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(c.model),
		Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(input)},
		Tools: []responses.ToolUnionParam{{
			OfWebSearchPreview: &responses.WebSearchPreviewToolParam{
				Type: responses.WebSearchPreviewToolTypeWebSearchPreview,
			},
		}},
	}, option.WithRequestTimeout(researchTimeout))
	if err != nil {
		return "", fmt.Errorf("web search response: %w", err)
	}

	return resp.OutputText(), nil
}

// ParsePosts extracts the posts array from the model's reply. Models
// sometimes wrap the JSON in a markdown fence despite the json_object
// response format, so fences are stripped first.
func ParsePosts(content string) ([]SocialMediaPost, error) {
	content = trimFence(content)
	if content == "" {
		return []SocialMediaPost{}, nil
	}

	var reply struct {
		Posts []SocialMediaPost `json:"posts"`
	}
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, apperr.Parse(err)
	}

	if reply.Posts == nil {
		return []SocialMediaPost{}, nil
	}
	return reply.Posts, nil
}

func trimFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
