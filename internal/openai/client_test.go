package openai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstulgys/social-media-post-generator/internal/apperr"
	"github.com/kstulgys/social-media-post-generator/internal/product"
)

func TestParsePosts(t *testing.T) {
	content := `{"posts":[{"platform":"twitter","content":"Stay hydrated 💧"},{"platform":"linkedin","content":"Hydration meets innovation."}]}`

	posts, err := ParsePosts(content)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, product.PlatformTwitter, posts[0].Platform)
	assert.Equal(t, "Stay hydrated 💧", posts[0].Content)
	assert.Equal(t, product.PlatformLinkedIn, posts[1].Platform)
}

func TestParsePostsStripsMarkdownFence(t *testing.T) {
	content := "```json\n{\"posts\":[{\"platform\":\"twitter\",\"content\":\"hi\"}]}\n```"

	posts, err := ParsePosts(content)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "hi", posts[0].Content)
}

func TestParsePostsEmptyContent(t *testing.T) {
	posts, err := ParsePosts("")
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
}

func TestParsePostsMissingPostsKey(t *testing.T) {
	posts, err := ParsePosts(`{"something":"else"}`)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestParsePostsMalformedJSONIsParseError(t *testing.T) {
	_, err := ParsePosts(`{"posts": [{`)
	require.Error(t, err)

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperr.CodeParse, appErr.Code)
}
