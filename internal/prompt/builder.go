// Package prompt renders the instruction string sent to the completion
// model. Build is pure: the same product and research always yield
// byte-identical text, so its output can be snapshot-tested.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kstulgys/social-media-post-generator/internal/product"
	"github.com/kstulgys/social-media-post-generator/internal/research"
)

// DefaultPostCount is the nominal total across all platforms. When the
// platform count does not divide it evenly the advertised total shrinks
// to perPlatform*platforms (so 2 platforms yield 4 posts, not 5).
const DefaultPostCount = 5

// PostsPerPlatform returns how many posts the prompt requests for each
// selected platform, never less than one.
func PostsPerPlatform(platformCount int) int {
	if platformCount <= 0 {
		return DefaultPostCount
	}
	per := DefaultPostCount / platformCount
	if per < 1 {
		per = 1
	}
	return per
}

// Build assembles the full instruction string for a validated product.
// research may be nil when the caller skipped the research step.
func Build(p product.Product, res *research.Result) string {
	perPlatform := PostsPerPlatform(len(p.Platforms))
	total := perPlatform * len(p.Platforms)
	tone := product.ResolveTone(p.Tone)

	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d social media posts for this product (%d per platform):\n\n", total, perPlatform)

	fmt.Fprintf(&b, "Product: %s\n", p.Name)
	fmt.Fprintf(&b, "Description: %s\n", p.Description)
	fmt.Fprintf(&b, "Price: $%s\n", strconv.FormatFloat(p.Price, 'f', -1, 64))
	if p.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", p.Category)
	}

	fmt.Fprintf(&b, "\nTone: %s\n%s\n", tone, product.ToneGuidelines[tone])

	b.WriteString("\nPlatform requirements (write posts only for these platforms):\n")
	for _, platform := range p.Platforms {
		spec := product.PlatformSpecs[platform]
		fmt.Fprintf(&b, "- %s: at most %d characters, up to %d hashtags; %s\n",
			spec.Label, spec.CharLimit, spec.HashtagLimit, spec.StyleNote)
	}

	if res != nil && !res.Empty() {
		b.WriteString("\nWeb research findings:\n")
		if len(res.TrendingHashtags) > 0 {
			fmt.Fprintf(&b, "Trending hashtags: %s\n", strings.Join(res.TrendingHashtags, " "))
		}
		if len(res.MarketInsights) > 0 {
			b.WriteString("Market insights:\n")
			for _, insight := range res.MarketInsights {
				fmt.Fprintf(&b, "- %s\n", insight)
			}
		}
		b.WriteString("Weave these findings in naturally where they fit; do not force them into every post.\n")
	}

	platforms := make([]string, len(p.Platforms))
	for i, platform := range p.Platforms {
		platforms[i] = string(platform)
	}

	fmt.Fprintf(&b, `
Return the response as a JSON object, where the key is "posts" and the value is an array of objects.
Each object must have a "platform" property (lowercase, one of: %s) and a "content" property.
`, strings.Join(platforms, ", "))

	return b.String()
}
