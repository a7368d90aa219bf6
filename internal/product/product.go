package product

// Platform is one of the social networks posts can be generated for.
// Values are lowercase because that is the wire form the model is asked
// to echo back and the frontend keys its icons on.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

var AllPlatforms = []Platform{
	PlatformTwitter,
	PlatformInstagram,
	PlatformLinkedIn,
}

// Tone is a fixed style preset applied to generated copy.
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneHumorous      Tone = "humorous"
	ToneUrgent        Tone = "urgent"
	ToneInspirational Tone = "inspirational"
)

var AllTones = []Tone{
	ToneProfessional,
	ToneCasual,
	ToneHumorous,
	ToneUrgent,
	ToneInspirational,
}

// Product is the user-supplied description of an item to market. It is
// built once from the request body and never mutated; nothing outlives
// the request that carried it.
type Product struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	Category        string     `json:"category,omitempty"`
	Tone            Tone       `json:"tone,omitempty"`
	Platforms       []Platform `json:"platforms"`
	IncludeResearch bool       `json:"includeResearch,omitempty"`
}

// PlatformSpec holds the per-platform constraints the prompt quotes to
// the model.
type PlatformSpec struct {
	Label        string
	CharLimit    int
	HashtagLimit int
	StyleNote    string
}

// PlatformSpecs is read-only configuration, keyed by platform.
var PlatformSpecs = map[Platform]PlatformSpec{
	PlatformTwitter: {
		Label:        "Twitter",
		CharLimit:    280,
		HashtagLimit: 3,
		StyleNote:    "punchy and conversational; lead with a hook, invite replies",
	},
	PlatformInstagram: {
		Label:        "Instagram",
		CharLimit:    2200,
		HashtagLimit: 10,
		StyleNote:    "visual-first and emoji-friendly; paint the picture, hashtags at the end",
	},
	PlatformLinkedIn: {
		Label:        "LinkedIn",
		CharLimit:    3000,
		HashtagLimit: 5,
		StyleNote:    "professional and value-focused; open with an insight, close with a takeaway",
	},
}

// ToneGuidelines maps each tone to the style block embedded in the prompt.
var ToneGuidelines = map[Tone]string{
	ToneProfessional:  "Use polished, credible language. No slang, minimal emojis, focus on concrete benefits and proof points.",
	ToneCasual:        "Write like a friend recommending the product. Contractions, everyday words, a few emojis where they feel natural.",
	ToneHumorous:      "Be playful and witty. Light jokes and wordplay are welcome, but the product benefit must still land clearly.",
	ToneUrgent:        "Create momentum. Short sentences, action verbs, a clear reason to act now — without inventing fake scarcity.",
	ToneInspirational: "Appeal to aspiration. Connect the product to a better routine or bigger goal; uplifting, never preachy.",
}

// ResolveTone normalizes an unknown or empty tone to professional.
func ResolveTone(t Tone) Tone {
	if _, ok := ToneGuidelines[t]; ok {
		return t
	}
	return ToneProfessional
}

// HasPlatform reports whether p targets the given platform.
func (p Product) HasPlatform(platform Platform) bool {
	for _, selected := range p.Platforms {
		if selected == platform {
			return true
		}
	}
	return false
}
