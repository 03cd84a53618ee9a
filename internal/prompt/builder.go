// Package prompt turns a GenerationRequest into the system/user prompt pair
// sent to the completion endpoint.
//
// Prompts are plain format strings plus per-platform rule tables. Rules are
// selected by exact match on the platform string; anything else falls back to
// a generic rule block. Building is deterministic and never touches the
// network.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
)

// ErrUnknownContentType is returned by Build for content types without a template.
var ErrUnknownContentType = errors.New("unknown content type")

// Shape names the JSON object the model is instructed to answer with.
type Shape string

const (
	// ShapeBios is {"bios": [...]}.
	ShapeBios Shape = "bios"
	// ShapeCaptions is {"captions": [...], "hashtags": [...]}.
	ShapeCaptions Shape = "captions"
	// ShapeOutputs is {"outputs": [...]}.
	ShapeOutputs Shape = "outputs"
)

// Prompt is a fully rendered request for the completion endpoint.
type Prompt struct {
	ContentType domain.ContentType
	System      string
	User        string
	Temperature float64
	Shape       Shape
}

// template describes one content type.
type template struct {
	system      string
	user        string // format verbs: platform, topic, tone, language, rules, context
	temperature float64
	shape       Shape
	rules       map[string]string
	generic     string
}

const systemBio = `You are an expert social media profile optimizer.

RULES:
- Bios must sound human and professional
- Avoid generic phrases
- Do NOT explain
- Respond ONLY in valid JSON`

const systemCaption = `You are a senior social media strategist.

RULES:
- Sound human
- No explanations
- JSON only`

const systemHashtag = `You are a social media hashtag expert.

RULES:
- Mix popular and niche-specific hashtags
- Include both broad reach and targeted hashtags
- No explanations
- JSON only`

const systemHook = `You are a viral content creator specializing in scroll-stopping hooks.

RULES:
- Grab attention in the first 1-2 seconds
- Create curiosity or urgency
- No explanations
- JSON only`

var templates = map[domain.ContentType]template{
	domain.ContentBio: {
		system: systemBio,
		user: `Create 3 optimized social media bios.

Niche: %[2]s
Platform: %[1]s
Tone: %[3]s
Language: %[4]s
%[6]s
Platform Rules:
%[5]s

Return ONLY this JSON:
{
  "bios": ["...", "...", "..."]
}`,
		temperature: 0.7,
		shape:       ShapeBios,
		rules: map[string]string{
			"Instagram": `- Bio must be short and skimmable
- Use line breaks
- Use emojis sparingly
- Instagram-native tone`,
			"YouTube": `- Bio should describe channel purpose
- Include subscribe CTA
- Clear value proposition`,
		},
		generic: `- Keep it concise and clear
- State who you are and what you offer
- End with a call to action`,
	},
	domain.ContentCaption: {
		system: systemCaption,
		user: `Platform: %[1]s
Topic: %[2]s
Tone: %[3]s
Language: %[4]s
%[6]s
Rules:
%[5]s

Return ONLY this JSON:
{
  "captions": ["...", "...", "..."],
  "hashtags": ["#tag1", "#tag2", "#tag3", "#tag4", "#tag5"]
}`,
		temperature: 0.8,
		shape:       ShapeCaptions,
		rules: map[string]string{
			"Instagram": `MANDATORY RULES:
- EVERY caption MUST include at least one emoji (🔥 💪 ✨ 🚀 😎)
- Captions must be SHORT (max 12 words)
- Instagram Reel-native`,
			"YouTube Shorts": `MANDATORY RULES:
- Start with a hook
- Add CTA like "Watch till the end"
- NO emojis`,
		},
		generic: `- Each caption should be unique and engaging
- Keep it concise but impactful
- Make it shareable and relatable`,
	},
	domain.ContentHashtag: {
		system: systemHashtag,
		user: `Generate 15-20 trending and relevant hashtags.

Platform: %[1]s
Niche: %[2]s
Tone: %[3]s
Language: %[4]s
%[6]s
Rules:
%[5]s

Return ONLY this JSON:
{
  "outputs": ["#tag1", "#tag2", "#tag3"]
}`,
		temperature: 0.7,
		shape:       ShapeOutputs,
		rules: map[string]string{
			"Instagram": `- Optimize for Instagram Reels discovery
- Up to 20 hashtags, no duplicates`,
			"YouTube Shorts": `- Always include #shorts
- Prefer searchable, topic-first hashtags`,
		},
		generic: `- Make them relevant to the content described
- Every item starts with #`,
	},
	domain.ContentHook: {
		system: systemHook,
		user: `Generate 3 powerful opening hooks.

Platform: %[1]s
Niche: %[2]s
Tone: %[3]s
Language: %[4]s
%[6]s
Rules:
%[5]s

Return ONLY this JSON:
{
  "outputs": ["...", "...", "..."]
}`,
		temperature: 0.9,
		shape:       ShapeOutputs,
		rules: map[string]string{
			"Instagram": `- Hook must work as on-screen text for a Reel
- Max 10 words`,
			"YouTube Shorts": `- Make viewers want to watch till the end
- Be bold and direct
- NO emojis`,
		},
		generic: `- Be bold and direct
- Max 15 words`,
	},
}

// Build renders the prompt pair for req. It does not validate required
// fields; callers are expected to reject incomplete requests first.
func Build(req domain.GenerationRequest) (Prompt, error) {
	tpl, ok := templates[req.ContentType]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownContentType, req.ContentType)
	}
	tone := req.Tone
	if tone == "" {
		tone = "Neutral"
	}
	user := fmt.Sprintf(tpl.user,
		req.Platform,
		req.Topic,
		tone,
		languageLabel(req.Language),
		Rules(req.ContentType, req.Platform),
		contextBlock(req.Context),
	)
	return Prompt{
		ContentType: req.ContentType,
		System:      tpl.system,
		User:        user,
		Temperature: tpl.temperature,
		Shape:       tpl.shape,
	}, nil
}

// Rules returns the platform rule block used for ct on platform. Platforms
// are matched exactly; unknown platforms get the generic block.
func Rules(ct domain.ContentType, platform string) string {
	tpl, ok := templates[ct]
	if !ok {
		return ""
	}
	if r, ok := tpl.rules[platform]; ok {
		return r
	}
	return tpl.generic
}

func languageLabel(l domain.Language) string {
	if l == domain.LanguageHinglish {
		return "Hinglish (mix of Hindi and English)"
	}
	return "English"
}

func contextBlock(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return "Content to base this on: " + s + "\n"
}
