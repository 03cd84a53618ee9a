package domain

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// ContentType enumerates what a generation produces.
type ContentType string

const (
	ContentCaption ContentType = "caption"
	ContentBio     ContentType = "bio"
	ContentHashtag ContentType = "hashtag"
	ContentHook    ContentType = "hook"
)

// ContentTypes lists every supported content type.
var ContentTypes = []ContentType{ContentCaption, ContentBio, ContentHashtag, ContentHook}

// ParseContentType maps a case-insensitive name to a ContentType.
func ParseContentType(s string) (ContentType, bool) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(ContentTypes, ct) {
		return ct, true
	}
	return "", false
}

// ContentTypeList renders ContentTypes for error messages, e.g.
// "caption, bio, hashtag, hook".
func ContentTypeList() string {
	names := make([]string, len(ContentTypes))
	for i, ct := range ContentTypes {
		names[i] = string(ct)
	}
	return strings.Join(names, ", ")
}

// Language selects the output language of a generation.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
)

// ParseLanguage maps a case-insensitive name to a Language. The empty string
// maps to English.
func ParseLanguage(s string) (Language, bool) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return LanguageEnglish, true
	case LanguageEnglish, LanguageHinglish:
		return l, true
	}
	return "", false
}

// GenerationRequest is the structured input of one generation. Topic holds
// either the topic (captions) or the niche (bios, hashtags, hooks). Context is
// optional free text such as a script the content should be based on.
type GenerationRequest struct {
	ContentType ContentType `json:"type"`
	Platform    string      `json:"platform"`
	Topic       string      `json:"topic"`
	Tone        string      `json:"tone,omitempty"`
	Language    Language    `json:"language,omitempty"`
	Context     string      `json:"context,omitempty"`
}

// UnmarshalJSON accepts the field names used by the web client ("niche",
// "inputText") in addition to the canonical ones.
func (r *GenerationRequest) UnmarshalJSON(b []byte) error {
	type plain GenerationRequest
	var aux struct {
		plain
		Niche     string `json:"niche"`
		InputText string `json:"inputText"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = GenerationRequest(aux.plain)
	if r.Topic == "" {
		r.Topic = aux.Niche
	}
	if r.Context == "" {
		r.Context = aux.InputText
	}
	return nil
}

// GenerationResult is the decoded model output. Items are the primary outputs
// (captions, bios, hooks, hashtags); SecondaryItems carries hashtags that
// accompany captions.
type GenerationResult struct {
	Items          []string `json:"items"`
	SecondaryItems []string `json:"secondary_items,omitempty"`
}

// UnmarshalJSON accepts the canonical object, a bare array of strings, and
// the response shapes of the generation endpoints ({"bios"}, {"captions",
// "hashtags"}, {"outputs"}), so clients can save what they received.
func (r *GenerationResult) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*r = GenerationResult{Items: items}
		return nil
	}

	type plain GenerationResult
	var aux struct {
		plain
		Bios     []string `json:"bios"`
		Captions []string `json:"captions"`
		Outputs  []string `json:"outputs"`
		Hashtags []string `json:"hashtags"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = GenerationResult(aux.plain)
	for _, alt := range [][]string{aux.Captions, aux.Bios, aux.Outputs} {
		if len(r.Items) == 0 && len(alt) > 0 {
			r.Items = alt
		}
	}
	if r.SecondaryItems == nil {
		r.SecondaryItems = aux.Hashtags
	}
	return nil
}
