package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/prompt"
)

// Status is the outcome of Decode.
type Status int

const (
	Invalid Status = iota
	Valid
)

func (s Status) String() string {
	if s == Valid {
		return "valid"
	}
	return "invalid"
}

// Decoded is the result of decoding raw model output. Result is set only for
// Valid; Raw and Reason only for Invalid.
type Decoded struct {
	Status Status
	Result domain.GenerationResult
	Raw    string
	Reason string
}

// Wire forms, one per prompt.Shape. A nil field means the key was absent.
type (
	biosOutput struct {
		Bios *json.RawMessage `json:"bios"`
	}
	captionsOutput struct {
		Captions *json.RawMessage `json:"captions"`
		Hashtags *json.RawMessage `json:"hashtags"`
	}
	outputsOutput struct {
		Outputs *json.RawMessage `json:"outputs"`
	}
)

// Decode parses raw as the JSON object described by shape. Parsing is strict:
// the whole text, minus surrounding whitespace, must be one JSON object. No
// attempt is made to repair truncated output or strip prose around it.
func Decode(shape prompt.Shape, raw string) Decoded {
	invalid := func(format string, args ...any) Decoded {
		return Decoded{Status: Invalid, Raw: raw, Reason: fmt.Sprintf(format, args...)}
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return invalid("empty output")
	}

	var (
		res domain.GenerationResult
		err error
	)
	switch shape {
	case prompt.ShapeBios:
		var out biosOutput
		if err = decodeObject(text, &out); err == nil {
			res.Items, err = requiredList("bios", out.Bios)
		}
	case prompt.ShapeCaptions:
		var out captionsOutput
		if err = decodeObject(text, &out); err == nil {
			res.Items, err = requiredList("captions", out.Captions)
		}
		if err == nil {
			res.SecondaryItems, err = optionalList("hashtags", out.Hashtags)
		}
	case prompt.ShapeOutputs:
		var out outputsOutput
		if err = decodeObject(text, &out); err == nil {
			res.Items, err = requiredList("outputs", out.Outputs)
		}
	default:
		return invalid("unknown shape %q", shape)
	}
	if err != nil {
		return invalid("%v", err)
	}
	return Decoded{Status: Valid, Result: res}
}

// decodeObject decodes text, which must hold exactly one JSON object, into dst.
func decodeObject(text string, dst any) error {
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errors.New("root is not an object")
		}
		return fmt.Errorf("malformed json: %w", err)
	}
	if dec.More() || dec.InputOffset() != int64(len(text)) {
		return errors.New("trailing data after json value")
	}
	// null decodes into a struct without error
	if text[0] != '{' {
		return errors.New("root is not an object")
	}
	return nil
}

func requiredList(key string, raw *json.RawMessage) ([]string, error) {
	if raw == nil {
		return nil, fmt.Errorf("missing %q", key)
	}
	out, err := stringList(*raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return out, nil
}

// optionalList is requiredList with an absent key read as an empty list.
func optionalList(key string, raw *json.RawMessage) ([]string, error) {
	if raw == nil {
		return []string{}, nil
	}
	return requiredList(key, raw)
}

// stringList decodes a JSON array whose elements are all strings.
func stringList(raw json.RawMessage) ([]string, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, errors.New("not an array")
	}
	out := make([]string, 0, len(elems))
	for i, el := range elems {
		var s string
		if len(el) == 0 || el[0] != '"' || json.Unmarshal(el, &s) != nil {
			return nil, fmt.Errorf("element %d is not a string", i)
		}
		out = append(out, s)
	}
	return out, nil
}
