package llm

import (
	"reflect"
	"strings"
	"testing"

	"github.com/creatorlab/creatorlab-backend/internal/prompt"
)

func TestDecode_Valid(t *testing.T) {
	cases := []struct {
		name  string
		shape prompt.Shape
		raw   string
		items []string
		extra []string
	}{
		{"bios", prompt.ShapeBios, `{"bios":["A","B","C"]}`, []string{"A", "B", "C"}, nil},
		{"captions with hashtags", prompt.ShapeCaptions, `{"captions":["x"],"hashtags":["#a","#b"]}`, []string{"x"}, []string{"#a", "#b"}},
		{"captions without hashtags", prompt.ShapeCaptions, `{"captions":["x"]}`, []string{"x"}, []string{}},
		{"outputs", prompt.ShapeOutputs, `{"outputs":["#one","#two"]}`, []string{"#one", "#two"}, nil},
		{"surrounding whitespace", prompt.ShapeBios, "\n  {\"bios\": [\"A\"]}\n\t", []string{"A"}, nil},
		{"extra keys ignored", prompt.ShapeBios, `{"bios":["A"],"note":"hi"}`, []string{"A"}, nil},
		{"empty array", prompt.ShapeOutputs, `{"outputs":[]}`, []string{}, nil},
		{"null hashtags", prompt.ShapeCaptions, `{"captions":["x"],"hashtags":null}`, []string{"x"}, []string{}},
		{"unicode", prompt.ShapeCaptions, `{"captions":["Lift 🔥"],"hashtags":[]}`, []string{"Lift 🔥"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decode(tc.shape, tc.raw)
			if d.Status != Valid {
				t.Fatalf("expected valid, got %v (%s)", d.Status, d.Reason)
			}
			if !reflect.DeepEqual(d.Result.Items, tc.items) {
				t.Fatalf("items = %#v; want %#v", d.Result.Items, tc.items)
			}
			if !reflect.DeepEqual(d.Result.SecondaryItems, tc.extra) {
				t.Fatalf("secondary = %#v; want %#v", d.Result.SecondaryItems, tc.extra)
			}
			if d.Raw != "" || d.Reason != "" {
				t.Fatalf("valid result must not carry raw/reason")
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		shape  prompt.Shape
		raw    string
		reason string
	}{
		{"empty", prompt.ShapeBios, "   ", "empty"},
		{"truncated", prompt.ShapeBios, `{"bios":["A","B`, "malformed"},
		{"prose around json", prompt.ShapeBios, `Here you go: {"bios":["A"]}`, "malformed"},
		{"trailing prose", prompt.ShapeBios, `{"bios":["A"]} hope this helps`, "trailing"},
		{"two objects", prompt.ShapeBios, `{"bios":["A"]}{"bios":["B"]}`, "trailing"},
		{"code fence", prompt.ShapeBios, "```json\n{\"bios\":[\"A\"]}\n```", "malformed"},
		{"array root", prompt.ShapeOutputs, `["a","b"]`, "not an object"},
		{"null root", prompt.ShapeBios, `null`, "not an object"},
		{"string root", prompt.ShapeBios, `"bios"`, "not an object"},
		{"null primary", prompt.ShapeBios, `{"bios":null}`, `missing "bios"`},
		{"object instead of array", prompt.ShapeBios, `{"bios":{"0":"a"}}`, "bios: not an array"},
		{"null element", prompt.ShapeOutputs, `{"outputs":["a",null]}`, "outputs: element 1 is not a string"},
		{"missing key", prompt.ShapeCaptions, `{"hashtags":["#a"]}`, `missing "captions"`},
		{"wrong key for shape", prompt.ShapeBios, `{"outputs":["a"]}`, `missing "bios"`},
		{"not array", prompt.ShapeOutputs, `{"outputs":"a"}`, "not an array"},
		{"non-string element", prompt.ShapeBios, `{"bios":["a",2]}`, "element 1"},
		{"bad optional array", prompt.ShapeCaptions, `{"captions":["a"],"hashtags":"#a"}`, "hashtags"},
		{"bad optional element", prompt.ShapeCaptions, `{"captions":["a"],"hashtags":[null]}`, "hashtags"},
		{"unknown shape", prompt.Shape("poems"), `{"poems":["a"]}`, "unknown shape"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decode(tc.shape, tc.raw)
			if d.Status != Invalid {
				t.Fatalf("expected invalid, got %v: %+v", d.Status, d.Result)
			}
			if d.Raw != tc.raw {
				t.Fatalf("raw text must be preserved verbatim")
			}
			if !strings.Contains(d.Reason, tc.reason) {
				t.Fatalf("reason %q does not mention %q", d.Reason, tc.reason)
			}
			if d.Result.Items != nil {
				t.Fatalf("invalid result must not carry items")
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	if Valid.String() != "valid" || Invalid.String() != "invalid" {
		t.Fatalf("unexpected status strings")
	}
}
