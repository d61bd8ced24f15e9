package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReplaceLocaleKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		locale  map[string]string
		want    string
	}{
		{
			name:    "known key is replaced",
			content: "<h1>{greeting}</h1>",
			locale:  map[string]string{"title": "X", "greeting": "Hello"},
			want:    "<h1>Hello</h1>",
		},
		{
			name:    "every occurrence is replaced",
			content: "{a} and {a} and {a}",
			locale:  map[string]string{"a": "x"},
			want:    "x and x and x",
		},
		{
			name:    "unknown key is left untouched",
			content: "<p>{missing}</p>",
			locale:  map[string]string{"greeting": "Hello"},
			want:    "<p>{missing}</p>",
		},
		{
			name:    "empty dictionary leaves content as is",
			content: "<p>{greeting}</p>",
			locale:  map[string]string{},
			want:    "<p>{greeting}</p>",
		},
		{
			name:    "nil dictionary leaves content as is",
			content: "<p>{greeting}</p>",
			locale:  nil,
			want:    "<p>{greeting}</p>",
		},
		{
			name:    "replacement value is not expanded again",
			content: "<p>{a}</p>",
			locale:  map[string]string{"a": "{b}", "b": "boom"},
			want:    "<p>{b}</p>",
		},
		{
			name:    "value referring to itself does not loop",
			content: "{a}",
			locale:  map[string]string{"a": "{a}{a}"},
			want:    "{a}{a}",
		},
		{
			name:    "dotted keys",
			content: "<h2>{hero.title}</h2>",
			locale:  map[string]string{"hero.title": "World Cup"},
			want:    "<h2>World Cup</h2>",
		},
		{
			name:    "regex metacharacters are literal",
			content: "{a+b} {a}",
			locale:  map[string]string{"a+b": "sum", "a": "one"},
			want:    "sum one",
		},
		{
			name:    "bare braces are not placeholders",
			content: `{"@type": "Product"}`,
			locale:  map[string]string{"title": "x"},
			want:    `{"@type": "Product"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReplaceLocaleKeys(tt.content, tt.locale)
			if got != tt.want {
				t.Errorf("ReplaceLocaleKeys(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestReplaceLocaleKeysDeterministic(t *testing.T) {
	locale := map[string]string{"a": "1", "b": "2", "c": "3", "d": "4", "e": "5"}
	content := "{e}{d}{c}{b}{a}"
	first := ReplaceLocaleKeys(content, locale)
	for i := 0; i < 50; i++ {
		if got := ReplaceLocaleKeys(content, locale); got != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, got, first)
		}
	}
	if first != "54321" {
		t.Errorf("got %q, want %q", first, "54321")
	}
}

func TestPlaceholderKeys(t *testing.T) {
	got := PlaceholderKeys(`<a href="{link}">{label}</a> {label} {nav.home} {not a key}`)
	want := []string{"link", "label", "nav.home"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PlaceholderKeys() mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingKeys(t *testing.T) {
	got := MissingKeys("{title} {greeting} {farewell}", map[string]string{"title": "x", "greeting": "hi"})
	want := []string{"farewell"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MissingKeys() mismatch (-want +got):\n%s", diff)
	}

	if got := MissingKeys("{title}", map[string]string{"title": "x"}); got != nil {
		t.Errorf("MissingKeys() = %v, want nil", got)
	}
}
