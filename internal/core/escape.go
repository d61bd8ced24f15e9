package core

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

type EscapeMode string

const (
	// EscapeNone trusts locale values as raw HTML.
	EscapeNone     EscapeMode = "none"
	EscapeHTML     EscapeMode = "html"
	EscapeSanitize EscapeMode = "sanitize"
)

func (m EscapeMode) Valid() bool {
	switch m {
	case EscapeNone, EscapeHTML, EscapeSanitize:
		return true
	}
	return false
}

// ValueFilter transforms locale values before they are substituted.
type ValueFilter struct {
	mode   EscapeMode
	policy *bluemonday.Policy
}

func NewValueFilter(mode EscapeMode) *ValueFilter {
	f := &ValueFilter{mode: mode}
	if mode == EscapeSanitize {
		f.policy = bluemonday.UGCPolicy()
	}
	return f
}

func (f *ValueFilter) Apply(locale map[string]string) map[string]string {
	if f == nil || f.mode == EscapeNone || f.mode == "" {
		return locale
	}

	out := make(map[string]string, len(locale))
	for key, value := range locale {
		switch f.mode {
		case EscapeHTML:
			out[key] = html.EscapeString(value)
		case EscapeSanitize:
			out[key] = f.policy.Sanitize(value)
		default:
			out[key] = value
		}
	}
	return out
}
