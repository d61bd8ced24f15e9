package core

import (
	"regexp"
	"sort"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_.\-]+)\}`)

func Placeholder(key string) string {
	return "{" + key + "}"
}

// ReplaceLocaleKeys substitutes every {key} in content with locale[key].
// Replacement values are never rescanned, so a value containing another
// placeholder is emitted as-is. Unknown placeholders are left untouched.
func ReplaceLocaleKeys(content string, locale map[string]string) string {
	if len(locale) == 0 || content == "" {
		return content
	}
	return newLocaleReplacer(locale).Replace(content)
}

func newLocaleReplacer(locale map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(locale))
	for key := range locale {
		keys = append(keys, key)
	}
	// strings.Replacer prefers earlier pairs when two tokens start at the
	// same offset; longest first keeps the choice stable across runs.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, Placeholder(key), locale[key])
	}
	return strings.NewReplacer(pairs...)
}

// PlaceholderKeys lists the distinct placeholder keys in content in order of
// first appearance.
func PlaceholderKeys(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]bool, len(matches))
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		keys = append(keys, m[1])
	}
	return keys
}

// MissingKeys returns the placeholder keys in content that locale does not
// define.
func MissingKeys(content string, locale map[string]string) []string {
	var missing []string
	for _, key := range PlaceholderKeys(content) {
		if _, ok := locale[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
