package core

import (
	"fmt"

	"golang.org/x/text/language"
)

// CheckLanguageCode reports whether code is a well-formed BCP 47 tag. The
// generator writes the code verbatim either way.
func CheckLanguageCode(code string) error {
	if code == "" {
		return fmt.Errorf("language code is empty")
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("language code %q: %w", code, err)
	}
	return nil
}

// CanonicalLanguage returns the canonical form of code, or code itself when
// it does not parse.
func CanonicalLanguage(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
