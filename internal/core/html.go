package core

import (
	"strings"
)

const (
	ShellLang     = "{LANG}"
	ShellTitle    = "{TITLE}"
	ShellContent  = "{CONTENT}"
	ShellCSSLinks = "{CSS_LINKS}"
)

// RequiredShellPlaceholders must appear in a shell for every field to reach
// the page. {CSS_LINKS} is optional.
var RequiredShellPlaceholders = []string{ShellLang, ShellTitle, ShellContent}

type ShellData struct {
	Lang     string
	Title    string
	Content  string
	CSSLinks []string
}

// RenderHTMLShell fills the shell placeholders in a single pass. Inserted
// values are not scanned again, so component text that happens to contain
// {LANG} or {TITLE} is written verbatim.
func RenderHTMLShell(shell string, data ShellData) string {
	r := strings.NewReplacer(
		ShellContent, data.Content,
		ShellLang, data.Lang,
		ShellTitle, data.Title,
		ShellCSSLinks, strings.Join(data.CSSLinks, "\n"),
	)
	return r.Replace(shell)
}

// MissingShellPlaceholders reports which required placeholders the shell
// lacks. A shell without them still renders; the field is simply dropped.
func MissingShellPlaceholders(shell string) []string {
	var missing []string
	for _, p := range RequiredShellPlaceholders {
		if !strings.Contains(shell, p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Body accumulates substituted component fragments for one page.
type Body struct {
	sb strings.Builder
}

// Append adds the fragment at position index of a list of total components.
// Positions refer to the configured list, not to the fragments that were
// actually found, so a skipped component does not shift the separators.
func (b *Body) Append(index, total int, fragment string) {
	if index == 0 {
		b.sb.WriteString("\n")
	}
	b.sb.WriteString("    ")
	b.sb.WriteString(strings.TrimSpace(fragment))
	if index+1 != total {
		b.sb.WriteString("\n")
	}
}

func (b *Body) String() string {
	return b.sb.String()
}
