package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderHTMLShell(t *testing.T) {
	shell := `<html lang="{LANG}"><head><title>{TITLE}</title>{CSS_LINKS}</head><body>{CONTENT}</body></html>`

	got := RenderHTMLShell(shell, ShellData{
		Lang:     "en",
		Title:    "Home",
		Content:  "<p>Hi</p>",
		CSSLinks: []string{"<link a>", "<link b>"},
	})
	want := `<html lang="en"><head><title>Home</title><link a>` + "\n" + `<link b></head><body><p>Hi</p></body></html>`
	if got != want {
		t.Errorf("RenderHTMLShell() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderHTMLShellDoesNotRescanContent(t *testing.T) {
	shell := `<html lang="{LANG}"><body>{CONTENT}</body></html>`

	got := RenderHTMLShell(shell, ShellData{Lang: "en", Content: "<code>{LANG} {TITLE}</code>"})
	want := `<html lang="en"><body><code>{LANG} {TITLE}</code></body></html>`
	if got != want {
		t.Errorf("RenderHTMLShell() = %q, want %q", got, want)
	}
}

func TestRenderHTMLShellMissingPlaceholder(t *testing.T) {
	shell := `<body>{CONTENT}</body>`

	got := RenderHTMLShell(shell, ShellData{Lang: "en", Title: "Home", Content: "x"})
	if got != "<body>x</body>" {
		t.Errorf("RenderHTMLShell() = %q", got)
	}
}

func TestMissingShellPlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		want  []string
	}{
		{
			name:  "complete shell",
			shell: "{LANG}{TITLE}{CSS_LINKS}{CONTENT}",
			want:  nil,
		},
		{
			name:  "css links are optional",
			shell: "{LANG}{TITLE}{CONTENT}",
			want:  nil,
		},
		{
			name:  "missing content and title",
			shell: "{LANG}",
			want:  []string{ShellTitle, ShellContent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingShellPlaceholders(tt.shell)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MissingShellPlaceholders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBodyAppend(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		fragments map[int]string
		want      string
	}{
		{
			name:      "single component",
			total:     1,
			fragments: map[int]string{0: "  <p>a</p>\n"},
			want:      "\n    <p>a</p>",
		},
		{
			name:      "three components keep order",
			total:     3,
			fragments: map[int]string{0: "<a/>", 1: "<b/>", 2: "<c/>"},
			want:      "\n    <a/>\n    <b/>\n    <c/>",
		},
		{
			name:      "skipped first component drops the leading newline",
			total:     2,
			fragments: map[int]string{1: "<b/>"},
			want:      "    <b/>",
		},
		{
			name:      "skipped last component leaves a trailing newline",
			total:     2,
			fragments: map[int]string{0: "<a/>"},
			want:      "\n    <a/>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Body
			for i := 0; i < tt.total; i++ {
				if f, ok := tt.fragments[i]; ok {
					b.Append(i, tt.total, f)
				}
			}
			if got := b.String(); got != tt.want {
				t.Errorf("Body = %q, want %q", got, tt.want)
			}
		})
	}
}
