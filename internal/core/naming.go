package core

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

const DefaultBaseStylesheet = "assets/css/style.css"

type StylesheetMode string

const (
	StylesheetsAuto   StylesheetMode = "auto"
	StylesheetsManual StylesheetMode = "manual"
)

func (m StylesheetMode) Valid() bool {
	return m == StylesheetsAuto || m == StylesheetsManual
}

// ComponentName is the component's file name without directory and without
// a trailing .html. Other extensions are kept: x.htm becomes x.htm.
func ComponentName(componentPath string) string {
	base := filepath.Base(filepath.ToSlash(componentPath))
	name := strings.TrimSuffix(base, ".html")
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// ComponentStylesheetHref derives assets/css/<name>.css for a component.
func ComponentStylesheetHref(componentPath string) string {
	name := ComponentName(componentPath)
	if name == "" {
		return ""
	}
	return path.Join("assets/css", name+".css")
}

func StylesheetLink(href string) string {
	return fmt.Sprintf(`<link rel="stylesheet" href="%s">`, href)
}

// Stylesheets collects the <link> tags for one page. The base link comes
// first and is not indented; following links are indented to line up under
// it inside <head>.
type Stylesheets struct {
	links []string
}

func NewStylesheets(baseHref string) *Stylesheets {
	s := &Stylesheets{}
	if baseHref != "" {
		s.links = append(s.links, StylesheetLink(baseHref))
	}
	return s
}

func (s *Stylesheets) Add(href string) {
	if href == "" {
		return
	}
	link := StylesheetLink(href)
	if len(s.links) > 0 {
		link = "    " + link
	}
	s.links = append(s.links, link)
}

func (s *Stylesheets) Links() []string {
	out := make([]string, len(s.links))
	copy(out, s.links)
	return out
}
