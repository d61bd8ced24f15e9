package usecase

import (
	"path/filepath"

	"github.com/3-lines-studio/landgen/internal/config"
	"github.com/3-lines-studio/landgen/internal/core"
	"github.com/3-lines-studio/landgen/internal/locale"
)

// Language binds a language code to its output file and dictionary.
type Language struct {
	Code string
	// File is the output file name, relative to Site.OutputDir.
	File string
	// LocalePath is read on every run. When empty, Locale is used as is.
	LocalePath string
	Locale     locale.Dictionary
}

// Site is everything one generator run needs. Relative paths are resolved
// against Root.
type Site struct {
	Root           string
	Components     []string
	Languages      []Language
	TemplatePath   string
	Shell          string
	OutputDir      string
	BaseStylesheet string
	Stylesheets    core.StylesheetMode
	// StylesheetLinks are the hrefs used in manual stylesheet mode.
	StylesheetLinks []string
	Escape          core.EscapeMode
	Concurrency     int
	Strict          bool
}

func SiteFromConfig(cfg *config.Config) Site {
	langs := make([]Language, len(cfg.Languages))
	for i, l := range cfg.Languages {
		langs[i] = Language{Code: l.Code, File: l.File, LocalePath: l.Locale}
	}

	return Site{
		Root:            cfg.Root,
		Components:      append([]string(nil), cfg.Components...),
		Languages:       langs,
		TemplatePath:    cfg.Template,
		OutputDir:       cfg.OutputDir,
		BaseStylesheet:  cfg.BaseStylesheet,
		Stylesheets:     core.StylesheetMode(cfg.Stylesheets.Mode),
		StylesheetLinks: append([]string(nil), cfg.Stylesheets.Links...),
		Escape:          core.EscapeMode(cfg.Escape),
		Concurrency:     cfg.Concurrency,
		Strict:          cfg.Strict,
	}
}

func (s *Site) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || s.Root == "" {
		return path
	}
	return filepath.Join(s.Root, path)
}

// outputDir defaults to the site root when OutputDir is empty.
func (s *Site) outputDir() string {
	if s.OutputDir == "" {
		return s.Root
	}
	return s.resolve(s.OutputDir)
}

func (s *Site) outputPath(lang Language) string {
	return filepath.Join(s.outputDir(), lang.File)
}
