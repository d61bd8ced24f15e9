// Package landgen assembles static landing pages from HTML components and
// per-language locale dictionaries, writing one page per language.
package landgen

import (
	"context"
	"io"
	"log/slog"

	"github.com/3-lines-studio/landgen/internal/adapters/cli"
	"github.com/3-lines-studio/landgen/internal/adapters/fs"
	"github.com/3-lines-studio/landgen/internal/config"
	"github.com/3-lines-studio/landgen/internal/core"
	"github.com/3-lines-studio/landgen/internal/logger"
	"github.com/3-lines-studio/landgen/internal/templates"
	"github.com/3-lines-studio/landgen/internal/usecase"
)

type Site = usecase.Site

type Language = usecase.Language

type Result = usecase.GenerateOutput

type PageResult = usecase.PageResult

type Warning = usecase.Warning

type StylesheetMode = core.StylesheetMode

type EscapeMode = core.EscapeMode

const (
	StylesheetsAuto   = core.StylesheetsAuto
	StylesheetsManual = core.StylesheetsManual

	EscapeNone     = core.EscapeNone
	EscapeHTML     = core.EscapeHTML
	EscapeSanitize = core.EscapeSanitize
)

var ErrTemplateNotFound = usecase.ErrTemplateNotFound

type Option func(*options)

type options struct {
	log    *slog.Logger
	report io.Writer
	fs     fs.FileSystem
}

// WithLogger sends generator logs to l. Logs are dropped by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithReportWriter prints the per-language report to w.
func WithReportWriter(w io.Writer) Option {
	return func(o *options) { o.report = w }
}

func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) { o.fs = fsys }
}

// Load reads a site from a landgen.yaml file.
func Load(configPath string) (*Site, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	site := usecase.SiteFromConfig(cfg)
	return &site, nil
}

// Components returns the configured component list in page order.
func Components(site *Site) []string {
	return append([]string(nil), site.Components...)
}

// Languages returns the configured language descriptors in output order.
func Languages(site *Site) []Language {
	return append([]Language(nil), site.Languages...)
}

// Generate writes one page per language of site. Problems with single
// components, locales or output files are reported in the result; the
// returned error is set only when nothing could be generated.
func Generate(ctx context.Context, site *Site, opts ...Option) (*Result, error) {
	o := options{
		log:    logger.Discard(),
		report: io.Discard,
		fs:     fs.NewOSFileSystem(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	svc := usecase.NewGenerateService(o.fs, cli.NewWriterOutput(o.report), o.log)
	out := svc.Generate(ctx, *site)
	if out.Error != nil {
		return &out, out.Error
	}
	return &out, nil
}

// DefaultShell is the page template used when a site sets none.
func DefaultShell() string {
	return templates.DefaultShell()
}
