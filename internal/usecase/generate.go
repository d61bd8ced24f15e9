package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/landgen/internal/adapters/cli"
	"github.com/3-lines-studio/landgen/internal/core"
	"github.com/3-lines-studio/landgen/internal/locale"
	"github.com/3-lines-studio/landgen/internal/templates"
)

var ErrTemplateNotFound = errors.New("template not found")

// Warning is a non-fatal problem found while assembling one page.
type Warning struct {
	Language string
	File     string
	Message  string
}

type PageResult struct {
	Language   string
	OutputPath string
	Included   []string
	Skipped    []string
	Warnings   []Warning
	// Err is set when the page could not be written.
	Err error
}

type GenerateOutput struct {
	Pages   []PageResult
	Success bool
	// Error is set only for failures that stop the whole run.
	Error error
}

func (o GenerateOutput) Warnings() []Warning {
	var out []Warning
	for _, p := range o.Pages {
		out = append(out, p.Warnings...)
	}
	return out
}

type GenerateService struct {
	fs  FileSystem
	cli CLIOutput
	log *slog.Logger
}

func NewGenerateService(fs FileSystem, cli CLIOutput, log *slog.Logger) *GenerateService {
	if log == nil {
		log = slog.Default()
	}
	return &GenerateService{
		fs:  fs,
		cli: cli,
		log: log.With("component", "generate"),
	}
}

// Generate writes one page per language. Problems with individual
// components, locale files or output files are reported and do not stop the
// remaining languages.
func (s *GenerateService) Generate(ctx context.Context, site Site) GenerateOutput {
	s.cli.PrintHeader("Generating pages")

	shell, err := s.loadShell(site)
	if err != nil {
		return GenerateOutput{Success: false, Error: err}
	}

	s.log.Info("HTML generating", "languages", len(site.Languages), "components", len(site.Components))

	pages := make([]PageResult, len(site.Languages))

	limit := site.Concurrency
	if limit < 1 {
		limit = 1
	}
	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, lang := range site.Languages {
		i, lang := i, lang
		g.Go(func() error {
			pages[i] = s.generatePage(ctx, site, shell, lang)
			return nil
		})
	}
	_ = g.Wait()

	report := cli.NewGenerateReport(s.cli, site.outputDir())
	for _, page := range pages {
		s.addToReport(report, page)
	}
	report.Render()

	success := !report.HasFailures()
	if site.Strict && report.WarningCount() > 0 {
		success = false
	}

	return GenerateOutput{Pages: pages, Success: success}
}

func (s *GenerateService) loadShell(site Site) (string, error) {
	if site.Shell != "" {
		return site.Shell, nil
	}
	if site.TemplatePath == "" {
		return templates.DefaultShell(), nil
	}

	path := site.resolve(site.TemplatePath)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, path, err)
	}
	return string(data), nil
}

func (s *GenerateService) generatePage(ctx context.Context, site Site, shell string, lang Language) PageResult {
	log := s.log.With("lang", lang.Code)
	page := PageResult{
		Language:   lang.Code,
		OutputPath: site.outputPath(lang),
	}

	warn := func(file, msg string, args ...any) {
		log.Warn(msg, append([]any{"file", file}, args...)...)
		w := Warning{Language: lang.Code, File: file, Message: msg}
		for i := 0; i+1 < len(args); i += 2 {
			w.Message += fmt.Sprintf(": %v", args[i+1])
		}
		page.Warnings = append(page.Warnings, w)
	}

	if err := ctx.Err(); err != nil {
		page.Err = err
		return page
	}

	if err := core.CheckLanguageCode(lang.Code); err != nil {
		warn("", "invalid language code", "error", err)
	}

	dict := s.loadLocale(site, lang, warn)
	dict = locale.Dictionary(core.NewValueFilter(site.Escape).Apply(dict))

	var body core.Body
	sheets := core.NewStylesheets(site.BaseStylesheet)
	total := len(site.Components)

	for i, component := range site.Components {
		path := site.resolve(component)
		if !s.fs.FileExists(path) {
			warn(component, "component not found")
			page.Skipped = append(page.Skipped, component)
			continue
		}

		data, err := s.fs.ReadFile(path)
		if err != nil {
			warn(component, "failed to read component", "error", err)
			page.Skipped = append(page.Skipped, component)
			continue
		}

		body.Append(i, total, core.ReplaceLocaleKeys(string(data), dict))
		page.Included = append(page.Included, component)

		if site.Stylesheets != core.StylesheetsManual {
			sheets.Add(core.ComponentStylesheetHref(component))
		}
	}

	if site.Stylesheets == core.StylesheetsManual {
		for _, href := range site.StylesheetLinks {
			sheets.Add(href)
		}
	}

	html := core.RenderHTMLShell(shell, core.ShellData{
		Lang:     lang.Code,
		Title:    dict.Title(),
		Content:  body.String(),
		CSSLinks: sheets.Links(),
	})

	if err := s.fs.MkdirAll(filepath.Dir(page.OutputPath), 0755); err != nil {
		page.Err = fmt.Errorf("failed to create output directory: %w", err)
		log.Error("failed to write page", "path", page.OutputPath, "error", page.Err)
		return page
	}
	if err := s.fs.WriteFile(page.OutputPath, []byte(html), 0644); err != nil {
		page.Err = fmt.Errorf("failed to write %s: %w", page.OutputPath, err)
		log.Error("failed to write page", "path", page.OutputPath, "error", err)
		return page
	}

	log.Info("page generated", "path", page.OutputPath, "components", len(page.Included))
	return page
}

func (s *GenerateService) loadLocale(site Site, lang Language, warn func(file, msg string, args ...any)) locale.Dictionary {
	if lang.LocalePath == "" {
		if lang.Locale == nil {
			warn("", "no locale configured, using an empty dictionary")
			return locale.Dictionary{}
		}
		return lang.Locale
	}

	dict, err := locale.Load(s.fs, site.resolve(lang.LocalePath))
	if err != nil {
		warn(lang.LocalePath, "failed to load locale, using an empty dictionary", "error", err)
		return locale.Dictionary{}
	}
	return dict
}

func (s *GenerateService) addToReport(report *cli.GenerateReport, page PageResult) {
	step := cli.PageStep{
		Language:   page.Language,
		OutputPath: page.OutputPath,
		Components: len(page.Included),
		Skipped:    len(page.Skipped),
		Success:    page.Err == nil,
	}
	if page.Err != nil {
		step.Error = page.Err.Error()
	}
	report.AddPage(step)

	for _, w := range page.Warnings {
		report.AddWarning(cli.GenerateIssue{Language: w.Language, File: w.File, Message: w.Message})
	}
	if page.Err != nil {
		report.AddError(cli.GenerateIssue{
			Language: page.Language,
			File:     page.OutputPath,
			Message:  "page not written",
			Details:  []string{page.Err.Error()},
		})
	}
}
