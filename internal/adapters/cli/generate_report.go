package cli

import (
	"fmt"
	"io"
	"time"
)

type PageStep struct {
	Language   string
	OutputPath string
	Components int
	Skipped    int
	Success    bool
	Error      string
}

type cliOutputWithColors interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Writer() io.Writer
	ErrWriter() io.Writer
}

type GenerateIssue struct {
	Language string
	File     string
	Message  string
	Details  []string
}

type GenerateReport struct {
	colors      cliOutputWithColors
	pages       []PageStep
	warnings    []GenerateIssue
	errors      []GenerateIssue
	startTime   time.Time
	outputDir   string
	hasFailures bool
}

func NewGenerateReport(colors cliOutputWithColors, outputDir string) *GenerateReport {
	return &GenerateReport{
		colors:    colors,
		pages:     make([]PageStep, 0),
		warnings:  make([]GenerateIssue, 0),
		errors:    make([]GenerateIssue, 0),
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *GenerateReport) AddPage(step PageStep) {
	r.pages = append(r.pages, step)
	if !step.Success {
		r.hasFailures = true
	}
}

func (r *GenerateReport) AddWarning(issue GenerateIssue) {
	r.warnings = append(r.warnings, issue)
}

func (r *GenerateReport) AddError(issue GenerateIssue) {
	r.errors = append(r.errors, issue)
	r.hasFailures = true
}

func (r *GenerateReport) HasFailures() bool {
	return r.hasFailures
}

func (r *GenerateReport) WarningCount() int {
	return len(r.warnings)
}

func (r *GenerateReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *GenerateReport) renderMinimal(duration time.Duration) {
	out := r.colors.Writer()

	for _, page := range r.pages {
		fmt.Fprintf(out, "  "+r.colors.Green("✓ ")+"%s %s (%d components)\n", page.Language, page.OutputPath, page.Components)
	}
	fmt.Fprintf(out, "  "+r.colors.Green("✓ ")+"Generated %d pages in %s\n", len(r.pages), formatDuration(duration))

	if r.outputDir != "" {
		fmt.Fprintf(out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *GenerateReport) renderVerbose(duration time.Duration) {
	out := r.colors.Writer()
	errOut := r.colors.ErrWriter()

	for _, page := range r.pages {
		status := r.colors.Green("✓")
		if !page.Success {
			status = r.colors.Red("✗")
		}
		line := fmt.Sprintf("  %s %s %s (%d components", status, page.Language, page.OutputPath, page.Components)
		if page.Skipped > 0 {
			line += fmt.Sprintf(", %d skipped", page.Skipped)
		}
		fmt.Fprintln(out, line+")")
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(errOut, "  "+r.colors.Red("✗ ")+"Errors (%d):\n", len(r.errors))
		r.renderIssues(errOut, r.colors.Red("✗"), r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  "+r.colors.Yellow("⚠ ")+"Warnings (%d):\n", len(r.warnings))
		r.renderIssues(out, r.colors.Yellow("⚠"), r.warnings)
	}

	fmt.Fprintln(out)
	if r.hasFailures {
		fmt.Fprintf(errOut, "  %s\n", r.colors.Red(fmt.Sprintf("Generation finished with errors after %s", formatDuration(duration))))
	} else {
		fmt.Fprintf(out, "  "+r.colors.Green("✓ ")+"Generated %d pages in %s\n", len(r.pages), formatDuration(duration))
	}

	if r.outputDir != "" {
		fmt.Fprintf(out, "\n  %s\n", r.colors.Gray("Output: "+r.outputDir))
	}
}

func (r *GenerateReport) renderIssues(w io.Writer, marker string, issues []GenerateIssue) {
	for _, issue := range issues {
		subject := issue.Language
		if issue.File != "" {
			subject += " " + issue.File
		}
		fmt.Fprintf(w, "  %s %s\n", marker, subject)
		fmt.Fprintf(w, "    %s\n", issue.Message)

		for _, detail := range deduplicateStrings(issue.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	seen := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] == 0 {
			order = append(order, item)
		}
		seen[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if count := seen[item]; count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}

	return result
}
