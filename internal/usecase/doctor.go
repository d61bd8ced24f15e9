package usecase

import (
	"fmt"
	"strings"

	"github.com/3-lines-studio/landgen/internal/core"
	"github.com/3-lines-studio/landgen/internal/locale"
	"github.com/3-lines-studio/landgen/internal/templates"
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

type Finding struct {
	Severity Severity
	Subject  string
	Message  string
}

type DoctorOutput struct {
	Findings []Finding
	Success  bool
}

func (o DoctorOutput) Count(sev Severity) int {
	n := 0
	for _, f := range o.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// DoctorService inspects a site without writing any page.
type DoctorService struct {
	fs  FileSystem
	cli CLIOutput
}

func NewDoctorService(fs FileSystem, cli CLIOutput) *DoctorService {
	return &DoctorService{fs: fs, cli: cli}
}

func (s *DoctorService) Check(site Site) DoctorOutput {
	s.cli.PrintHeader("Site doctor")

	var out DoctorOutput
	add := func(sev Severity, subject, format string, args ...any) {
		f := Finding{Severity: sev, Subject: subject, Message: fmt.Sprintf(format, args...)}
		out.Findings = append(out.Findings, f)
		if sev == SeverityError {
			s.cli.PrintError("%s: %s", f.Subject, f.Message)
		} else {
			s.cli.PrintWarning("%s: %s", f.Subject, f.Message)
		}
	}

	shell := site.Shell
	if shell == "" && site.TemplatePath != "" {
		data, err := s.fs.ReadFile(site.resolve(site.TemplatePath))
		if err != nil {
			add(SeverityError, site.TemplatePath, "template cannot be read: %v", err)
		} else {
			shell = string(data)
		}
	} else if shell == "" {
		shell = templates.DefaultShell()
	}
	if shell != "" {
		if missing := core.MissingShellPlaceholders(shell); len(missing) > 0 {
			add(SeverityWarning, "template", "missing %s", strings.Join(missing, ", "))
		}
	}

	contents := make(map[string]string, len(site.Components))
	checked := make(map[string]bool, len(site.Components))
	for _, component := range site.Components {
		if checked[component] {
			continue
		}
		checked[component] = true
		data, err := s.fs.ReadFile(site.resolve(component))
		if err != nil {
			add(SeverityError, component, "component cannot be read: %v", err)
			continue
		}
		contents[component] = string(data)
	}

	for _, lang := range site.Languages {
		if err := core.CheckLanguageCode(lang.Code); err != nil {
			add(SeverityError, lang.Code, "%v", err)
		} else if canonical := core.CanonicalLanguage(lang.Code); canonical != lang.Code {
			add(SeverityWarning, lang.Code, "language code is usually written %s", canonical)
		}

		dict := lang.Locale
		if lang.LocalePath != "" {
			loaded, err := locale.Load(s.fs, site.resolve(lang.LocalePath))
			if err != nil {
				add(SeverityError, lang.LocalePath, "locale cannot be loaded: %v", err)
				continue
			}
			dict = loaded
		}

		if _, ok := dict[locale.TitleKey]; !ok {
			add(SeverityWarning, lang.Code, "locale has no %q key", locale.TitleKey)
		}

		for _, component := range site.Components {
			content, ok := contents[component]
			if !ok {
				continue
			}
			if missing := core.MissingKeys(content, dict); len(missing) > 0 {
				add(SeverityWarning, lang.Code+" "+component, "untranslated placeholders: %s", strings.Join(missing, ", "))
			}
		}
	}

	errCount := out.Count(SeverityError)
	warnCount := out.Count(SeverityWarning)
	out.Success = errCount == 0 && (!site.Strict || warnCount == 0)

	if len(out.Findings) == 0 {
		s.cli.PrintSuccess("%d components and %d languages look fine", len(site.Components), len(site.Languages))
	} else {
		s.cli.PrintDone("\n  %d errors, %d warnings", errCount, warnCount)
	}

	return out
}
