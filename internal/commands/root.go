package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/landgen/internal/adapters/cli"
	"github.com/3-lines-studio/landgen/internal/config"
	"github.com/3-lines-studio/landgen/internal/logger"
	"github.com/3-lines-studio/landgen/internal/usecase"
)

// ErrFailed is returned after a run that already reported its problems.
var ErrFailed = errors.New("run failed")

type flags struct {
	configPath  string
	outputDir   string
	concurrency int
	strict      bool
	logLevel    string
	logFormat   string
	noColor     bool
}

type env struct {
	flags  *flags
	stdout io.Writer
	stderr io.Writer
}

// NewRootCommand builds the landgen command tree. Running the root command
// without a subcommand generates the site.
func NewRootCommand() *cobra.Command {
	return newRootCommand(nil, nil)
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	e := &env{flags: &flags{}, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "landgen",
		Short:         "Generate static landing pages for every language",
		Long:          `landgen stitches HTML components and locale dictionaries into one static page per language.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, e)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&e.flags.configPath, "config", "c", "", "Path to the site config (default ./landgen.yaml)")
	pf.StringVarP(&e.flags.outputDir, "output", "o", "", "Output directory, overrides output_dir")
	pf.IntVar(&e.flags.concurrency, "concurrency", 0, "Number of languages generated in parallel")
	pf.BoolVar(&e.flags.strict, "strict", false, "Fail when any warning is reported")
	pf.StringVar(&e.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&e.flags.logFormat, "log-format", "", "Log format (console, json)")
	pf.BoolVar(&e.flags.noColor, "no-color", false, "Disable coloured output")

	cmd.AddCommand(
		newGenerateCommand(e),
		newDoctorCommand(e),
		newInitCommand(e),
	)

	return cmd
}

func (e *env) output() *cli.Output {
	var out *cli.Output
	if e.stdout != nil {
		out = cli.NewWriterOutput(e.stdout)
	} else {
		out = cli.NewOutput()
	}
	if e.flags.noColor {
		out.DisableColors()
	}
	return out
}

// loadSite reads the config and applies command-line overrides. It also
// installs the default logger, since the log settings live in the config.
func (e *env) loadSite(cmd *cobra.Command) (usecase.Site, *slog.Logger, error) {
	cfg, err := config.Load(e.flags.configPath)
	if err != nil {
		return usecase.Site{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("output") {
		cfg.OutputDir = e.flags.outputDir
	}
	if f.Changed("concurrency") {
		cfg.Concurrency = e.flags.concurrency
	}
	if f.Changed("strict") {
		cfg.Strict = e.flags.strict
	}
	if f.Changed("log-level") {
		cfg.Log.Level = e.flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = e.flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return usecase.Site{}, nil, err
	}

	log := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: e.stderr})
	log.Debug("config loaded", "root", cfg.Root, "languages", len(cfg.Languages), "components", len(cfg.Components))

	return usecase.SiteFromConfig(cfg), log, nil
}
