package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/3-lines-studio/landgen/internal/core"
)

const (
	DefaultConfigName = "landgen"
	EnvPrefix         = "LANDGEN"
)

var (
	ErrNoLanguages     = errors.New("config: at least one language is required")
	ErrDuplicateOutput = errors.New("config: duplicate output file")
	ErrConfigNotFound  = errors.New("config: file not found")
)

type LanguageConfig struct {
	Code   string `mapstructure:"code"`
	File   string `mapstructure:"file"`
	Locale string `mapstructure:"locale"`
}

type StylesheetConfig struct {
	Mode  string   `mapstructure:"mode"`
	Links []string `mapstructure:"links"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	// Root is the directory every relative path is resolved against. It is
	// the directory holding the config file.
	Root string `mapstructure:"-"`

	Template       string           `mapstructure:"template"`
	OutputDir      string           `mapstructure:"output_dir"`
	BaseStylesheet string           `mapstructure:"base_stylesheet"`
	Stylesheets    StylesheetConfig `mapstructure:"stylesheets"`
	Escape         string           `mapstructure:"escape"`
	Concurrency    int              `mapstructure:"concurrency"`
	Strict         bool             `mapstructure:"strict"`
	Components     []string         `mapstructure:"components"`
	Languages      []LanguageConfig `mapstructure:"languages"`
	Log            LogConfig        `mapstructure:"log"`
}

// Load reads the site config at path. When path is empty it looks for
// landgen.yaml in the working directory. Values may be overridden with
// LANDGEN_* variables, which can also come from a .env file next to the
// config.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", v.ConfigFileUsed(), err)
	}

	root, err := filepath.Abs(filepath.Dir(v.ConfigFileUsed()))
	if err != nil {
		return nil, fmt.Errorf("config: failed to resolve site root: %w", err)
	}

	// .env is optional; variables may already be set by the environment.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	cfg.Root = root

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("template", "")
	v.SetDefault("output_dir", ".")
	v.SetDefault("base_stylesheet", core.DefaultBaseStylesheet)
	v.SetDefault("stylesheets.mode", string(core.StylesheetsAuto))
	v.SetDefault("stylesheets.links", []string{})
	v.SetDefault("escape", string(core.EscapeNone))
	v.SetDefault("concurrency", 1)
	v.SetDefault("strict", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate checks the rules that cannot be deferred to generation time.
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return ErrNoLanguages
	}

	seen := make(map[string]string, len(c.Languages))
	for i, lang := range c.Languages {
		if strings.TrimSpace(lang.Code) == "" {
			return fmt.Errorf("config: languages[%d]: code is required", i)
		}
		if strings.TrimSpace(lang.File) == "" {
			return fmt.Errorf("config: languages[%d] (%s): file is required", i, lang.Code)
		}
		key := filepath.Clean(lang.File)
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s used by %s and %s", ErrDuplicateOutput, lang.File, other, lang.Code)
		}
		seen[key] = lang.Code
	}

	if !core.StylesheetMode(c.Stylesheets.Mode).Valid() {
		return fmt.Errorf("config: stylesheets.mode must be auto or manual, got %q", c.Stylesheets.Mode)
	}
	if !core.EscapeMode(c.Escape).Valid() {
		return fmt.Errorf("config: escape must be none, html or sanitize, got %q", c.Escape)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("config: concurrency must be at least 1, got %d", c.Concurrency)
	}

	return nil
}

// Resolve joins a config-relative path onto the site root.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}

func (c *Config) OutputPath(file string) string {
	return filepath.Join(c.Resolve(c.OutputDir), file)
}
