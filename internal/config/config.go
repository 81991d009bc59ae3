package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/simplegit/internal/output"
)

const appName = "simplegit"

// ProjectFile is the per-project config file looked up in the working
// directory.
const ProjectFile = ".simplegit.yaml"

// Log formats accepted in log_format.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Config holds the effective settings shared by every host.
type Config struct {
	Root           string        `yaml:"root"            json:"root"`
	Listen         string        `yaml:"listen"          json:"listen"`
	BaseURL        string        `yaml:"base_url"        json:"base_url"`
	GitBinary      string        `yaml:"git_binary"      json:"git_binary"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"`
	LogLevel       string        `yaml:"log_level"       json:"log_level"`
	LogFormat      string        `yaml:"log_format"      json:"log_format"`

	// Sources lists the files and layers that contributed, in order.
	Sources []string `yaml:"-" json:"sources"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Root:      ".",
		Listen:    "127.0.0.1:8765",
		BaseURL:   "/",
		GitBinary: "git",
		LogLevel:  "info",
		LogFormat: FormatText,
		Sources:   []string{"defaults"},
	}
}

// Load returns the defaults overlaid with the YAML file at path. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Resolve builds the effective configuration for a process started in dir:
// defaults, the global config file, the project file in dir, .env files in
// dir, then SIMPLEGIT_* environment variables. Command-line flags are
// applied by the caller afterwards.
func Resolve(dir string) (Config, error) {
	cfg := Default()

	if global := GlobalFile(); global != "" {
		if err := cfg.mergeFile(global); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeFile(filepath.Join(dir, ProjectFile)); err != nil {
		return Config{}, err
	}

	if err := LoadEnvFiles(dir); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()

	return cfg, cfg.Validate()
}

// mergeFile decodes path over the current values. Keys absent from the file
// keep what earlier layers set.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return output.NewSystemErrorWithCause("reading config "+path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return output.NewUserErrorWithCause(fmt.Sprintf("parsing config %s: %v", path, err), err)
	}
	c.Sources = append(c.Sources, path)
	return nil
}

// envOverrides maps environment variables onto fields.
var envOverrides = []struct {
	name  string
	field func(*Config) *string
}{
	{"SIMPLEGIT_ROOT", func(c *Config) *string { return &c.Root }},
	{"SIMPLEGIT_LISTEN", func(c *Config) *string { return &c.Listen }},
	{"SIMPLEGIT_BASE_URL", func(c *Config) *string { return &c.BaseURL }},
	{"SIMPLEGIT_GIT_BINARY", func(c *Config) *string { return &c.GitBinary }},
	{"SIMPLEGIT_LOG_LEVEL", func(c *Config) *string { return &c.LogLevel }},
	{"SIMPLEGIT_LOG_FORMAT", func(c *Config) *string { return &c.LogFormat }},
}

func (c *Config) applyEnv() {
	for _, override := range envOverrides {
		if value := strings.TrimSpace(os.Getenv(override.name)); value != "" {
			*override.field(c) = value
			c.Sources = append(c.Sources, "$"+override.name)
		}
	}
}

// Validate reports settings no host can run with.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return output.NewUserError(fmt.Sprintf("invalid log_level %q: use debug, info, warn, error or fatal", c.LogLevel))
	}
	switch c.LogFormat {
	case FormatText, FormatJSON, FormatLogfmt:
	default:
		return output.NewUserError(fmt.Sprintf("invalid log_format %q: use text, json or logfmt", c.LogFormat))
	}
	if c.RequestTimeout < 0 {
		return output.NewUserError("request_timeout must not be negative")
	}
	if strings.TrimSpace(c.Root) == "" {
		return output.NewUserError("root must not be empty")
	}
	return nil
}
