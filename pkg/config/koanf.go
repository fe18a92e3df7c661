package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fprime-bootstrap/pkg/errors"
	"github.com/arthur-debert/fprime-bootstrap/pkg/logging"
	"github.com/arthur-debert/fprime-bootstrap/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "FPRIME_BOOTSTRAP_"

// userConfigNames are searched for, in order, under the XDG config dirs
var userConfigNames = []string{
	"fprime-bootstrap/config.toml",
	"fprime-bootstrap/config.yaml",
	"fprime-bootstrap/config.yml",
}

var validFormats = map[string]bool{
	"auto": true, "term": true, "terminal": true, "text": true, "plain": true, "json": true,
}

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// ConfigFile is an explicit user config file; it must exist
	ConfigFile string
	// SkipUserConfig disables the XDG config file search
	SkipUserConfig bool
	// SkipEnv disables environment variables
	SkipEnv bool
	// Overrides are flat dotted keys applied last, e.g. "verify.enabled"
	Overrides map[string]interface{}
}

// Default returns the embedded defaults only
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user config file if there is one
	source, err := paths.ExpandHome(opts.ConfigFile)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "invalid config file path")
	}
	if source == "" && !opts.SkipUserConfig {
		source = findUserConfig()
	}
	if source != "" {
		parser, err := parserFor(source)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(source), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded user config")
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg := koanfToConfig(k)
	cfg.Source = source
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps FPRIME_BOOTSTRAP_PROJECT__NAME_PATTERN to project.name_pattern
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// userConfigSearch is swapped in tests
var userConfigSearch = xdg.SearchConfigFile

func findUserConfig() string {
	for _, rel := range userConfigNames {
		if path, err := userConfigSearch(rel); err == nil {
			return path
		}
	}
	return ""
}

// UserConfigPath returns where the primary user config file lives
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, userConfigNames[0])
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config file type %q", path)
	}
}

// koanfToConfig converts a koanf instance to a Config struct
func koanfToConfig(k *koanf.Koanf) *Config {
	cfg := &Config{}

	cfg.Template.Default = k.String("template.default")
	cfg.Project.NamePattern = k.String("project.name_pattern")

	// File permissions
	cfg.Permissions.Directory = k.Int64("permissions.directory")
	cfg.Permissions.File = k.Int64("permissions.file")
	cfg.Permissions.Executable = k.Int64("permissions.executable")

	cfg.Verify.Enabled = k.Bool("verify.enabled")
	cfg.Output.Format = strings.ToLower(k.String("output.format"))

	return cfg
}

// Validate checks the values a run depends on
func (c *Config) Validate() error {
	if c.Template.Default == "" {
		return errors.New(errors.ErrConfigParse, "template.default cannot be empty")
	}
	if _, err := c.NameRegexp(); err != nil {
		return err
	}
	for key, mode := range map[string]int64{
		"permissions.directory":  c.Permissions.Directory,
		"permissions.file":       c.Permissions.File,
		"permissions.executable": c.Permissions.Executable,
	} {
		if mode <= 0 || mode > 0777 {
			return errors.Newf(errors.ErrConfigParse, "%s must be between 1 and 511 (0777), got %d", key, mode)
		}
	}
	if !validFormats[c.Output.Format] {
		return errors.Newf(errors.ErrConfigParse, "output.format %q is not one of auto, term, text, json", c.Output.Format)
	}
	return nil
}
