package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ebkarlson404/StarFieldMiner/internal/decode"
	"github.com/ebkarlson404/StarFieldMiner/internal/miner"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STARFIELD_MINER_"

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the run configuration.
type Config struct {
	Version   string       `yaml:"version"`
	Inputs    []string     `yaml:"inputs,omitempty"`
	Output    string       `yaml:"output,omitempty"`
	Encoding  string       `yaml:"encoding,omitempty"`
	Delimiter string       `yaml:"delimiter,omitempty"`
	Miner     string       `yaml:"miner,omitempty"`
	KeepGoing bool         `yaml:"keep_going,omitempty"`
	Log       LogConfig    `yaml:"log"`
	Policy    PolicyConfig `yaml:"policy"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// PolicyConfig configures the miner policies. Unset fields take the
// defaults of miner.DefaultPolicy.
type PolicyConfig struct {
	ExplosionFlagGated *bool            `yaml:"explosion_flag_gated,omitempty"`
	CrewRating         CrewRatingConfig `yaml:"crew_rating"`
}

// CrewRatingConfig configures the crew rating property.
type CrewRatingConfig struct {
	Required *bool    `yaml:"required,omitempty"`
	Default  *float64 `yaml:"default,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Encoding == "" {
		c.Encoding = decode.DefaultEncoding
	}

	if c.Delimiter == "" {
		c.Delimiter = "|"
	}

	if c.Miner == "" {
		c.Miner = miner.ShipWeaponName
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Log.Format == "" {
		c.Log.Format = FormatConsole
	}

	dflt := miner.DefaultPolicy()

	if c.Policy.ExplosionFlagGated == nil {
		c.Policy.ExplosionFlagGated = &dflt.ExplosionFlagGated
	}

	if c.Policy.CrewRating.Required == nil {
		c.Policy.CrewRating.Required = &dflt.CrewRating.Required
	}

	if c.Policy.CrewRating.Default == nil {
		c.Policy.CrewRating.Default = &dflt.CrewRating.Default
	}
}

// Marshal serializes a Config to YAML. Parse(Marshal(c)) yields c.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyEnv loads a .env file from the working directory when present and
// overrides fields from STARFIELD_MINER_* variables.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("OUTPUT", &c.Output)
	str("ENCODING", &c.Encoding)
	str("DELIMITER", &c.Delimiter)
	str("MINER", &c.Miner)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	if v, ok := lookup(EnvPrefix + "INPUTS"); ok && strings.TrimSpace(v) != "" {
		c.Inputs = splitList(v)
	}

	var errs []error

	if v, ok := lookup(EnvPrefix + "KEEP_GOING"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sKEEP_GOING: %w", EnvPrefix, err))
		} else {
			c.KeepGoing = b
		}
	}

	if v, ok := lookup(EnvPrefix + "EXPLOSION_FLAG_GATED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sEXPLOSION_FLAG_GATED: %w", EnvPrefix, err))
		} else {
			c.Policy.ExplosionFlagGated = &b
		}
	}

	if v, ok := lookup(EnvPrefix + "CREW_RATING_REQUIRED"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sCREW_RATING_REQUIRED: %w", EnvPrefix, err))
		} else {
			c.Policy.CrewRating.Required = &b
		}
	}

	if v, ok := lookup(EnvPrefix + "CREW_RATING_DEFAULT"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sCREW_RATING_DEFAULT: %w", EnvPrefix, err))
		} else {
			c.Policy.CrewRating.Default = &f
		}
	}

	return errors.Join(errs...)
}

func splitList(v string) []string {
	var out []string

	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Validate checks the configuration for values no run can use.
func (c *Config) Validate() error {
	var errs []error

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter))
	} else if r, _ := utf8.DecodeRuneInString(c.Delimiter); r == '"' || r == '\r' || r == '\n' {
		errs = append(errs, fmt.Errorf("delimiter %q cannot be used", c.Delimiter))
	}

	if _, ok := miner.Lookup(c.Miner); !ok {
		errs = append(errs, fmt.Errorf("unknown miner %q (known: %s)", c.Miner, strings.Join(miner.Names(), ", ")))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("log.format must be %q or %q, got %q", FormatConsole, FormatJSON, c.Log.Format))
	}

	if d := c.Policy.CrewRating.Default; d != nil && *d < 0 {
		errs = append(errs, fmt.Errorf("policy.crew_rating.default must not be negative, got %f", *d))
	}

	return errors.Join(errs...)
}

// DelimiterRune returns the delimiter as a rune. Call after Validate.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// MinerPolicy converts the policy section into a miner.Policy.
func (c *Config) MinerPolicy() miner.Policy {
	p := miner.DefaultPolicy()

	if v := c.Policy.ExplosionFlagGated; v != nil {
		p.ExplosionFlagGated = *v
	}

	if v := c.Policy.CrewRating.Required; v != nil {
		p.CrewRating.Required = *v
	}

	if v := c.Policy.CrewRating.Default; v != nil {
		p.CrewRating.Default = *v
	}

	return p
}
