// Package config loads CLI configuration from an optional YAML/JSON file and
// PROFILE_ENGINE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/profile-engine/internal/types"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PROFILE_ENGINE_RANKING_TOP_N.
const EnvPrefix = "PROFILE_ENGINE"

// Config is the CLI configuration. All fields are optional; missing values use defaults.
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Ranking   RankingConfig   `mapstructure:"ranking"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Readiness ReadinessConfig `mapstructure:"readiness"`
	Plans     []PlanConfig    `mapstructure:"plans" validate:"dive"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Batch     BatchConfig     `mapstructure:"batch"`
}

// CatalogConfig selects the career catalog. An empty path means the embedded default.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

type RankingConfig struct {
	TopN int `mapstructure:"top_n" validate:"gte=1,lte=100"`
}

// LayoutConfig holds the optional theme hint passed to the strategy selector.
type LayoutConfig struct {
	Theme string `mapstructure:"theme"`
}

// ReadinessConfig holds the target role used when a profile has no career goal.
type ReadinessConfig struct {
	TargetRole string `mapstructure:"target_role"`
}

// PlanConfig is one multi-step plan. Plans are a list rather than a map so plan ids
// keep their case.
type PlanConfig struct {
	ID    string `mapstructure:"id" validate:"required"`
	Steps int    `mapstructure:"steps" validate:"gt=0"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency" validate:"gte=1"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Ranking: RankingConfig{TopN: 3},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Batch:   BatchConfig{Concurrency: 4},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("ranking.top_n", d.Ranking.TopN)
	v.SetDefault("layout.theme", d.Layout.Theme)
	v.SetDefault("readiness.target_role", d.Readiness.TargetRole)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("batch.concurrency", d.Batch.Concurrency)
}

// Load reads the configuration file at path (optional; empty means none), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, &Error{Message: fmt.Sprintf("config file not found: %s", path), Cause: err}
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &Error{Message: "failed to read config file", Cause: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Message: "failed to unmarshal config", Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges, the theme hint and plan id uniqueness.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &Error{
				Key:     fieldKey(fe.Namespace()),
				Message: fmt.Sprintf("failed '%s' check (value %v)", fe.Tag(), fe.Value()),
			}
		}
		return &Error{Message: "invalid configuration", Cause: err}
	}

	if _, err := types.ParseTheme(c.Layout.Theme); err != nil {
		return &Error{Key: "layout.theme", Message: "unknown theme", Cause: err}
	}

	seen := make(map[string]bool, len(c.Plans))
	for _, p := range c.Plans {
		if seen[p.ID] {
			return &Error{Key: "plans", Message: fmt.Sprintf("duplicate plan id %q", p.ID)}
		}
		seen[p.ID] = true
	}
	return nil
}

// fieldKey turns a validator namespace ("Config.Ranking.TopN") into a readable key.
func fieldKey(namespace string) string {
	return strings.ToLower(strings.TrimPrefix(namespace, "Config."))
}

// ThemeHint returns the configured theme hint; ThemeUnset when none is set.
func (c *Config) ThemeHint() types.Theme {
	t, _ := types.ParseTheme(c.Layout.Theme)
	return t
}

// PlanSteps returns the plans as a plan id -> total steps table.
func (c *Config) PlanSteps() map[string]int {
	out := make(map[string]int, len(c.Plans))
	for _, p := range c.Plans {
		out[p.ID] = p.Steps
	}
	return out
}
