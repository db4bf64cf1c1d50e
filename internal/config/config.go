// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	References ReferencesConfig `yaml:"references" mapstructure:"references"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Validate   ValidateConfig   `yaml:"validate" mapstructure:"validate"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// ReferencesConfig locates the reference documents a run resolves against.
type ReferencesConfig struct {
	Dir       string `yaml:"dir" mapstructure:"dir"`
	Thesaurus string `yaml:"thesaurus" mapstructure:"thesaurus"`
}

// OutputConfig configures where cleaned tables and reports are written.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ValidateConfig configures the vocabulary validation pass.
type ValidateConfig struct {
	Workers    int `yaml:"workers" mapstructure:"workers"`
	SampleSize int `yaml:"sample_size" mapstructure:"sample_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SHATABA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("references.dir", "references")
	v.SetDefault("references.thesaurus", "references/collections.xml")
	v.SetDefault("output.dir", "output")
	v.SetDefault("validate.workers", 4)
	v.SetDefault("validate.sample_size", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Check verifies configuration bounds before a run.
func (c *Config) Check() error {
	var problems []string
	if c.References.Dir == "" {
		problems = append(problems, "references.dir is required")
	}
	if c.Output.Dir == "" {
		problems = append(problems, "output.dir is required")
	}
	if c.Validate.Workers < 1 || c.Validate.Workers > 64 {
		problems = append(problems, "validate.workers must be between 1 and 64")
	}
	if c.Validate.SampleSize < 1 {
		problems = append(problems, "validate.sample_size must be >= 1")
	}
	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
