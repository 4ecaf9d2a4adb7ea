package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bayneri/eventmargin/internal/monitoring"
	"github.com/bayneri/eventmargin/internal/preset"
	"github.com/spf13/viper"
)

const EnvPrefix = "EVENTMARGIN"

type Config struct {
	Currency      string `mapstructure:"currency"`
	Project       string `mapstructure:"project"`
	MetricPrefix  string `mapstructure:"metric_prefix"`
	OutDir        string `mapstructure:"out_dir"`
	DefaultPreset string `mapstructure:"default_preset"`
}

// Load reads path, or ./eventmargin.yaml when path is empty. A missing
// default file is not an error; EVENTMARGIN_* variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("eventmargin")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("currency", "€")
	v.SetDefault("project", "")
	v.SetDefault("metric_prefix", monitoring.DefaultPrefix)
	v.SetDefault("out_dir", "out")
	v.SetDefault("default_preset", "live-music")
}

func (c *Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Currency) == "" {
		errs = append(errs, "currency must not be empty")
	}
	if !strings.HasPrefix(c.MetricPrefix, "custom.googleapis.com/") && !strings.HasPrefix(c.MetricPrefix, "external.googleapis.com/") {
		errs = append(errs, "metric_prefix must start with custom.googleapis.com/ or external.googleapis.com/")
	}
	if _, err := preset.Lookup(c.DefaultPreset); err != nil {
		errs = append(errs, "default_preset: "+err.Error())
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
