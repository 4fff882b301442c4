package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds cdxmlctl's own settings, loaded from a file parsed as YAML
// via viper (by default a file named cdxmlctl in the working directory,
// then in the home directory; override with --config).
type Config struct {
	// ConditionRules names extra condition kinds as expr-lang boolean
	// expressions, merged on top of the five built-in kinds. See
	// condition.Env for the fields an expression can reference.
	ConditionRules map[string]string `mapstructure:"condition_rules"`
}

// loadConfig reads configPath if set, otherwise searches the default
// locations; a missing file is not an error, it just means defaults only.
func loadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cdxmlctl")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return &Config{}, nil
		}
		if configPath != "" && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
