package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// AppConfig is the per-app section: each of the five backends listens on its
// own port and owns its own database file.
type AppConfig struct {
	Port    int    `mapstructure:"port"`
	DBPath  string `mapstructure:"db_path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type AuthConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Grocery AppConfig  `mapstructure:"grocery"`
	Budget  AppConfig  `mapstructure:"budget"`
	College AppConfig  `mapstructure:"college"`
	Library AppConfig  `mapstructure:"library"`
	Clinic  AppConfig  `mapstructure:"clinic"`
	Auth    AuthConfig `mapstructure:"auth"`
	Log     LogConfig  `mapstructure:"log"`
}

// App returns the section for the named app.
func (c *Config) App(name string) (AppConfig, error) {
	switch strings.ToLower(name) {
	case "grocery":
		return c.Grocery, nil
	case "budget":
		return c.Budget, nil
	case "college":
		return c.College, nil
	case "library":
		return c.Library, nil
	case "clinic":
		return c.Clinic, nil
	}
	return AppConfig{}, fmt.Errorf("unknown app %q", name)
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from the given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in the working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. SUITE_LIBRARY_PORT=9084
		v.SetEnvPrefix("SUITE")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}
