package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Export ExportConfig `mapstructure:"export"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type ExportConfig struct {
	Format   string `mapstructure:"format"`   // json or yaml
	Document string `mapstructure:"document"` // all, policy or users
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("esa")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("../..")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("export.format", "json")
	v.SetDefault("export.document", "all")

	v.SetEnvPrefix("esa")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
