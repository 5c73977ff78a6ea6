package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application settings for both the web server and the
// CLI. Every field has a working default so the binary runs with no
// config file at all.
type Config struct {
	Addr       string `mapstructure:"addr"`
	DigestsDir string `mapstructure:"digests_dir"`
	ToolsFile  string `mapstructure:"tools_file"`
	NVD        NVD    `mapstructure:"nvd"`
}

type NVD struct {
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Load reads configuration from the given file, falling back to
// defaults and RISK_DIGEST_* environment variables. An empty path skips
// the file entirely.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8000")
	v.SetDefault("digests_dir", "data/digests")
	v.SetDefault("tools_file", "data/tools.json")
	v.SetDefault("nvd.base_url", "https://services.nvd.nist.gov/rest/json/cves/2.0")
	v.SetDefault("nvd.cache_ttl", time.Hour)

	v.SetEnvPrefix("RISK_DIGEST")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
