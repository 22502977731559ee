package commands

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/slatedb/byterange-go/byterange"
)

// A Config represents the on-disk configuration of the byterange tool.
type Config struct {
	CacheSize       int    `toml:"cache_size"`
	MaxCachedHeader int    `toml:"max_cached_header"`
	Dir             string `toml:"dir"`
}

func loadConfigFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open configuration file")
	}
	defer func() { _ = file.Close() }()

	var cfg Config
	if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode TOML config")
	}
	return &cfg, nil
}

func (c *Config) parserOptions() byterange.Options {
	return byterange.Options{
		CacheSize:       c.CacheSize,
		MaxCachedHeader: c.MaxCachedHeader,
	}
}
