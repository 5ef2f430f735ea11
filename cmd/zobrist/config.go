package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	formatHex = "hex"
	formatDec = "dec"
)

// cliConfig holds defaults for flags. The key table itself is not configurable.
type cliConfig struct {
	Backend     string `toml:"backend"`
	Format      string `toml:"format"`
	StreamCount int    `toml:"stream_count"`
	TableStyle  string `toml:"table_style"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Backend:     backendNative,
		Format:      formatHex,
		StreamCount: 16,
		TableStyle:  "rounded",
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cliConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cliConfig{}, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return cliConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return cliConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *cliConfig) normalize() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.TableStyle = strings.ToLower(strings.TrimSpace(c.TableStyle))
}

func (c cliConfig) validate() error {
	if _, ok := backends[c.Backend]; !ok {
		return fmt.Errorf("unknown backend %q (want one of %s)", c.Backend, strings.Join(backendNames(), ", "))
	}
	switch c.Format {
	case formatHex, formatDec:
	default:
		return fmt.Errorf("unknown format %q (want hex or dec)", c.Format)
	}
	if c.StreamCount <= 0 {
		return fmt.Errorf("stream_count must be positive, got %d", c.StreamCount)
	}
	if _, ok := tableStyles[c.TableStyle]; !ok {
		return fmt.Errorf("unknown table_style %q", c.TableStyle)
	}
	return nil
}
