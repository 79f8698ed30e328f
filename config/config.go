// Package config loads run-time logging configuration from YAML.
//
// A configuration file sets the default level, the color mode and any
// per-tag overrides:
//
//	default: info
//	colors: auto
//	tags:
//	  wifi: warn
//	  dhcp: verbose
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/silvermode/go-taglog/taglog"
)

// Config is a validated logging configuration.
type Config struct {
	// DefaultLevel applies to tags without an override.
	DefaultLevel taglog.Level
	// Colors selects ANSI decoration.
	Colors taglog.ColorMode
	// Tags holds per-tag level overrides.
	Tags map[string]taglog.Level
}

// rawConfig mirrors the YAML document before validation.
type rawConfig struct {
	Default string            `yaml:"default"`
	Colors  string            `yaml:"colors"`
	Tags    map[string]string `yaml:"tags"`
}

// Default returns the configuration used when no file is given: info
// default level, automatic colors, no overrides.
func Default() *Config {
	return &Config{
		DefaultLevel: taglog.LevelInfo,
		Colors:       taglog.ColorAuto,
		Tags:         map[string]taglog.Level{},
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration document. Unknown keys and unknown
// level or color names are rejected. An empty document yields Default().
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode yaml")
	}

	cfg := Default()
	if raw.Default != "" {
		lv, err := taglog.ParseLevel(raw.Default)
		if err != nil {
			return nil, errors.Wrap(err, "default level")
		}
		cfg.DefaultLevel = lv
	}
	if raw.Colors != "" {
		mode, err := taglog.ParseColorMode(raw.Colors)
		if err != nil {
			return nil, errors.Wrap(err, "colors")
		}
		cfg.Colors = mode
	}
	for tag, name := range raw.Tags {
		if tag == "" || tag == taglog.Wildcard {
			return nil, errors.Errorf("invalid tag %q: set the default key instead", tag)
		}
		lv, err := taglog.ParseLevel(name)
		if err != nil {
			return nil, errors.Wrapf(err, "tag %s", tag)
		}
		cfg.Tags[tag] = lv
	}
	return cfg, nil
}

// Apply installs the configuration on l. The default level is set first
// through the wildcard, clearing any previous per-tag entries, then the
// overrides are added.
func (c *Config) Apply(l *taglog.Logger) {
	l.SetLevel(taglog.Wildcard, c.DefaultLevel)
	l.SetColors(c.Colors)
	for tag, lv := range c.Tags {
		l.SetLevel(tag, lv)
	}
}
