// Package config provides configuration for the glossary binary.
// Loads from: CLI flags > env vars > glossary.toml > built-in defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"glossary-reader/glossary"
)

// FileName is the config file looked up in the working directory.
const FileName = "glossary.toml"

// Config holds all glossary configuration.
type Config struct {
	Parser  ParserConfig  `toml:"parser"`
	Catalog CatalogConfig `toml:"catalog"`
	Store   StoreConfig   `toml:"store"`
	Log     LogConfig     `toml:"log"`
}

type ParserConfig struct {
	Title string `toml:"title"` // banner line skipped before the first term
}

type CatalogConfig struct {
	Path string `toml:"path"` // empty means the bundled catalog
}

type StoreConfig struct {
	Path string `toml:"path"`
}

// LogConfig controls logrus output. File is only used by the browser, whose
// terminal cannot be shared with log output.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns a Config with all built-in defaults.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{Title: glossary.DefaultTitle},
		Store:  StoreConfig{Path: "glossary.db"},
		Log:    LogConfig{Level: "info", File: "debug.log"},
	}
}

// Load merges defaults, the TOML file and environment variables. path may be
// empty, in which case $GLOSSARY_CONFIG and then ./glossary.toml are tried;
// a missing default file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("GLOSSARY_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = FileName
	}

	if _, err := os.Stat(path); err == nil {
		meta, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
		for _, key := range meta.Undecoded() {
			log.WithFields(log.Fields{
				"key":  key.String(),
				"file": path,
			}).Warn("unknown config key ignored")
		}
	} else if explicit {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	if v := os.Getenv("GLOSSARY_TITLE"); v != "" {
		cfg.Parser.Title = v
	}
	if v := os.Getenv("GLOSSARY_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("GLOSSARY_DB"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("GLOSSARY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	return cfg, nil
}

// LogLevel returns the configured level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
