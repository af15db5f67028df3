// Package config loads process-wide defaults from an INI file, which
// CLI flags then override. go-ini/ini is the parser; this package only
// adds the handful of typed fields the driver needs.
package config

import (
	"github.com/go-ini/ini"

	"github.com/opengm/gmrts/internal/errors"
)

// Config holds the defaults a gmrts run reads from disk before CLI
// flags override them.
type Config struct {
	Mode    string
	Workers int
	Cache   string
	Alpha   float64
}

// Default returns the built-in defaults, used when no config file is
// given.
func Default() Config {
	return Config{Mode: "parallel", Workers: 0, Cache: "", Alpha: 0.01}
}

// Load reads an INI file at path, starting from Default() and
// overriding only the keys present under the [gmrts] section.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := ini.Load(path)
	if err != nil {
		return cfg, errors.E(errors.IO, "config: loading "+path, err)
	}
	sec := f.Section("gmrts")
	if sec.HasKey("mode") {
		cfg.Mode = sec.Key("mode").String()
	}
	if sec.HasKey("workers") {
		cfg.Workers = sec.Key("workers").MustInt(cfg.Workers)
	}
	if sec.HasKey("cache") {
		cfg.Cache = sec.Key("cache").String()
	}
	if sec.HasKey("alpha") {
		cfg.Alpha = sec.Key("alpha").MustFloat64(cfg.Alpha)
	}
	return cfg, nil
}
