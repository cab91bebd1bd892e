package lib

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type DatabaseConfig struct {
	DSN     string `toml:"dsn"`
	Query   string `toml:"query"`
	Grammar string `toml:"grammar"`
}

type Config struct {
	LogLevel string         `toml:"log_level"`
	CaseDir  string         `toml:"case_dir"`
	Workers  int            `toml:"workers"`
	Database DatabaseConfig `toml:"database"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		CaseDir:  "./cases",
		Workers:  4,
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown config key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.Database.Grammar != "" {
		if _, err := LookupGrammar(c.Database.Grammar); err != nil {
			return err
		}
	}
	return nil
}
