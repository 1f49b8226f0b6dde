package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/iov-one/vault/errors"
)

// ConfigFile is the name of the node configuration file in the home
// directory.
const ConfigFile = "vaultd.toml"

// Config is the node configuration, read from ConfigFile.
type Config struct {
	// Bind is the address the abci server listens on.
	Bind string `toml:"Bind"`
	// DBPath is the application database. Empty uses an in memory store.
	DBPath string `toml:"DBPath"`
	// Debug returns full error information to clients.
	Debug bool `toml:"Debug"`
	// LogLevel is one of debug, info, error or none.
	LogLevel string `toml:"LogLevel"`
	// MetricsAddress is where prometheus metrics are served. Empty
	// disables metrics.
	MetricsAddress string `toml:"MetricsAddress"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig(home string) Config {
	return Config{
		Bind:           "tcp://localhost:26658",
		DBPath:         filepath.Join(home, "vault.db"),
		LogLevel:       "info",
		MetricsAddress: "",
	}
}

// LoadConfig reads the configuration file from the home directory. If no
// file exists, the default configuration is written and returned.
func LoadConfig(home string) (Config, error) {
	path := filepath.Join(home, ConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig(home)
		return cfg, writeConfig(path, cfg)
	}

	cfg := DefaultConfig(home)
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(errors.ErrInput, "cannot parse %s: %s", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Wrapf(errors.ErrInput, "unknown configuration key %q", undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	var errs error
	if strings.TrimSpace(c.Bind) == "" {
		errs = errors.AppendField(errs, "Bind", errors.ErrEmpty)
	}
	switch c.LogLevel {
	case "debug", "info", "error", "none":
	default:
		errs = errors.AppendField(errs, "LogLevel", errors.Wrapf(errors.ErrInput, "%q", c.LogLevel))
	}
	return errs
}

func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
