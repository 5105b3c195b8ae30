package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// storage
	ProgramFile string `toml:"program_file"`
	WorkoutFile string `toml:"workout_file"`
	// logging
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	LogJSON     bool   `toml:"log_json"`
	LogToStderr bool   `toml:"log_to_stderr"`
}

// DataDir is where gymtrack keeps its files unless configured otherwise.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "gymtrack")
}

// DefaultPath is the config file looked up when none is given.
func DefaultPath() string {
	return filepath.Join(homeDir(), ".config", "gymtrack", "config.toml")
}

func Default() *Config {
	return &Config{
		ProgramFile: filepath.Join(DataDir(), "program.json"),
		WorkoutFile: filepath.Join(DataDir(), "workouts.csv"),
		LogLevel:    "warn",
		LogToStderr: true,
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file is
// not an error. Relative store paths are resolved against the config file's
// directory.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	dir := filepath.Dir(path)
	cfg.ProgramFile = resolve(dir, cfg.ProgramFile)
	cfg.WorkoutFile = resolve(dir, cfg.WorkoutFile)
	cfg.LogFile = resolve(dir, cfg.LogFile)

	return cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
