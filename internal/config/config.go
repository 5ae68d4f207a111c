package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	AppName         = "task-tracker"
	DefaultFileName = "tasks.json"
	FileEnv         = "TASK_TRACKER_FILE"

	StorageFile   = "file"
	StorageMemory = "memory"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type StorageConfig struct {
	Type string `yaml:"type"` // "file" or "memory"
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type: StorageFile,
			Path: DefaultFileName,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/task-tracker/config.yml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.yml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName, "config.yml"), nil
}

// Load reads the YAML config at path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Storage.Type = strings.ToLower(strings.TrimSpace(c.Storage.Type))
	switch c.Storage.Type {
	case "":
		c.Storage.Type = StorageFile
	case StorageFile, StorageMemory:
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}

	if strings.TrimSpace(c.Storage.Path) == "" {
		c.Storage.Path = DefaultFileName
	}
	return nil
}

// ApplyOverrides resolves the task file path: flag, then environment, then
// whatever the config file or defaults set.
func (c *Config) ApplyOverrides(fileFlag string, debug bool) {
	if env := strings.TrimSpace(os.Getenv(FileEnv)); env != "" {
		c.Storage.Path = env
	}
	if strings.TrimSpace(fileFlag) != "" {
		c.Storage.Path = fileFlag
	}
	if debug {
		c.Logging.Development = true
		c.Logging.Level = "debug"
	}
}
