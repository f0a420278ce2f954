package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// FRAGLOG_WRAP=80 or FRAGLOG_START="<!-- begin -->".
const EnvPrefix = "FRAGLOG_"

// WorkspaceFiles are the file names Discover probes for, in order.
var WorkspaceFiles = []string{"fraglog.toml", ".fraglog.toml"}

// Load resolves the configuration from the workspace file at path,
// layered over the built-in defaults and under FRAGLOG_* environment
// overrides. The result is validated before being returned.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("loading workspace config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Discover locates the workspace configuration file in dir.
func Discover(dir string) (string, error) {
	for _, name := range WorkspaceFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no %s found in %s", WorkspaceFiles[0], dir)
}

// envTransform converts environment variable names to config keys.
// Example: FRAGLOG_WRAP -> wrap, FRAGLOG_CONTEXT_NAME -> context.name.
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	// Section names never contain underscores, so the first underscore
	// separates section from field.
	for _, section := range []string{"context", "paths", "levels", "indents", "formats"} {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}
