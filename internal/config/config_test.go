package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalWorkspace = `[context]
name = "testproject"
version = "1.2.3"
url = "https://github.com/example/testproject"
`

func writeWorkspace(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fraglog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeWorkspace(t, minimalWorkspace))
	require.NoError(t, err)

	assert.Equal(t, "testproject", cfg.Context.Name)
	assert.Equal(t, "1.2.3", cfg.Context.Version)
	assert.Equal(t, "changes", cfg.Paths.Directory)
	assert.Equal(t, "CHANGELOG.md", cfg.Paths.Output)
	assert.Equal(t, "<!-- fraglog: start -->", cfg.Start)
	assert.Equal(t, 2, cfg.Levels.Entry)
	assert.Equal(t, 3, cfg.Levels.Section)
	assert.Equal(t, "#", cfg.Indents.Heading)
	assert.Equal(t, "-", cfg.Indents.Bullet)
	assert.Equal(t, 100, cfg.Wrap)
	assert.Equal(t, []string{"security", "feature", "change", "fix", "deprecation", "removal", "internal"}, cfg.Order)
	assert.Equal(t, "Fixes", cfg.Types["fix"])
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeWorkspace(t, minimalWorkspace+`
start = "<!-- begin -->"
wrap = 80
order = ["fix", "feature"]

[levels]
entry = 1
section = 2

[types]
epic = "Epics"
fix = "Bug Fixes"
`))
	require.NoError(t, err)

	assert.Equal(t, "<!-- begin -->", cfg.Start)
	assert.Equal(t, 80, cfg.Wrap)
	assert.Equal(t, 1, cfg.Levels.Entry)
	assert.Equal(t, []string{"fix", "feature"}, cfg.Order)

	// User types extend the defaults rather than replacing them.
	assert.Equal(t, "Epics", cfg.Types["epic"])
	assert.Equal(t, "Bug Fixes", cfg.Types["fix"])
	assert.Equal(t, "Features", cfg.Types["feature"])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FRAGLOG_WRAP", "72")
	t.Setenv("FRAGLOG_CONTEXT_VERSION", "9.9.9")

	cfg, err := Load(writeWorkspace(t, minimalWorkspace))
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.Wrap)
	assert.Equal(t, "9.9.9", cfg.Context.Version)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"missing context name": `[context]
version = "1.0.0"
url = "https://example.com"
`,
		"zero wrap": minimalWorkspace + "wrap = 0\n",
		"multi-character bullet": minimalWorkspace + `[indents]
bullet = "--"
`,
		"empty title format": minimalWorkspace + `[formats]
title = ""
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeWorkspace(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "fraglog.toml"))
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	t.Run("finds fraglog.toml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "fraglog.toml")
		require.NoError(t, os.WriteFile(path, []byte(minimalWorkspace), 0o644))

		found, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("falls back to hidden file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".fraglog.toml")
		require.NoError(t, os.WriteFile(path, []byte(minimalWorkspace), 0o644))

		found, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Discover(t.TempDir())
		assert.Error(t, err)
	})
}
