package builder

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/fraglog/internal/config"
)

func testDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", "2026-01-02")
	require.NoError(t, err)
	return date
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "changes")
	require.NoError(t, os.Mkdir(dir, 0o755))

	return &config.Config{
		Context: config.Context{
			Name:    "testproject",
			Version: "1.0.0",
			URL:     "https://github.com/example/testproject",
		},
		Paths: config.Paths{
			Directory: dir,
			Output:    filepath.Join(root, "CHANGELOG.md"),
		},
		Start:   "<!-- fraglog: start -->",
		Levels:  config.Levels{Entry: 2, Section: 3},
		Indents: config.Indents{Heading: "#", Bullet: "-"},
		Formats: config.Formats{
			Title:    "{{.version}} ({{.date}})",
			Fragment: "{{.content}} (#{{.id}})",
		},
		Wrap:  100,
		Order: []string{"security", "feature", "fix"},
		Types: map[string]string{
			"security": "Security",
			"feature":  "Features",
			"fix":      "Fixes",
		},
	}
}

func writeFragment(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	path := filepath.Join(cfg.Paths.Directory, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuildNoFragments(t *testing.T) {
	b, err := New(testConfig(t), testDate(t))
	require.NoError(t, err)

	entry, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "## 1.0.0 (2026-01-02)\n\nNo significant changes.", entry)
}

func TestBuildComposesSectionsInOrder(t *testing.T) {
	cfg := testConfig(t)
	writeFragment(t, cfg, "12.fix", "Fixed the frobnicator.")
	writeFragment(t, cfg, "7.feature", "Added batch mode.")
	writeFragment(t, cfg, "3.fix", "Fixed a typo.")

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)

	entry, err := b.Build()
	require.NoError(t, err)

	want := "## 1.0.0 (2026-01-02)\n\n" +
		"### Features\n\n" +
		"- Added batch mode. (#7)\n\n" +
		"### Fixes\n\n" +
		"- Fixed a typo. (#3)\n\n" +
		"- Fixed the frobnicator. (#12)"
	assert.Equal(t, want, entry)
}

func TestBuildSkipsTypesOutsideOrder(t *testing.T) {
	cfg := testConfig(t)
	writeFragment(t, cfg, "1.fix", "Fixed it.")
	writeFragment(t, cfg, "2.unlisted", "Never shown.")

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)

	entry, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, entry, "Fixed it.")
	assert.NotContains(t, entry, "Never shown.")
}

func TestBuildTextualIDBypassesTemplate(t *testing.T) {
	cfg := testConfig(t)
	writeFragment(t, cfg, "~note.fix", "Just a note.")

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)

	entry, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, entry, "- Just a note.")
	assert.NotContains(t, entry, "(#")
}

func TestBuildWrapsFragments(t *testing.T) {
	cfg := testConfig(t)
	cfg.Wrap = 30
	writeFragment(t, cfg, "1.fix", "Repaired the long standing alignment problem in the renderer.")

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)

	entry, err := b.Build()
	require.NoError(t, err)
	assert.Contains(t, entry, "- Repaired the long standing\n  alignment")
}

func TestBuildDeterministic(t *testing.T) {
	cfg := testConfig(t)
	writeFragment(t, cfg, "2.feature", "Second.")
	writeFragment(t, cfg, "1.feature", "First.")
	writeFragment(t, cfg, "~zeta.fix", "Textual.")

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewRejectsBadTemplateSyntax(t *testing.T) {
	cfg := testConfig(t)
	cfg.Formats.Title = "{{.version"

	_, err := New(cfg, testDate(t))
	assert.ErrorContains(t, err, "title")
}

func TestBuildFailsOnUndefinedField(t *testing.T) {
	cfg := testConfig(t)
	cfg.Formats.Fragment = "{{.nonexistent}}"
	writeFragment(t, cfg, "4.fix", "Something.")

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)

	_, err = b.Build()
	require.Error(t, err)
	assert.ErrorContains(t, err, "4.fix")
}

func TestPreview(t *testing.T) {
	cfg := testConfig(t)
	writeFragment(t, cfg, "1.fix", "Fixed.")

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.Preview(&buf))
	assert.Contains(t, buf.String(), "- Fixed. (#1)")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))

	// Preview never touches the changelog file.
	_, err = os.Stat(cfg.Paths.Output)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteSplicesAfterMarker(t *testing.T) {
	cfg := testConfig(t)
	writeFragment(t, cfg, "1.fix", "Fixed.")
	require.NoError(t, os.WriteFile(cfg.Paths.Output, []byte(
		"# Changelog\n\n<!-- fraglog: start -->\n\n## 0.9.0 (2025-12-01)\n\n- Old. (#9)\n",
	), 0o644))

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)
	require.NoError(t, b.Write())

	got, err := os.ReadFile(cfg.Paths.Output)
	require.NoError(t, err)

	want := "# Changelog\n\n<!-- fraglog: start -->\n\n" +
		"## 1.0.0 (2026-01-02)\n\n### Fixes\n\n- Fixed. (#1)\n" +
		"## 0.9.0 (2025-12-01)\n\n- Old. (#9)\n"
	assert.Equal(t, want, string(got))
}

func TestWriteMissingChangelog(t *testing.T) {
	b, err := New(testConfig(t), testDate(t))
	require.NoError(t, err)

	err = b.Write()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFragmentPaths(t *testing.T) {
	cfg := testConfig(t)
	writeFragment(t, cfg, "1.fix", "Fixed.")
	writeFragment(t, cfg, "notes.txt", "Not a fragment.")

	b, err := New(cfg, testDate(t))
	require.NoError(t, err)

	paths, err := b.FragmentPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(cfg.Paths.Directory, "1.fix")}, paths)
}
