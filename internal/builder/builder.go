// Package builder assembles changelog entries from fragments and
// splices them into the changelog file. A Builder is constructed once
// per invocation; its templates are compiled eagerly so format errors
// surface before any filesystem access, and every Write or Preview is
// a fresh collect-render-compose pipeline with no retained state.
package builder

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/ariel-frischer/fraglog/internal/config"
	"github.com/ariel-frischer/fraglog/internal/fragment"
)

const (
	titleTemplate    = "title"
	fragmentTemplate = "fragment"

	// Fallback section block when no fragments match the configured order.
	noSignificantChanges = "No significant changes."

	// ISO-8601 calendar date, the only date form templates see.
	dateLayout = "2006-01-02"
)

// Builder renders changelog entries for one project at one date.
type Builder struct {
	cfg       *config.Config
	date      time.Time
	templates *template.Template
}

// New compiles the title and fragment templates from cfg.Formats and
// returns a ready Builder. Templates run in strict mode: referencing an
// undefined field fails at render time instead of producing empty
// output. Output is never escaped; changelogs are Markdown, not HTML.
func New(cfg *config.Config, date time.Time) (*Builder, error) {
	root := template.New("formats").
		Funcs(sprig.FuncMap()).
		Option("missingkey=error")

	if _, err := root.New(titleTemplate).Parse(cfg.Formats.Title); err != nil {
		return nil, fmt.Errorf("compiling title format: %w", err)
	}
	if _, err := root.New(fragmentTemplate).Parse(cfg.Formats.Fragment); err != nil {
		return nil, fmt.Errorf("compiling fragment format: %w", err)
	}

	return &Builder{cfg: cfg, date: date, templates: root}, nil
}

// Date returns the build date stamped into the entry title.
func (b *Builder) Date() time.Time { return b.date }

// OutputPath returns the changelog file Write targets.
func (b *Builder) OutputPath() string { return b.cfg.Paths.Output }

// FragmentsDir returns the directory fragments are collected from.
func (b *Builder) FragmentsDir() string { return b.cfg.Paths.Directory }

// FragmentPaths returns the paths of the fragment files the next build
// would consume, for callers that stage or remove them afterwards.
func (b *Builder) FragmentPaths() ([]string, error) {
	return fragment.CollectPaths(b.cfg.Paths.Directory)
}

// contextData exposes the project context fields to templates.
func (b *Builder) contextData() map[string]interface{} {
	return map[string]interface{}{
		"name":    b.cfg.Context.Name,
		"version": b.cfg.Context.Version,
		"url":     b.cfg.Context.URL,
	}
}

// RenderTitle renders the title template against the context fields
// plus the build date.
func (b *Builder) RenderTitle() (string, error) {
	data := b.contextData()
	data["date"] = b.date.Format(dateLayout)

	var sb strings.Builder
	if err := b.templates.ExecuteTemplate(&sb, titleTemplate, data); err != nil {
		return "", fmt.Errorf("rendering title: %w", err)
	}
	return sb.String(), nil
}

// RenderFragment renders the fragment template against the context
// fields plus the fragment's id, type, and content. Fragments with a
// textual id skip templating entirely and yield their raw content;
// textual ids exist precisely to opt a freeform note out of the
// {{.id}}-link format.
func (b *Builder) RenderFragment(frag fragment.Fragment) (string, error) {
	if frag.ID.IsText() {
		return frag.Content, nil
	}

	data := b.contextData()
	data["id"] = frag.ID.String()
	data["type"] = frag.Type
	data["content"] = frag.Content

	var sb strings.Builder
	if err := b.templates.ExecuteTemplate(&sb, fragmentTemplate, data); err != nil {
		return "", fmt.Errorf("rendering fragment %s: %w", frag.Identifier, err)
	}
	return sb.String(), nil
}

func heading(char string, level int) string {
	return strings.Repeat(char, level) + " "
}

func (b *Builder) entryHeading() string {
	return heading(b.cfg.Indents.Heading, b.cfg.Levels.Entry)
}

func (b *Builder) sectionHeading() string {
	return heading(b.cfg.Indents.Heading, b.cfg.Levels.Section)
}

// Build collects fragments and composes the full entry: heading plus
// rendered title, a blank line, then the section block or the
// no-significant-changes fallback.
func (b *Builder) Build() (string, error) {
	title, err := b.RenderTitle()
	if err != nil {
		return "", err
	}

	sections, err := fragment.Collect(b.cfg.Paths.Directory)
	if err != nil {
		return "", err
	}

	block, err := b.buildSections(sections)
	if err != nil {
		return "", err
	}
	if block == "" {
		block = noSignificantChanges
	}

	return b.entryHeading() + title + "\n\n" + block, nil
}

// buildSections renders the sections named by cfg.Order, in that exact
// sequence. A type only appears when it has both a configured display
// title and at least one collected fragment.
func (b *Builder) buildSections(sections fragment.Sections) (string, error) {
	var parts []string
	for _, name := range b.cfg.Order {
		title, ok := b.cfg.Types[name]
		if !ok {
			continue
		}
		frags := sections[name]
		if len(frags) == 0 {
			continue
		}
		section, err := b.buildSection(title, frags)
		if err != nil {
			return "", err
		}
		parts = append(parts, section)
	}
	return strings.Join(parts, "\n\n"), nil
}

func (b *Builder) buildSection(title string, frags []fragment.Fragment) (string, error) {
	var parts []string
	for _, frag := range frags {
		rendered, err := b.RenderFragment(frag)
		if err != nil {
			return "", err
		}
		parts = append(parts, WrapBullet(rendered, b.cfg.Wrap, b.cfg.Indents.Bullet))
	}
	return b.sectionHeading() + title + "\n\n" + strings.Join(parts, "\n\n"), nil
}

// Preview builds the entry and prints it to w without touching the
// changelog file.
func (b *Builder) Preview(w io.Writer) error {
	entry, err := b.Build()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, entry)
	return err
}

// Write builds the entry and splices it into the changelog file after
// the start marker. The file must already exist; the new content is
// composed fully in memory and written in a single truncating write,
// so no partially-updated changelog is ever observable.
func (b *Builder) Write() error {
	entry, err := b.Build()
	if err != nil {
		return err
	}

	path := b.cfg.Paths.Output

	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading changelog %s: %w", path, err)
	}

	composed := Splice(string(existing), b.cfg.Start, entry)

	if err := os.WriteFile(path, []byte(composed), 0o644); err != nil {
		return fmt.Errorf("writing changelog %s: %w", path, err)
	}
	return nil
}
