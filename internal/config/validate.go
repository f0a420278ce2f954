package config

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks that a resolved Config satisfies the constraints the
// builder relies on. Returns the first violation found.
func Validate(cfg *Config) error {
	if cfg.Context.Name == "" {
		return fmt.Errorf("context.name is required")
	}
	if cfg.Context.Version == "" {
		return fmt.Errorf("context.version is required")
	}
	if cfg.Paths.Directory == "" {
		return fmt.Errorf("paths.directory must not be empty")
	}
	if cfg.Paths.Output == "" {
		return fmt.Errorf("paths.output must not be empty")
	}
	if cfg.Start == "" {
		return fmt.Errorf("start marker must not be empty")
	}
	if cfg.Levels.Entry < 1 {
		return fmt.Errorf("levels.entry must be at least 1, got %d", cfg.Levels.Entry)
	}
	if cfg.Levels.Section < 1 {
		return fmt.Errorf("levels.section must be at least 1, got %d", cfg.Levels.Section)
	}
	if utf8.RuneCountInString(cfg.Indents.Heading) != 1 {
		return fmt.Errorf("indents.heading must be a single character, got %q", cfg.Indents.Heading)
	}
	if utf8.RuneCountInString(cfg.Indents.Bullet) != 1 {
		return fmt.Errorf("indents.bullet must be a single character, got %q", cfg.Indents.Bullet)
	}
	if cfg.Formats.Title == "" {
		return fmt.Errorf("formats.title must not be empty")
	}
	if cfg.Formats.Fragment == "" {
		return fmt.Errorf("formats.fragment must not be empty")
	}
	if cfg.Wrap < 1 {
		return fmt.Errorf("wrap must be at least 1, got %d", cfg.Wrap)
	}
	return nil
}
