// Package config provides workspace configuration for fraglog using
// koanf. Configuration is loaded with priority: environment variables
// (FRAGLOG_*) > workspace file (fraglog.toml) > built-in defaults.
package config

// Context holds project metadata exposed to the title and fragment
// templates. It is required and has no defaults.
type Context struct {
	// Name is the name of the project.
	Name string `koanf:"name"`
	// Version is the version being released.
	Version string `koanf:"version"`
	// URL is the project URL, typically the repository.
	URL string `koanf:"url"`
}

// Paths locates the fragments directory and the changelog file.
type Paths struct {
	// Directory is the directory containing fragment files.
	Directory string `koanf:"directory"`
	// Output is the changelog file entries are written into.
	Output string `koanf:"output"`
}

// Levels selects the heading levels for the entry title and for
// individual sections.
type Levels struct {
	Entry   int `koanf:"entry"`
	Section int `koanf:"section"`
}

// Indents selects the characters used for headings and bullets.
// Each value must be a single character.
type Indents struct {
	Heading string `koanf:"heading"`
	Bullet  string `koanf:"bullet"`
}

// Formats holds the Go text/template sources used to render the entry
// title and each fragment. Title templates see the context fields plus
// {{.date}}; fragment templates see the context fields plus {{.id}},
// {{.type}}, and {{.content}}.
type Formats struct {
	Title    string `koanf:"title"`
	Fragment string `koanf:"fragment"`
}

// Config is the fully resolved fraglog configuration. The builder only
// reads from it; defaults are applied during loading, never downstream.
type Config struct {
	Context Context `koanf:"context"`
	Paths   Paths   `koanf:"paths"`

	// Start marks the location in the changelog after which new entries
	// are inserted. When absent from the file, entries go on top.
	Start string `koanf:"start"`

	Levels  Levels  `koanf:"levels"`
	Indents Indents `koanf:"indents"`
	Formats Formats `koanf:"formats"`

	// Wrap is the column width entries are wrapped to.
	Wrap int `koanf:"wrap"`

	// Order lists which fragment types appear and in what sequence.
	// Types missing from it are never rendered.
	Order []string `koanf:"order"`

	// Types maps fragment type names to section display titles.
	// User-supplied entries extend the default mapping.
	Types map[string]string `koanf:"types"`
}
