// Package fragment implements parsing, loading, and collection of
// changelog fragment files. A fragment is a small text file describing
// one notable change; its file name carries the identifier in the form
// {id}.{type}, optionally followed by an ignored suffix such as an
// extension ("42.fix.md").
package fragment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TextIDPrefix marks a fragment id as textual rather than numeric.
// Textual ids opt the fragment out of the templated id-link format.
const TextIDPrefix = "~"

var (
	// ErrUnexpectedEnd indicates a name with fewer than the two required
	// dot-separated segments, or an empty type segment.
	ErrUnexpectedEnd = errors.New("fragment names must start with {id}.{type}")

	// ErrInvalidID indicates an id segment that is neither an unsigned
	// integer nor prefixed with TextIDPrefix.
	ErrInvalidID = errors.New("fragment ids are integers unless prefixed with ~")

	// ErrInvalidName indicates a file name that is not valid UTF-8.
	ErrInvalidName = errors.New("fragment file names must be valid UTF-8")

	// ErrInvalidContent indicates file contents that are not valid UTF-8.
	ErrInvalidContent = errors.New("fragment contents must be valid UTF-8")
)

// ParseError reports a fragment file name that could not be parsed.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing fragment name %q: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ID is the identifier portion of a fragment name: either an unsigned
// integer (the usual case, linking the fragment to an issue or pull
// request number) or free text introduced by TextIDPrefix.
type ID struct {
	number  uint64
	text    string
	textual bool
}

// NumericID returns the numeric id n.
func NumericID(n uint64) ID { return ID{number: n} }

// TextID returns the textual id s (without the prefix character).
func TextID(s string) ID { return ID{text: s, textual: true} }

// IsText reports whether the id is textual.
func (id ID) IsText() bool { return id.textual }

// Number returns the numeric value; zero for textual ids.
func (id ID) Number() uint64 { return id.number }

// Text returns the textual value; empty for numeric ids.
func (id ID) Text() string { return id.text }

func (id ID) String() string {
	if id.textual {
		return id.text
	}
	return strconv.FormatUint(id.number, 10)
}

// Less defines the total order used within sections: numeric ids sort
// numerically and before every textual id; textual ids sort
// lexicographically among themselves.
func (id ID) Less(other ID) bool {
	if id.textual != other.textual {
		return !id.textual
	}
	if id.textual {
		return id.text < other.text
	}
	return id.number < other.number
}

// Identifier is the structured form of a fragment file name.
type Identifier struct {
	ID   ID
	Type string
}

func (ident Identifier) String() string {
	if ident.ID.IsText() {
		return TextIDPrefix + ident.ID.Text() + "." + ident.Type
	}
	return ident.ID.String() + "." + ident.Type
}

// ParseIdentifier parses {id}.{type} from a fragment file name. Only
// the first two dot-separated segments are consumed; anything after the
// second dot is ignored.
func ParseIdentifier(name string) (Identifier, error) {
	parts := strings.SplitN(name, ".", 3)
	if len(parts) < 2 || parts[1] == "" {
		return Identifier{}, &ParseError{Name: name, Err: ErrUnexpectedEnd}
	}

	raw, typeName := parts[0], parts[1]

	if text, ok := strings.CutPrefix(raw, TextIDPrefix); ok {
		return Identifier{ID: TextID(text), Type: typeName}, nil
	}

	number, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return Identifier{}, &ParseError{Name: name, Err: fmt.Errorf("%w: %q", ErrInvalidID, raw)}
	}

	return Identifier{ID: NumericID(number), Type: typeName}, nil
}

// Validate checks that name is a well-formed fragment file name,
// discarding the parsed identifier. Fragment creation uses it to reject
// bad names before any file is written, and CollectPaths uses it so
// that removal and loading agree on what counts as a fragment.
func Validate(name string) error {
	_, err := ParseIdentifier(name)
	return err
}

// LoadError reports a fragment file that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading fragment %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Fragment is one loaded change note. Content is the file contents
// trimmed of surrounding whitespace; fragments are never written back.
type Fragment struct {
	Identifier
	Content string
}

// Load reads the fragment file at path. The file name must parse as an
// identifier and both the name and the contents must be valid UTF-8.
func Load(path string) (Fragment, error) {
	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		return Fragment{}, &LoadError{Path: path, Err: ErrInvalidName}
	}

	ident, err := ParseIdentifier(name)
	if err != nil {
		return Fragment{}, &LoadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Fragment{}, &LoadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return Fragment{}, &LoadError{Path: path, Err: ErrInvalidContent}
	}

	return Fragment{Identifier: ident, Content: strings.TrimSpace(string(data))}, nil
}
