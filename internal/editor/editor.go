// Package editor launches the user's text editor on a file, the way
// git does for commit messages.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

const fallbackEditor = "vi"

// Resolve returns the editor command to use: $VISUAL, then $EDITOR,
// then vi. The value may contain arguments ("code --wait").
func Resolve() string {
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	return fallbackEditor
}

// Open launches the resolved editor on path, attached to the current
// terminal, and blocks until it exits. It refuses to launch when stdin
// is not a terminal, since a full-screen editor would garble piped
// input.
func Open(path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("refusing to open editor: stdin is not a terminal")
	}
	return OpenWith(Resolve(), path)
}

// OpenWith launches the given editor command on path. The command is
// split on whitespace; the first field is the binary, the rest are
// leading arguments.
func OpenWith(command, path string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", fields[0], err)
	}
	return nil
}
