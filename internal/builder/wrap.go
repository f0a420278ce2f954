package builder

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
)

// WrapBullet reflows text to width columns as a bullet list item: the
// first line is prefixed with the bullet character and a space, and
// continuation lines are indented by the same width. Break points are
// whitespace only, so hyphenated words stay intact; a word longer than
// the available width is emitted unbroken on its own line rather than
// split.
func WrapBullet(text string, width int, bullet string) string {
	indent := utf8.RuneCountInString(bullet) + 1

	inner := width - indent
	if inner < 1 {
		inner = 1
	}

	w := wordwrap.NewWriter(inner)
	// The default breakpoints include '-'; clearing them restricts
	// breaking to whitespace.
	w.Breakpoints = nil
	_, _ = w.Write([]byte(text))
	_ = w.Close()

	lines := strings.Split(w.String(), "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = bullet + " " + line
		} else {
			lines[i] = strings.Repeat(" ", indent) + line
		}
	}
	return strings.Join(lines, "\n")
}
