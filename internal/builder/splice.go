package builder

import (
	"strings"
	"unicode"
)

// Splice inserts entry into contents immediately after the first
// occurrence of marker, or at the very top when the marker is absent.
// Everything outside the insertion point is preserved byte-for-byte,
// except that the text following the insertion point is trimmed of
// leading whitespace before being re-appended.
func Splice(contents, marker, entry string) string {
	var sb strings.Builder

	if before, after, found := strings.Cut(contents, marker); found {
		sb.WriteString(before)
		sb.WriteString(marker)
		sb.WriteString("\n\n")
		sb.WriteString(entry)
		sb.WriteString("\n")
		if trimmed := strings.TrimLeftFunc(after, unicode.IsSpace); trimmed != "" {
			sb.WriteString(trimmed)
		}
		return sb.String()
	}

	sb.WriteString(entry)
	sb.WriteString("\n")
	if trimmed := strings.TrimLeftFunc(contents, unicode.IsSpace); trimmed != "" {
		sb.WriteString("\n")
		sb.WriteString(trimmed)
	}
	return sb.String()
}
