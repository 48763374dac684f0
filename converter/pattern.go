package converter

import "strings"

// Pattern turns an extension entry into the regex stored in the table.
// Only the first '*' becomes ".*"; the result is anchored with '$'.
func Pattern(ext string) string {
	return strings.Replace(ext, "*", ".*", 1) + "$"
}
