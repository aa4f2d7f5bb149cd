package search

import (
	"regexp"
	"strings"
)

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IsIATA reports whether s is a syntactically valid 3-letter airport code
// after uppercasing. No existence check against a reference table.
func IsIATA(s string) bool {
	return iataPattern.MatchString(strings.ToUpper(s))
}
