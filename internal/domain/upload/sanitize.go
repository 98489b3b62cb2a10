package upload

import "regexp"

var (
	unsafeRe   = regexp.MustCompile(`[\[\](){}:;*?/\\<>|#%&]`)
	collapseRe = regexp.MustCompile(`[\s_]+`)
)

// Sanitize rewrites a client-supplied filename into a storage-safe key
// segment. Every unsafe character becomes an underscore and runs of
// whitespace or underscores collapse to a single underscore, so the result
// is stable under repeated application.
func Sanitize(name string) string {
	return collapseRe.ReplaceAllString(unsafeRe.ReplaceAllString(name, "_"), "_")
}
