package extraction

import (
	"strings"
	"time"
)

// dropFields removes the top-level fields named by schema violation paths
// (e.g. "gpa.min" drops "gpa"). Dropping the container is deliberate: a band
// whose minimum is the wrong type carries no trustworthy constraint.
func dropFields(decoded map[string]any, fieldPaths []string) {
	for _, path := range fieldPaths {
		top := path
		if idx := strings.IndexAny(path, ".["); idx >= 0 {
			top = path[:idx]
		}
		if top == "" || top == "(root)" {
			continue
		}
		delete(decoded, top)
	}
}

// validISODate reports whether s parses as a valid calendar date.
func validISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
