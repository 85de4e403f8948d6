package utils

import "strings"

// FirstNonEmpty returns the first value that is not blank after trimming
// whitespace, or "" when every candidate is blank. Field resolution across
// the stored order shapes is a cascade of optional aliases, so the cascade
// lives here once instead of being repeated per field.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
