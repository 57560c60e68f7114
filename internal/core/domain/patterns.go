package domain

import "strings"

// ParsePatterns splits a comma-separated pattern argument into prefixes.
// Entries are not trimmed; an empty entry is a prefix of every scheme.
func ParsePatterns(arg string) []string {
	return strings.Split(arg, ",")
}

// FilterSchemes returns the schemes that start with at least one of the patterns,
// preserving their original order. A nil pattern set selects everything; a non-nil
// empty set selects nothing.
func FilterSchemes(schemes, patterns []string) []string {
	if patterns == nil {
		return schemes
	}

	selected := make([]string, 0, len(schemes))
	for _, s := range schemes {
		for _, p := range patterns {
			if strings.HasPrefix(s, p) {
				selected = append(selected, s)
				break
			}
		}
	}
	return selected
}
