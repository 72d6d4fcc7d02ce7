package domain

import "strings"

// NarrowBySearch keeps the listings whose title, address, city or description
// contains term, case-insensitively. It is a pure function of its inputs: an
// empty term returns the input unchanged, and applying the same term twice
// yields the same result as applying it once.
func NarrowBySearch(term string, properties []Property) []Property {
	if term == "" {
		return properties
	}
	needle := strings.ToLower(term)
	matched := make([]Property, 0, len(properties))
	for _, p := range properties {
		if matchesSearch(needle, p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesSearch(needle string, p Property) bool {
	for _, field := range []string{p.Title, p.Address, p.City, p.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
