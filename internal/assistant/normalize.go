package assistant

import "strings"

// Normalize lower-cases the message, trims it and collapses whitespace runs
// into single spaces. Normalize(Normalize(s)) == Normalize(s).
func Normalize(message string) string {
	return strings.Join(strings.Fields(strings.ToLower(message)), " ")
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
