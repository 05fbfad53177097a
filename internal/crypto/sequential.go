package crypto

import "strings"

// sequentialTriplets holds every 3-character sliding window over the
// lowercase alphabet and over the digit run 1-9. A candidate is rejected
// when it completes one of these windows, forward or reversed.
var sequentialTriplets = buildTriplets()

func buildTriplets() map[string]bool {
	t := make(map[string]bool)
	for _, run := range []string{lowercaseChars, "123456789"} {
		for i := 0; i+3 <= len(run); i++ {
			t[run[i:i+3]] = true
		}
	}
	return t
}

// isSequential reports whether the window (a, b, next) forms a known
// sequential run, forward or reversed, ignoring case. Only the two most
// recently accepted characters are consulted; earlier output is never
// rescanned.
func isSequential(a, b, next rune) bool {
	window := strings.ToLower(string([]rune{a, b, next}))
	reversed := strings.ToLower(string([]rune{next, b, a}))
	return sequentialTriplets[window] || sequentialTriplets[reversed]
}
