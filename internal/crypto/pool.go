package crypto

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"

	// similarChars are visually confusable and removed from every pool when
	// Config.ExcludeSimilar is set.
	similarChars = "0O1lI|`"
)

// buildPool assembles the effective character pool for a config: custom
// symbols first, then lowercase, uppercase and digits as enabled,
// deduplicated in first-occurrence order.
func buildPool(cfg Config) []rune {
	var raw strings.Builder
	raw.WriteString(cfg.CustomSymbols)
	if cfg.IncludeLowercase {
		raw.WriteString(lowercaseChars)
	}
	if cfg.IncludeUppercase {
		raw.WriteString(uppercaseChars)
	}
	if cfg.IncludeNumbers {
		raw.WriteString(numberChars)
	}
	return uniqueRunes(raw.String(), cfg.ExcludeSimilar)
}

// letterPool assembles the sub-pool for the forced first character: letters
// from the enabled classes only, with the same similar-character filtering
// as the main pool.
func letterPool(cfg Config) []rune {
	var raw strings.Builder
	if cfg.IncludeLowercase {
		raw.WriteString(lowercaseChars)
	}
	if cfg.IncludeUppercase {
		raw.WriteString(uppercaseChars)
	}
	return uniqueRunes(raw.String(), cfg.ExcludeSimilar)
}

// PoolSize reports how many distinct characters the config can draw from.
// A zero-size pool makes every generated password empty; when NoDuplicates
// is set it is also the longest achievable password.
func PoolSize(cfg Config) int {
	return len(buildPool(cfg))
}

func uniqueRunes(s string, excludeSimilar bool) []rune {
	seen := make(map[rune]bool, len(s))
	pool := make([]rune, 0, len(s))
	for _, r := range s {
		if seen[r] {
			continue
		}
		if excludeSimilar && strings.ContainsRune(similarChars, r) {
			continue
		}
		seen[r] = true
		pool = append(pool, r)
	}
	return pool
}
