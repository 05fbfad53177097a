// Package crypto implements constraint-satisfying password generation on
// top of a cryptographically secure random source.
package crypto

const (
	MinLength = 10
	MaxLength = 100

	// retryFactor bounds total fill-loop draws per password at
	// effectiveLength * retryFactor. The cap is what guarantees
	// termination when NoDuplicates and RemoveSequential make the
	// requested length unreachable.
	retryFactor = 50
)

// Config describes a single generation request. The zero value is valid but
// produces an empty password (no classes enabled, no custom symbols).
type Config struct {
	// Length is the requested password length, clamped to
	// [MinLength, MaxLength] before use.
	Length int

	IncludeNumbers   bool
	IncludeLowercase bool
	IncludeUppercase bool

	// BeginWithLetter forces the first character to be a letter from an
	// enabled letter class. Ignored when no letter class is enabled.
	BeginWithLetter bool

	// ExcludeSimilar removes visually confusable characters (0 O 1 l I | `)
	// from every pool.
	ExcludeSimilar bool

	// NoDuplicates forbids any character from appearing twice. The password
	// is silently capped at the pool size when the pool is smaller than the
	// requested length.
	NoDuplicates bool

	// RemoveSequential rejects candidates that would complete a sequential
	// run such as "abc", "cba", "123" or "321" with the two preceding
	// characters, case-insensitively.
	RemoveSequential bool

	// CustomSymbols are extra characters added to the pool unconditionally.
	// There is no separate symbols toggle; a nonempty string is the gate.
	CustomSymbols string
}

// DefaultConfig returns the defaults used by the API and CLI boundaries:
// 16 characters from all three character classes, no extra constraints.
func DefaultConfig() Config {
	return Config{
		Length:           16,
		IncludeNumbers:   true,
		IncludeLowercase: true,
		IncludeUppercase: true,
	}
}

// Generator produces passwords from an injected random source. It holds no
// state between calls and is safe for concurrent use.
type Generator struct {
	src RandomSource
}

// NewGenerator creates a Generator backed by src. A nil src selects the
// crypto/rand-backed default.
func NewGenerator(src RandomSource) *Generator {
	if src == nil {
		src = cryptoSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// GenerateOne produces one password with the default secure source.
func GenerateOne(cfg Config) (string, error) {
	return defaultGenerator.GenerateOne(cfg)
}

// GenerateBatch produces count passwords with the default secure source.
func GenerateBatch(cfg Config, count int) ([]string, error) {
	return defaultGenerator.GenerateBatch(cfg, count)
}

// GenerateOne produces a single password satisfying the config's
// constraints. Two data conditions are returned as values rather than
// errors: an empty pool yields "", and a length target unreachable under
// NoDuplicates or the retry cap yields a shorter password. The returned
// error is non-nil only when the random source fails.
func (g *Generator) GenerateOne(cfg Config) (string, error) {
	target := clamp(cfg.Length, MinLength, MaxLength)

	pool := buildPool(cfg)
	if len(pool) == 0 {
		return "", nil
	}

	length := target
	if cfg.NoDuplicates && len(pool) < length {
		length = len(pool)
	}

	out := make([]rune, 0, length)
	var used map[rune]bool
	if cfg.NoDuplicates {
		used = make(map[rune]bool, length)
	}

	if cfg.BeginWithLetter {
		letters := letterPool(cfg)
		if len(letters) > 0 {
			i, err := g.src.IntN(len(letters))
			if err != nil {
				return "", err
			}
			out = append(out, letters[i])
			if used != nil {
				used[letters[i]] = true
			}
		}
	}

	maxAttempts := length * retryFactor
	for attempts := 0; len(out) < length && attempts < maxAttempts; attempts++ {
		candidates := pool
		if used != nil {
			candidates = unusedRunes(pool, used)
			if len(candidates) == 0 {
				// Pool exhausted: return what was built so far.
				break
			}
		}

		i, err := g.src.IntN(len(candidates))
		if err != nil {
			return "", err
		}
		next := candidates[i]

		if cfg.RemoveSequential && len(out) >= 2 &&
			isSequential(out[len(out)-2], out[len(out)-1], next) {
			continue
		}

		out = append(out, next)
		if used != nil {
			used[next] = true
		}
	}

	return string(out), nil
}

// GenerateBatch produces count passwords, each from an independent
// GenerateOne call. A non-positive count yields an empty slice.
func (g *Generator) GenerateBatch(cfg Config, count int) ([]string, error) {
	passwords := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		p, err := g.GenerateOne(cfg)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, p)
	}
	return passwords, nil
}

func unusedRunes(pool []rune, used map[rune]bool) []rune {
	avail := make([]rune, 0, len(pool))
	for _, r := range pool {
		if !used[r] {
			avail = append(avail, r)
		}
	}
	return avail
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
