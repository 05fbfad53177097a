package crypto

import (
	mrand "math/rand"
	"strings"
	"testing"
)

// seededSource is a deterministic RandomSource for structure tests. Not
// cryptographically secure; never used outside tests.
type seededSource struct {
	r *mrand.Rand
}

func newSeededSource(seed int64) *seededSource {
	return &seededSource{r: mrand.New(mrand.NewSource(seed))}
}

func (s *seededSource) IntN(n int) (int, error) {
	return s.r.Intn(n), nil
}

func allClasses(length int) Config {
	return Config{
		Length:           length,
		IncludeNumbers:   true,
		IncludeLowercase: true,
		IncludeUppercase: true,
	}
}

func TestGenerateOneLength(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantLen int
	}{
		{
			name:    "default config",
			cfg:     DefaultConfig(),
			wantLen: 16,
		},
		{
			name:    "short length clamped up",
			cfg:     allClasses(3),
			wantLen: MinLength,
		},
		{
			name:    "long length clamped down",
			cfg:     allClasses(500),
			wantLen: MaxLength,
		},
		{
			name: "no duplicates capped at pool size",
			cfg: Config{
				Length:           50,
				IncludeLowercase: true,
				NoDuplicates:     true,
			},
			wantLen: 26,
		},
		{
			name: "no duplicates with sufficient pool",
			cfg: Config{
				Length:           10,
				IncludeLowercase: true,
				NoDuplicates:     true,
			},
			wantLen: 10,
		},
		{
			name: "custom symbols only with no duplicates",
			cfg: Config{
				Length:        12,
				NoDuplicates:  true,
				CustomSymbols: "@#$%",
			},
			wantLen: 4,
		},
		{
			name:    "empty pool",
			cfg:     Config{Length: 16},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GenerateOne(tt.cfg)
			if err != nil {
				t.Fatalf("GenerateOne() unexpected error: %v", err)
			}
			if len([]rune(result)) != tt.wantLen {
				t.Errorf("GenerateOne() length = %d, want %d", len([]rune(result)), tt.wantLen)
			}
		})
	}
}

func TestGenerateOneEmptyPool(t *testing.T) {
	result, err := GenerateOne(Config{Length: 16})
	if err != nil {
		t.Fatalf("GenerateOne() unexpected error: %v", err)
	}
	if result != "" {
		t.Errorf("GenerateOne() = %q, want empty string for empty pool", result)
	}
}

func TestGenerateCustomSymbolsAlwaysIncluded(t *testing.T) {
	// Custom symbols are not gated by any class toggle.
	cfg := Config{Length: 20, CustomSymbols: "@#$"}

	password, err := GenerateOne(cfg)
	if err != nil {
		t.Fatalf("GenerateOne() unexpected error: %v", err)
	}
	if len(password) != 20 {
		t.Fatalf("GenerateOne() length = %d, want 20", len(password))
	}
	for _, ch := range password {
		if !strings.ContainsRune("@#$", ch) {
			t.Errorf("password contains %q, expected only custom symbols", string(ch))
		}
	}
}

func TestGenerateExcludeSimilar(t *testing.T) {
	cfg := allClasses(40)
	cfg.ExcludeSimilar = true
	cfg.CustomSymbols = "|`@"

	for i := 0; i < 50; i++ {
		password, err := GenerateOne(cfg)
		if err != nil {
			t.Fatalf("GenerateOne() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, similarChars) {
			t.Errorf("password %q contains a similar-looking character", password)
		}
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	cfg := allClasses(60)
	cfg.NoDuplicates = true

	for i := 0; i < 50; i++ {
		password, err := GenerateOne(cfg)
		if err != nil {
			t.Fatalf("GenerateOne() unexpected error: %v", err)
		}

		seen := make(map[rune]bool)
		for _, ch := range password {
			if seen[ch] {
				t.Errorf("password %q repeats %q", password, string(ch))
			}
			seen[ch] = true
		}
	}
}

func TestGenerateRemoveSequential(t *testing.T) {
	cfg := allClasses(100)
	cfg.RemoveSequential = true

	for i := 0; i < 50; i++ {
		password, err := GenerateOne(cfg)
		if err != nil {
			t.Fatalf("GenerateOne() unexpected error: %v", err)
		}

		runes := []rune(password)
		for j := 0; j+3 <= len(runes); j++ {
			if isSequential(runes[j], runes[j+1], runes[j+2]) {
				t.Errorf("password %q contains sequential run %q", password, string(runes[j:j+3]))
			}
		}
	}
}

func TestGenerateBeginWithLetter(t *testing.T) {
	cfg := Config{
		Length:           16,
		IncludeNumbers:   true,
		IncludeLowercase: true,
		BeginWithLetter:  true,
	}

	for i := 0; i < 50; i++ {
		password, err := GenerateOne(cfg)
		if err != nil {
			t.Fatalf("GenerateOne() unexpected error: %v", err)
		}
		first := rune(password[0])
		if !strings.ContainsRune(lowercaseChars, first) {
			t.Errorf("password %q does not begin with an enabled letter", password)
		}
	}
}

func TestGenerateBeginWithLetterNoLetterClass(t *testing.T) {
	// BeginWithLetter is a no-op when no letter class is enabled.
	cfg := Config{
		Length:          12,
		IncludeNumbers:  true,
		BeginWithLetter: true,
	}

	password, err := GenerateOne(cfg)
	if err != nil {
		t.Fatalf("GenerateOne() unexpected error: %v", err)
	}
	if len(password) != 12 {
		t.Errorf("GenerateOne() length = %d, want 12", len(password))
	}
	for _, ch := range password {
		if !strings.ContainsRune(numberChars, ch) {
			t.Errorf("password %q contains non-digit %q", password, string(ch))
		}
	}
}

func TestGenerateBatch(t *testing.T) {
	passwords, err := GenerateBatch(DefaultConfig(), 5)
	if err != nil {
		t.Fatalf("GenerateBatch() unexpected error: %v", err)
	}
	if len(passwords) != 5 {
		t.Fatalf("GenerateBatch() returned %d passwords, want 5", len(passwords))
	}
	for _, p := range passwords {
		if len(p) != 16 {
			t.Errorf("password %q has length %d, want 16", p, len(p))
		}
	}
}

func TestGenerateBatchNonPositiveCount(t *testing.T) {
	passwords, err := GenerateBatch(DefaultConfig(), 0)
	if err != nil {
		t.Fatalf("GenerateBatch() unexpected error: %v", err)
	}
	if len(passwords) != 0 {
		t.Errorf("GenerateBatch() returned %d passwords, want 0", len(passwords))
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := GenerateOne(DefaultConfig())
		if err != nil {
			t.Fatalf("GenerateOne() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGeneratorSeededReproducible(t *testing.T) {
	cfg := allClasses(30)
	cfg.RemoveSequential = true

	first, err := NewGenerator(newSeededSource(42)).GenerateOne(cfg)
	if err != nil {
		t.Fatalf("GenerateOne() unexpected error: %v", err)
	}
	second, err := NewGenerator(newSeededSource(42)).GenerateOne(cfg)
	if err != nil {
		t.Fatalf("GenerateOne() unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("same seed produced different passwords: %q vs %q", first, second)
	}
}

func TestGenerateTinyPoolConstraintsTerminate(t *testing.T) {
	// Two symbols with both duplicate and sequential rules: the retry cap
	// must still let generation finish, possibly short.
	cfg := Config{
		Length:           20,
		NoDuplicates:     true,
		RemoveSequential: true,
		CustomSymbols:    "ab",
	}

	password, err := GenerateOne(cfg)
	if err != nil {
		t.Fatalf("GenerateOne() unexpected error: %v", err)
	}
	if len(password) > 2 {
		t.Errorf("GenerateOne() length = %d, want at most 2", len(password))
	}
}
