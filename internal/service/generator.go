package service

import (
	"errors"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

const (
	// DefaultCount is the batch size used when a request omits count.
	DefaultCount = 5
	maxCount     = 100
)

var (
	ErrNoCharacterTypes = errors.New("select at least one character type")
	ErrCountTooLarge    = errors.New("count must be at most 100")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a GeneratorService backed by the default
// secure random source.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: crypto.NewGenerator(nil)}
}

// Generate produces a batch of passwords for the request. An empty effective
// pool is surfaced as ErrNoCharacterTypes so callers can warn the user
// instead of displaying empty strings.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := configFromRequest(req)

	if crypto.PoolSize(cfg) == 0 {
		return model.GenerateResponse{}, ErrNoCharacterTypes
	}

	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}
	if count > maxCount {
		return model.GenerateResponse{}, ErrCountTooLarge
	}

	passwords, err := s.gen.GenerateBatch(cfg, count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Passwords: passwords,
		Count:     len(passwords),
		Length:    cfg.Length,
	}, nil
}

// configFromRequest maps a wire request onto a generator config, applying
// defaults and the boundary length clamp.
func configFromRequest(req model.GenerateRequest) crypto.Config {
	length := req.Length
	if length == 0 {
		length = crypto.DefaultConfig().Length
	}
	if length < crypto.MinLength {
		length = crypto.MinLength
	}
	if length > crypto.MaxLength {
		length = crypto.MaxLength
	}

	return crypto.Config{
		Length:           length,
		IncludeNumbers:   boolOrDefault(req.Numbers, true),
		IncludeLowercase: boolOrDefault(req.Lowercase, true),
		IncludeUppercase: boolOrDefault(req.Uppercase, true),
		BeginWithLetter:  boolOrDefault(req.BeginWithLetter, false),
		ExcludeSimilar:   boolOrDefault(req.ExcludeSimilar, false),
		NoDuplicates:     boolOrDefault(req.NoDuplicates, false),
		RemoveSequential: boolOrDefault(req.RemoveSequential, false),
		CustomSymbols:    req.CustomSymbols,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
