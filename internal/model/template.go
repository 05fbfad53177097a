package model

import "time"

// Template is a named, saved generation configuration in the database.
type Template struct {
	ID               int64
	Name             string
	Length           int
	Numbers          bool
	Lowercase        bool
	Uppercase        bool
	BeginWithLetter  bool
	ExcludeSimilar   bool
	NoDuplicates     bool
	RemoveSequential bool
	CustomSymbols    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TemplateRequest represents a template create or update payload. The same
// nil-means-default convention as GenerateRequest applies.
type TemplateRequest struct {
	Name             string `json:"name"`
	Length           int    `json:"length"`
	Numbers          *bool  `json:"numbers"`
	Lowercase        *bool  `json:"lowercase"`
	Uppercase        *bool  `json:"uppercase"`
	BeginWithLetter  *bool  `json:"begin_with_letter"`
	ExcludeSimilar   *bool  `json:"exclude_similar"`
	NoDuplicates     *bool  `json:"no_duplicates"`
	RemoveSequential *bool  `json:"remove_sequential"`
	CustomSymbols    string `json:"custom_symbols"`
}

// TemplateResponse represents a stored template returned to clients.
type TemplateResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Length           int       `json:"length"`
	Numbers          bool      `json:"numbers"`
	Lowercase        bool      `json:"lowercase"`
	Uppercase        bool      `json:"uppercase"`
	BeginWithLetter  bool      `json:"begin_with_letter"`
	ExcludeSimilar   bool      `json:"exclude_similar"`
	NoDuplicates     bool      `json:"no_duplicates"`
	RemoveSequential bool      `json:"remove_sequential"`
	CustomSymbols    string    `json:"custom_symbols"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
