package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and
// explicit false: character classes default to enabled, constraint toggles
// to off.
type GenerateRequest struct {
	Length           int    `json:"length"`
	Numbers          *bool  `json:"numbers"`
	Lowercase        *bool  `json:"lowercase"`
	Uppercase        *bool  `json:"uppercase"`
	BeginWithLetter  *bool  `json:"begin_with_letter"`
	ExcludeSimilar   *bool  `json:"exclude_similar"`
	NoDuplicates     *bool  `json:"no_duplicates"`
	RemoveSequential *bool  `json:"remove_sequential"`
	CustomSymbols    string `json:"custom_symbols"`
	Count            int    `json:"count"`
}

// GenerateResponse represents one generation batch. Length is the requested
// effective length; individual passwords may be shorter when constraints cap
// them, so clients compare each password's length against Length to detect
// degraded output.
type GenerateResponse struct {
	Passwords []string `json:"passwords"`
	Count     int      `json:"count"`
	Length    int      `json:"length"`
}
