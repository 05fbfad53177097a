package service

import (
	"context"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrTemplateNotFound = errors.New("template not found")
	ErrDuplicateName    = errors.New("template name already exists")
)

// TemplateService handles saved-template business logic.
type TemplateService struct {
	repo *repository.TemplateRepository
	gen  *GeneratorService
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(repo *repository.TemplateRepository, gen *GeneratorService) *TemplateService {
	return &TemplateService{repo: repo, gen: gen}
}

// Create stores a new named template.
func (s *TemplateService) Create(ctx context.Context, req model.TemplateRequest) (model.TemplateResponse, error) {
	if req.Name == "" {
		return model.TemplateResponse{}, ErrNameRequired
	}

	tpl := templateFromRequest(req)
	if err := s.repo.Create(ctx, &tpl); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return model.TemplateResponse{}, ErrDuplicateName
		}
		return model.TemplateResponse{}, err
	}

	return templateResponse(tpl), nil
}

// Get retrieves a template by ID.
func (s *TemplateService) Get(ctx context.Context, id int64) (model.TemplateResponse, error) {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return model.TemplateResponse{}, ErrTemplateNotFound
		}
		return model.TemplateResponse{}, err
	}
	return templateResponse(*tpl), nil
}

// List retrieves all templates, most recently updated first.
func (s *TemplateService) List(ctx context.Context) ([]model.TemplateResponse, error) {
	templates, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		responses = append(responses, templateResponse(tpl))
	}
	return responses, nil
}

// Update replaces a stored template's configuration.
func (s *TemplateService) Update(ctx context.Context, id int64, req model.TemplateRequest) (model.TemplateResponse, error) {
	if req.Name == "" {
		return model.TemplateResponse{}, ErrNameRequired
	}

	tpl := templateFromRequest(req)
	tpl.ID = id
	if err := s.repo.Update(ctx, &tpl); err != nil {
		switch {
		case errors.Is(err, repository.ErrTemplateNotFound):
			return model.TemplateResponse{}, ErrTemplateNotFound
		case errors.Is(err, repository.ErrDuplicateName):
			return model.TemplateResponse{}, ErrDuplicateName
		}
		return model.TemplateResponse{}, err
	}

	return s.Get(ctx, id)
}

// Delete removes a stored template.
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}
	return nil
}

// GenerateFromTemplate runs a stored template through the generator.
// A non-positive count selects the default batch size.
func (s *TemplateService) GenerateFromTemplate(ctx context.Context, id int64, count int) (model.GenerateResponse, error) {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return model.GenerateResponse{}, ErrTemplateNotFound
		}
		return model.GenerateResponse{}, err
	}

	return s.gen.Generate(generateRequest(*tpl, count))
}

// templateFromRequest applies the nil-means-default convention and the
// boundary length clamp, mirroring configFromRequest.
func templateFromRequest(req model.TemplateRequest) model.Template {
	cfg := configFromRequest(model.GenerateRequest{
		Length:           req.Length,
		Numbers:          req.Numbers,
		Lowercase:        req.Lowercase,
		Uppercase:        req.Uppercase,
		BeginWithLetter:  req.BeginWithLetter,
		ExcludeSimilar:   req.ExcludeSimilar,
		NoDuplicates:     req.NoDuplicates,
		RemoveSequential: req.RemoveSequential,
		CustomSymbols:    req.CustomSymbols,
	})

	return model.Template{
		Name:             req.Name,
		Length:           cfg.Length,
		Numbers:          cfg.IncludeNumbers,
		Lowercase:        cfg.IncludeLowercase,
		Uppercase:        cfg.IncludeUppercase,
		BeginWithLetter:  cfg.BeginWithLetter,
		ExcludeSimilar:   cfg.ExcludeSimilar,
		NoDuplicates:     cfg.NoDuplicates,
		RemoveSequential: cfg.RemoveSequential,
		CustomSymbols:    cfg.CustomSymbols,
	}
}

func generateRequest(tpl model.Template, count int) model.GenerateRequest {
	return model.GenerateRequest{
		Length:           tpl.Length,
		Numbers:          &tpl.Numbers,
		Lowercase:        &tpl.Lowercase,
		Uppercase:        &tpl.Uppercase,
		BeginWithLetter:  &tpl.BeginWithLetter,
		ExcludeSimilar:   &tpl.ExcludeSimilar,
		NoDuplicates:     &tpl.NoDuplicates,
		RemoveSequential: &tpl.RemoveSequential,
		CustomSymbols:    tpl.CustomSymbols,
		Count:            count,
	}
}

func templateResponse(tpl model.Template) model.TemplateResponse {
	return model.TemplateResponse{
		ID:               tpl.ID,
		Name:             tpl.Name,
		Length:           tpl.Length,
		Numbers:          tpl.Numbers,
		Lowercase:        tpl.Lowercase,
		Uppercase:        tpl.Uppercase,
		BeginWithLetter:  tpl.BeginWithLetter,
		ExcludeSimilar:   tpl.ExcludeSimilar,
		NoDuplicates:     tpl.NoDuplicates,
		RemoveSequential: tpl.RemoveSequential,
		CustomSymbols:    tpl.CustomSymbols,
		CreatedAt:        tpl.CreatedAt,
		UpdatedAt:        tpl.UpdatedAt,
	}
}
