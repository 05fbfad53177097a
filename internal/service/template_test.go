package service

import (
	"context"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

func newTestTemplateService() *TemplateService {
	return NewTemplateService(repository.NewTemplateRepository(nil), NewGeneratorService())
}

func TestCreateTemplate_EmptyName(t *testing.T) {
	svc := newTestTemplateService()

	_, err := svc.Create(context.Background(), model.TemplateRequest{Length: 20})
	if err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestUpdateTemplate_EmptyName(t *testing.T) {
	svc := newTestTemplateService()

	_, err := svc.Update(context.Background(), 1, model.TemplateRequest{})
	if err != ErrNameRequired {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestTemplateFromRequest_Defaults(t *testing.T) {
	tpl := templateFromRequest(model.TemplateRequest{Name: "work"})

	if tpl.Length != 16 {
		t.Errorf("expected default length 16, got %d", tpl.Length)
	}
	if !tpl.Numbers || !tpl.Lowercase || !tpl.Uppercase {
		t.Error("expected character classes to default to enabled")
	}
	if tpl.NoDuplicates || tpl.RemoveSequential || tpl.BeginWithLetter || tpl.ExcludeSimilar {
		t.Error("expected constraint toggles to default to off")
	}
}

func TestTemplateFromRequest_ClampsLength(t *testing.T) {
	tpl := templateFromRequest(model.TemplateRequest{Name: "long", Length: 500})
	if tpl.Length != 100 {
		t.Errorf("expected length clamped to 100, got %d", tpl.Length)
	}
}
