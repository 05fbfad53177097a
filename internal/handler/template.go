package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// TemplateHandler handles HTTP requests for saved generation templates.
type TemplateHandler struct {
	service *service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(svc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: svc}
}

// HandleCreate handles POST /api/v1/templates requests.
func (h *TemplateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTemplateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeTemplateError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/v1/templates requests.
func (h *TemplateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, templates)
}

// HandleGet handles GET /api/v1/templates/{template_id} requests.
func (h *TemplateHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeTemplateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/templates/{template_id} requests.
func (h *TemplateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	req, ok := decodeTemplateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeTemplateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/templates/{template_id} requests.
func (h *TemplateHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeTemplateError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerate handles POST /api/v1/templates/{template_id}/generate
// requests. The optional count query parameter overrides the default batch
// size.
func (h *TemplateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := templateID(w, r)
	if !ok {
		return
	}

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid count"))
			return
		}
		count = v
	}

	resp, err := h.service.GenerateFromTemplate(r.Context(), id, count)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeTemplateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func templateID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "template_id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid template id"))
		return 0, false
	}
	return id, true
}

func decodeTemplateRequest(w http.ResponseWriter, r *http.Request) (model.TemplateRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	var req model.TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return model.TemplateRequest{}, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return model.TemplateRequest{}, false
	}

	return req, true
}

func writeTemplateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired), errors.Is(err, service.ErrDuplicateName):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrTemplateNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
