package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/project"
)

type projectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (domain.Project, error)
	Create(ctx context.Context, in project.CreateInput) (domain.Project, error)
	Update(ctx context.Context, in project.UpdateInput) (domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectHandler serves /api/v1/projects.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "projects")}
}

type createProjectRequest struct {
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	PrimaryColor string `json:"primaryColor"`
	UserID       string `json:"userId"`
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(ps, toProjectJSON))
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectJSON(p))
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateInput{
		Name:         req.Name,
		Logo:         req.Logo,
		PrimaryColor: req.PrimaryColor,
		UserID:       req.UserID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectJSON(p))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := decodePatch(w, r, "name", "logo", "primaryColor", "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.ProjectPatch
	patchField(doc, "name", &p.Name)
	patchField(doc, "logo", &p.Logo)
	patchField(doc, "primaryColor", &p.PrimaryColor)
	patchField(doc, "userId", &p.UserID)
	if err := doc.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	pr, err := h.svc.Update(r.Context(), project.UpdateInput{ID: id, Patch: p})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectJSON(pr))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
