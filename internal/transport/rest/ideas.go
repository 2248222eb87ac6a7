package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/idea"
)

type ideaService interface {
	List(ctx context.Context) ([]domain.Idea, error)
	Get(ctx context.Context, id int64) (domain.Idea, error)
	Create(ctx context.Context, input idea.CreateInput) (domain.Idea, error)
	Update(ctx context.Context, input idea.UpdateInput) (domain.Idea, error)
	Delete(ctx context.Context, id int64) error
}

// IdeaHandler serves /api/v1/ideas.
type IdeaHandler struct {
	svc ideaService
	log *slog.Logger
}

func NewIdeaHandler(svc ideaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, log: logger.With("handler", "ideas")}
}

type createIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	UserID      string `json:"userId"`
	ProjectID   string `json:"projectId"`
}

func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(ideas, toIdeaJSON))
}

func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	i, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIdeaJSON(i))
}

func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIdeaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	i, err := h.svc.Create(r.Context(), idea.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.IdeaCategory(req.Category),
		Status:      domain.IdeaStatus(req.Status),
		UserID:      req.UserID,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toIdeaJSON(i))
}

// Update handles PATCH /api/v1/ideas/{id}.
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := decodePatch(w, r, "title", "description", "category", "status",
		"votes", "hasVoted", "commentCount", "createdAt", "userId", "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.IdeaPatch
	patchField(doc, "title", &p.Title)
	patchField(doc, "description", &p.Description)
	patchField(doc, "category", &p.Category)
	patchField(doc, "status", &p.Status)
	patchField(doc, "votes", &p.Votes)
	patchField(doc, "hasVoted", &p.HasVoted)
	patchField(doc, "commentCount", &p.CommentCount)
	patchTime(doc, "createdAt", &p.CreatedAt)
	patchField(doc, "userId", &p.UserID)
	patchField(doc, "projectId", &p.ProjectID)
	if err := doc.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	i, err := h.svc.Update(r.Context(), idea.UpdateInput{ID: id, Patch: p})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIdeaJSON(i))
}

func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
