package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/changelog"
)

type changelogService interface {
	List(ctx context.Context) ([]domain.ChangelogEntry, error)
	Get(ctx context.Context, id int64) (domain.ChangelogEntry, error)
	Publish(ctx context.Context, input changelog.CreateInput) (domain.ChangelogEntry, error)
	Update(ctx context.Context, input changelog.UpdateInput) (domain.ChangelogEntry, error)
	Delete(ctx context.Context, id int64) error
}

// ChangelogHandler serves /api/v1/changelog.
type ChangelogHandler struct {
	svc changelogService
	log *slog.Logger
}

func NewChangelogHandler(svc changelogService, logger *slog.Logger) *ChangelogHandler {
	return &ChangelogHandler{svc: svc, log: logger.With("handler", "changelog")}
}

type publishRequest struct {
	Version     string `json:"version"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishedAt string `json:"publishedAt"`
	ProjectID   string `json:"projectId"`
}

func (h *ChangelogHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(entries, toChangelogJSON))
}

func (h *ChangelogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toChangelogJSON(e))
}

// Publish handles POST /api/v1/changelog. An empty publishedAt means now.
func (h *ChangelogHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var publishedAt time.Time
	if req.PublishedAt != "" {
		t, err := domain.ParseTimestamp(req.PublishedAt)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("publishedAt", "invalid timestamp"))
			return
		}
		publishedAt = t
	}

	e, err := h.svc.Publish(r.Context(), changelog.CreateInput{
		Version:     req.Version,
		Title:       req.Title,
		Content:     req.Content,
		PublishedAt: publishedAt,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChangelogJSON(e))
}

func (h *ChangelogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := decodePatch(w, r, "version", "title", "content", "publishedAt", "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.ChangelogPatch
	patchField(doc, "version", &p.Version)
	patchField(doc, "title", &p.Title)
	patchField(doc, "content", &p.Content)
	patchTime(doc, "publishedAt", &p.PublishedAt)
	patchField(doc, "projectId", &p.ProjectID)
	if err := doc.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.svc.Update(r.Context(), changelog.UpdateInput{ID: id, Patch: p})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toChangelogJSON(e))
}

func (h *ChangelogHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
