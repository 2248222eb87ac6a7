package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type activityService interface {
	List(ctx context.Context, limit int) ([]domain.Activity, error)
	Get(ctx context.Context, id int64) (domain.Activity, error)
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, id int64, patch domain.ActivityPatch) (domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityHandler serves /api/v1/activities.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activities")}
}

type createActivityRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	IdeaTitle   string `json:"ideaTitle"`
	IdeaStatus  string `json:"ideaStatus"`
	NewStatus   string `json:"newStatus"`
	VoteCount   int    `json:"voteCount"`
	Version     string `json:"version"`
}

// List handles GET /api/v1/activities?limit=N.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		limit = n
	}

	acts, err := h.svc.List(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(acts, toActivityJSON))
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityJSON(a))
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), domain.Activity{
		Type:        domain.ActivityType(req.Type),
		Description: req.Description,
		IdeaTitle:   req.IdeaTitle,
		IdeaStatus:  domain.IdeaStatus(req.IdeaStatus),
		NewStatus:   domain.IdeaStatus(req.NewStatus),
		VoteCount:   req.VoteCount,
		Version:     req.Version,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityJSON(a))
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := decodePatch(w, r, "type", "description", "ideaTitle", "ideaStatus",
		"newStatus", "voteCount", "version", "createdAt")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.ActivityPatch
	patchField(doc, "type", &p.Type)
	patchField(doc, "description", &p.Description)
	patchField(doc, "ideaTitle", &p.IdeaTitle)
	patchField(doc, "ideaStatus", &p.IdeaStatus)
	patchField(doc, "newStatus", &p.NewStatus)
	patchField(doc, "voteCount", &p.VoteCount)
	patchField(doc, "version", &p.Version)
	patchTime(doc, "createdAt", &p.CreatedAt)
	if err := doc.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), id, p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityJSON(a))
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
