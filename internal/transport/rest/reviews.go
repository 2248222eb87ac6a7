package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/review"
)

type reviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Get(ctx context.Context, id int64) (domain.Review, error)
	Create(ctx context.Context, input review.CreateInput) (domain.Review, error)
	Update(ctx context.Context, input review.UpdateInput) (domain.Review, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (review.Summary, error)
}

// ReviewHandler serves /api/v1/reviews.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "reviews")}
}

type createReviewRequest struct {
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	ProjectID    string `json:"projectId"`
}

type summaryResponse struct {
	Count        int     `json:"count"`
	Average      float64 `json:"average"`
	Distribution []int   `json:"distribution"`
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(reviews, toReviewJSON))
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewJSON(rv))
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.Create(r.Context(), review.CreateInput{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
		ProjectID:    req.ProjectID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewJSON(rv))
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doc, err := decodePatch(w, r, "customerName", "rating", "comment", "createdAt", "projectId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.ReviewPatch
	patchField(doc, "customerName", &p.CustomerName)
	patchField(doc, "rating", &p.Rating)
	patchField(doc, "comment", &p.Comment)
	patchTime(doc, "createdAt", &p.CreatedAt)
	patchField(doc, "projectId", &p.ProjectID)
	if err := doc.err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rv, err := h.svc.Update(r.Context(), review.UpdateInput{ID: id, Patch: p})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewJSON(rv))
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Summary handles GET /api/v1/reviews/summary.
func (h *ReviewHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		Count:        sum.Count,
		Average:      sum.Average,
		Distribution: sum.Distribution[:],
	})
}
