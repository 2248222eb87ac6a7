package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/dashboard"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/roadmap"
)

type roadmapService interface {
	Columns(ctx context.Context) ([]roadmap.Column, error)
	Move(ctx context.Context, id int64, status domain.IdeaStatus) (domain.Idea, error)
}

type dashboardService interface {
	Metrics(ctx context.Context) (dashboard.Metrics, error)
}

// OverviewHandler serves the read-mostly roadmap and dashboard views.
type OverviewHandler struct {
	roadmap   roadmapService
	dashboard dashboardService
	log       *slog.Logger
}

func NewOverviewHandler(rm roadmapService, db dashboardService, logger *slog.Logger) *OverviewHandler {
	return &OverviewHandler{roadmap: rm, dashboard: db, log: logger.With("handler", "overview")}
}

type columnJSON struct {
	Status string     `json:"status"`
	Count  int        `json:"count"`
	Ideas  []ideaJSON `json:"ideas"`
}

type metricsJSON struct {
	TotalIdeas     int            `json:"totalIdeas"`
	NewIdeas       int            `json:"newIdeas"`
	TotalVotes     int            `json:"totalVotes"`
	CompletedIdeas int            `json:"completedIdeas"`
	ByStatus       map[string]int `json:"byStatus"`
	Activities     []activityJSON `json:"activities"`
}

type moveRequest struct {
	Status string `json:"status"`
}

// Roadmap handles GET /api/v1/roadmap.
func (h *OverviewHandler) Roadmap(w http.ResponseWriter, r *http.Request) {
	cols, err := h.roadmap.Columns(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cols, func(c roadmap.Column) columnJSON {
		return columnJSON{Status: string(c.Status), Count: c.Count, Ideas: mapSlice(c.Ideas, toIdeaJSON)}
	}))
}

// Move handles PUT /api/v1/roadmap/{id}.
func (h *OverviewHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	i, err := h.roadmap.Move(r.Context(), id, domain.IdeaStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIdeaJSON(i))
}

// Dashboard handles GET /api/v1/dashboard.
func (h *OverviewHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	m, err := h.dashboard.Metrics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	byStatus := make(map[string]int, len(m.ByStatus))
	for st, n := range m.ByStatus {
		byStatus[string(st)] = n
	}
	writeJSON(w, http.StatusOK, metricsJSON{
		TotalIdeas:     m.TotalIdeas,
		NewIdeas:       m.NewIdeas,
		TotalVotes:     m.TotalVotes,
		CompletedIdeas: m.CompletedIdeas,
		ByStatus:       byStatus,
		Activities:     mapSlice(m.Activities, toActivityJSON),
	})
}
