package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/service/board"
	"github.com/apper-apps/feedbackhub-driver-pixel/pkg/ctxutil"
)

type boardRegistry interface {
	Get(sessionID string) *board.Board
}

// BoardHandler serves /api/v1/board: one idea list per viewer session.
type BoardHandler struct {
	boards boardRegistry
	log    *slog.Logger
}

func NewBoardHandler(boards boardRegistry, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{boards: boards, log: logger.With("handler", "board")}
}

type filtersJSON struct {
	Status   string `json:"status"`
	Category string `json:"category"`
	Sort     string `json:"sort"`
}

type snapshotJSON struct {
	Ideas      []ideaJSON  `json:"ideas"`
	Total      int         `json:"total"`
	SearchTerm string      `json:"searchTerm"`
	Filters    filtersJSON `json:"filters"`
	State      string      `json:"state"`
	LoadError  string      `json:"loadError,omitempty"`
	Empty      string      `json:"empty"`
}

func toSnapshotJSON(s board.Snapshot) snapshotJSON {
	out := snapshotJSON{
		Ideas:      mapSlice(s.Ideas, toIdeaJSON),
		Total:      s.Total,
		SearchTerm: s.SearchTerm,
		Filters: filtersJSON{
			Status:   s.Filters.Status,
			Category: s.Filters.Category,
			Sort:     string(s.Filters.Sort),
		},
		State: string(s.State),
		Empty: string(s.Empty),
	}
	if s.LoadErr != nil {
		out.LoadError = s.LoadErr.Error()
	}
	return out
}

type searchRequest struct {
	Term string `json:"term"`
}

type createBoardIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type ideaResultJSON struct {
	Idea  ideaJSON     `json:"idea"`
	Board snapshotJSON `json:"board"`
}

func (h *BoardHandler) board(w http.ResponseWriter, r *http.Request) (*board.Board, bool) {
	id, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "session", "missing session")
		return nil, false
	}
	return h.boards.Get(id), true
}

// loadedBoard is board plus a first load for sessions that never loaded. A
// failed first load is left in the snapshot rather than failing the request.
func (h *BoardHandler) loadedBoard(w http.ResponseWriter, r *http.Request) (*board.Board, bool) {
	b, ok := h.board(w, r)
	if ok && b.Snapshot().State == board.LoadStateIdle {
		_ = b.Load(r.Context())
	}
	return b, ok
}

// Snapshot handles GET /api/v1/board.
func (h *BoardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadedBoard(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotJSON(b.Snapshot()))
}

// Load handles POST /api/v1/board/load.
func (h *BoardHandler) Load(w http.ResponseWriter, r *http.Request) {
	b, ok := h.board(w, r)
	if !ok {
		return
	}
	if err := b.Load(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotJSON(b.Snapshot()))
}

// Search handles PUT /api/v1/board/search.
func (h *BoardHandler) Search(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadedBoard(w, r)
	if !ok {
		return
	}
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	b.SetSearchTerm(req.Term)
	writeJSON(w, http.StatusOK, toSnapshotJSON(b.Snapshot()))
}

// SetFilters handles PUT /api/v1/board/filters. Empty values mean "all"
// and newest first.
func (h *BoardHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadedBoard(w, r)
	if !ok {
		return
	}
	var req filtersJSON
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := b.SetFilters(board.Filters{
		Status:   req.Status,
		Category: req.Category,
		Sort:     board.SortOrder(req.Sort),
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotJSON(b.Snapshot()))
}

// ClearFilters handles DELETE /api/v1/board/filters.
func (h *BoardHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadedBoard(w, r)
	if !ok {
		return
	}
	b.ClearFilters()
	writeJSON(w, http.StatusOK, toSnapshotJSON(b.Snapshot()))
}

// CreateIdea handles POST /api/v1/board/ideas. When the idea is stored but
// the reload fails, the answer is still 201 and the snapshot carries the
// load error.
func (h *BoardHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	b, ok := h.board(w, r)
	if !ok {
		return
	}
	var req createBoardIdeaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := b.Create(r.Context(), board.CreateIdeaInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.IdeaCategory(req.Category),
	})
	if err != nil && (created.ID == 0 || !errors.Is(err, domain.ErrLoad)) {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ideaResultJSON{
		Idea:  toIdeaJSON(created),
		Board: toSnapshotJSON(b.Snapshot()),
	})
}

// Vote handles POST /api/v1/board/ideas/{id}/vote. It toggles: a second
// call takes the vote back.
func (h *BoardHandler) Vote(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadedBoard(w, r)
	if !ok {
		return
	}
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	i, err := b.ToggleVote(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ideaResultJSON{Idea: toIdeaJSON(i), Board: toSnapshotJSON(b.Snapshot())})
}

// ChangeStatus handles PUT /api/v1/board/ideas/{id}/status.
func (h *BoardHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	b, ok := h.loadedBoard(w, r)
	if !ok {
		return
	}
	id, err := idParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	i, err := b.ChangeStatus(r.Context(), id, domain.IdeaStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ideaResultJSON{Idea: toIdeaJSON(i), Board: toSnapshotJSON(b.Snapshot())})
}
