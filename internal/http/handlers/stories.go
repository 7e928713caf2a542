package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/hacker-stories/internal/errors"
	"github.com/pribylovaa/hacker-stories/internal/models"
)

// SearchRequest - тело POST /search.
type SearchRequest struct {
	Term string `json:"term"`
}

// SortResponse - ответ POST /stories/sort/{field}.
type SortResponse struct {
	Field     string            `json:"field"`
	Ascending bool              `json:"ascending"`
	State     models.FetchState `json:"state"`
}

// HistoryResponse - ответ GET /history.
type HistoryResponse struct {
	URLs         []string `json:"urls"`
	LastSearches []string `json:"last_searches"`
}

// TermResponse - ответ GET /search/term.
type TermResponse struct {
	Term string `json:"term"`
}

func (h *Handlers) ListStories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Stories(r.URL.Query().Get("filter")))
}

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	state, err := h.Service.Search(r.Context(), req.Term)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (h *Handlers) LoadMore(w http.ResponseWriter, r *http.Request) {
	state, err := h.Service.LoadMore(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (h *Handlers) Refetch(w http.ResponseWriter, r *http.Request) {
	state, err := h.Service.Refetch(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (h *Handlers) Sort(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")

	state, ascending, err := h.Service.Sort(r.Context(), field)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SortResponse{Field: field, Ascending: ascending, State: state})
}

func (h *Handlers) RemoveStory(w http.ResponseWriter, r *http.Request) {
	state, err := h.Service.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HistoryResponse{
		URLs:         h.Service.History(),
		LastSearches: h.Service.LastSearches(),
	})
}

func (h *Handlers) Term(w http.ResponseWriter, r *http.Request) {
	term, err := h.Service.Term(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TermResponse{Term: term})
}
