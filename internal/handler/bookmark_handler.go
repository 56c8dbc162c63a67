package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brivazz/ugc-sprint-2/internal/service"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(s *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: s}
}

type bookmarkResponse struct {
	FilmID string `json:"film_id"`
}

// @Summary Listar los marcadores del usuario
// @Tags film_bookmarks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} bookmarkResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/film_bookmarks/ [get]
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	bookmarks, err := h.svc.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "bookmarks not found")
		return
	}

	out := make([]bookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, bookmarkResponse{FilmID: b.FilmID})
	}
	writeJSON(w, http.StatusOK, out)
}

// @Summary Agregar un film a marcadores
// @Tags film_bookmarks
// @Param film_id path string true "UUID del film"
// @Security BearerAuth
// @Success 201 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/film_bookmarks/{film_id} [post]
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "film_id")
	userID := UserIDFromContext(r.Context())

	if err := h.svc.Add(r.Context(), filmID, userID); err != nil {
		writeError(w, http.StatusNotFound, "entry not added")
		return
	}
	writeOk(w, http.StatusCreated)
}

// @Summary Sacar un film de marcadores
// @Tags film_bookmarks
// @Param film_id path string true "UUID del film"
// @Security BearerAuth
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/film_bookmarks/{film_id} [delete]
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "film_id")
	userID := UserIDFromContext(r.Context())

	if err := h.svc.Remove(r.Context(), filmID, userID); err != nil {
		writeError(w, http.StatusNotFound, "bookmarks not found")
		return
	}
	writeOk(w, http.StatusOK)
}
