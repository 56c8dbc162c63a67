package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/brivazz/ugc-sprint-2/internal/service"
)

type ScoreHandler struct {
	svc      *service.ScoreService
	validate *validator.Validate
}

func NewScoreHandler(s *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: s, validate: validator.New()}
}

type scoreRequest struct {
	FilmID    string  `json:"film_id" validate:"required"`
	FilmScore float64 `json:"film_score" validate:"gte=0,lte=10"`
}

type averageResponse struct {
	AverageFilmScore float64 `json:"average_film_score"`
}

// @Summary Promedio de puntuaciones de un film
// @Tags film_score
// @Produce json
// @Param film_id path string true "UUID del film"
// @Success 200 {object} averageResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/film_score/{film_id} [get]
func (h *ScoreHandler) GetAverage(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "film_id")

	avg, err := h.svc.GetAverage(r.Context(), filmID)
	if err != nil {
		writeError(w, http.StatusNotFound, "nadie puntuó el film todavía")
		return
	}
	writeJSON(w, http.StatusOK, averageResponse{AverageFilmScore: avg})
}

// @Summary Puntuar un film
// @Tags film_score
// @Accept json
// @Param body body scoreRequest true "puntuación"
// @Security BearerAuth
// @Success 201 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/film_score/ [post]
func (h *ScoreHandler) AddScore(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Add(r.Context(), req.FilmID, userID, req.FilmScore); err != nil {
		writeError(w, http.StatusBadRequest, "error when adding a record")
		return
	}
	writeOk(w, http.StatusCreated)
}

// @Summary Borrar la puntuación propia de un film
// @Tags film_score
// @Param film_id path string true "UUID del film"
// @Security BearerAuth
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/film_score/{film_id} [delete]
func (h *ScoreHandler) DeleteScore(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "film_id")
	userID := UserIDFromContext(r.Context())

	if err := h.svc.Delete(r.Context(), filmID, userID); err != nil {
		writeError(w, http.StatusBadRequest, "error deleting a record")
		return
	}
	writeOk(w, http.StatusOK)
}
