package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/brivazz/ugc-sprint-2/internal/service"
)

type ReviewHandler struct {
	svc      *service.ReviewService
	validate *validator.Validate
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: s, validate: validator.New()}
}

type reviewRequest struct {
	ReviewText string  `json:"review_text" validate:"required"`
	FilmScore  float64 `json:"film_score" validate:"gte=0,lte=10"`
}

type reviewUpdateRequest struct {
	ReviewText *string  `json:"review_text,omitempty"`
	FilmScore  *float64 `json:"film_score,omitempty" validate:"omitempty,gte=0,lte=10"`
}

// @Summary Listar reseñas de un film
// @Tags film_reviews
// @Produce json
// @Param film_id path string true "UUID del film"
// @Param page_number query int false "Número de página (desde 1)"
// @Param page_size query int false "Registros por página (1 a 100)"
// @Success 200 {array} models.Review
// @Failure 404 {object} errorResponse
// @Router /api/v1/film_reviews/{film_id} [get]
func (h *ReviewHandler) GetFilmReviews(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "film_id")

	page, err := paginateParams(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	reviews, err := h.svc.Get(r.Context(), filmID, page)
	if err != nil {
		writeError(w, http.StatusNotFound, "film review not found")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// @Summary Agregar reseña a un film
// @Tags film_reviews
// @Accept json
// @Param film_id path string true "UUID del film"
// @Param body body reviewRequest true "reseña"
// @Security BearerAuth
// @Success 201 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/film_reviews/{film_id} [post]
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	filmID := chi.URLParam(r, "film_id")
	userID := UserIDFromContext(r.Context())

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.svc.Add(r.Context(), filmID, userID, req.ReviewText, req.FilmScore, time.Now()); err != nil {
		writeError(w, http.StatusBadRequest, "Review is not add.")
		return
	}
	writeOk(w, http.StatusCreated)
}

// @Summary Editar reseña
// @Tags film_reviews
// @Accept json
// @Produce json
// @Param review_id path string true "id de la reseña"
// @Param body body reviewUpdateRequest true "campos a cambiar"
// @Security BearerAuth
// @Success 200 {object} models.Review
// @Failure 400 {object} errorResponse
// @Router /api/v1/film_reviews/{review_id} [patch]
func (h *ReviewHandler) EditReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "review_id")
	userID := UserIDFromContext(r.Context())

	var req reviewUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.svc.Update(r.Context(), userID, reviewID, req.ReviewText, req.FilmScore)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Review not update")
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// @Summary Borrar reseña
// @Tags film_reviews
// @Param review_id path string true "id de la reseña"
// @Security BearerAuth
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/film_reviews/{review_id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "review_id")
	userID := UserIDFromContext(r.Context())

	if _, err := h.svc.Delete(r.Context(), userID, reviewID); err != nil {
		writeError(w, http.StatusBadRequest, "Review not delete")
		return
	}
	writeOk(w, http.StatusOK)
}
