package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/brivazz/ugc-sprint-2/internal/repository"
)

var errInvalidPagination = errors.New("invalid pagination params")

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOk(w http.ResponseWriter, status int) {
	writeJSON(w, status, messageResponse{Message: "Ok"})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// paginateParams lee page_number y page_size del query string.
// page_number >= 1, page_size entre 1 y 100 (50 por defecto).
func paginateParams(r *http.Request) (repository.Page, error) {
	page := repository.Page{Number: 1, Size: defaultPageSize}

	if v := r.URL.Query().Get("page_number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return page, errInvalidPagination
		}
		page.Number = n
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageSize {
			return page, errInvalidPagination
		}
		page.Size = n
	}
	return page, nil
}
