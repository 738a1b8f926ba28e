package adaptor

import (
	"net/http"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListMovies handles GET /api/movies (public)
func (h *CatalogHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovie handles GET /api/movies/{id} (public)
func (h *CatalogHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetMovie(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// ListTheaters handles GET /api/theaters (public)
func (h *CatalogHandler) ListTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := h.service.ListTheaters(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list theaters")
		return
	}

	utils.ResponseSuccess(w, "success", theaters)
}

// GetTheater handles GET /api/theaters/{id} (public)
func (h *CatalogHandler) GetTheater(w http.ResponseWriter, r *http.Request) {
	theaterID := chi.URLParam(r, "id")
	if theaterID == "" {
		utils.ResponseBadRequest(w, "Theater ID is required", nil)
		return
	}

	theater, err := h.service.GetTheater(r.Context(), theaterID)
	if err != nil {
		handleServiceError(w, h.log, err, "get theater")
		return
	}

	utils.ResponseSuccess(w, "success", theater)
}

// ListScreens handles GET /api/theaters/{id}/screens (public)
func (h *CatalogHandler) ListScreens(w http.ResponseWriter, r *http.Request) {
	theaterID := chi.URLParam(r, "id")
	if theaterID == "" {
		utils.ResponseBadRequest(w, "Theater ID is required", nil)
		return
	}

	screens, err := h.service.ListScreens(r.Context(), theaterID)
	if err != nil {
		handleServiceError(w, h.log, err, "list screens")
		return
	}

	utils.ResponseSuccess(w, "success", screens)
}

// GetScreen handles GET /api/screens/{id} (public)
func (h *CatalogHandler) GetScreen(w http.ResponseWriter, r *http.Request) {
	screenID := chi.URLParam(r, "id")
	if screenID == "" {
		utils.ResponseBadRequest(w, "Screen ID is required", nil)
		return
	}

	screen, err := h.service.GetScreen(r.Context(), screenID)
	if err != nil {
		handleServiceError(w, h.log, err, "get screen")
		return
	}

	utils.ResponseSuccess(w, "success", screen)
}
