package adaptor

import (
	"net/http"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favorite")),
	}
}

// ListFavorites handles GET /api/favorites (protected)
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	favorites, err := h.service.ListFavorites(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "success", favorites)
}

// AddFavorite handles POST /api/favorites/{movieId} (protected)
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "movieId")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	favorites, err := h.service.AddFavorite(r.Context(), userID.String(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "add favorite")
		return
	}

	utils.ResponseSuccess(w, "success", favorites)
}

// RemoveFavorite handles DELETE /api/favorites/{movieId} (protected)
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "movieId")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	favorites, err := h.service.RemoveFavorite(r.Context(), userID.String(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "success", favorites)
}

// CheckFavorite handles GET /api/favorites/{movieId}/check (protected)
func (h *FavoriteHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "movieId")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	result, err := h.service.IsFavorite(r.Context(), userID.String(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "check favorite")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
