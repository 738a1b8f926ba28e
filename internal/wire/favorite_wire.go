package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFavorite(
	r chi.Router,
	favoriteHandler *adaptor.FavoriteHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All favorite routes require authentication
	r.Route("/api/favorites", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/favorites - the current user's favorite movies
		r.Get("/", favoriteHandler.ListFavorites)

		// POST /api/favorites/{movieId} - add a movie to favorites
		r.Post("/{movieId}", favoriteHandler.AddFavorite)

		// DELETE /api/favorites/{movieId} - remove a movie from favorites
		r.Delete("/{movieId}", favoriteHandler.RemoveFavorite)

		// GET /api/favorites/{movieId}/check - is the movie a favorite
		r.Get("/{movieId}/check", favoriteHandler.CheckFavorite)
	})
}
