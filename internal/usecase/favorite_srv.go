package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FavoriteService maintains each user's favorite-movies list. Mutations
// return the updated list so the client never needs a follow-up fetch.
type FavoriteService interface {
	ListFavorites(ctx context.Context, userID string) ([]response.MovieResponse, error)
	AddFavorite(ctx context.Context, userID, movieID string) ([]response.MovieResponse, error)
	RemoveFavorite(ctx context.Context, userID, movieID string) ([]response.MovieResponse, error)
	IsFavorite(ctx context.Context, userID, movieID string) (*response.FavoriteCheckResponse, error)
}

type favoriteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo: repo,
		log:  log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID string) ([]response.MovieResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	return s.listFor(ctx, userUUID)
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID, movieID string) ([]response.MovieResponse, error) {
	userUUID, movieUUID, err := parseFavoriteIDs(userID, movieID)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	if err := s.repo.Favorite.Add(ctx, userUUID, movieUUID); err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	s.log.Info("Favorite added",
		zap.String("user_id", userID),
		zap.String("movie_id", movieID),
	)

	return s.listFor(ctx, userUUID)
}

// RemoveFavorite is idempotent: removing a movie that is not on the list
// just returns the list unchanged.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, movieID string) ([]response.MovieResponse, error) {
	userUUID, movieUUID, err := parseFavoriteIDs(userID, movieID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Favorite.Remove(ctx, userUUID, movieUUID); err != nil {
		return nil, fmt.Errorf("remove favorite: %w", err)
	}

	s.log.Info("Favorite removed",
		zap.String("user_id", userID),
		zap.String("movie_id", movieID),
	)

	return s.listFor(ctx, userUUID)
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, movieID string) (*response.FavoriteCheckResponse, error) {
	userUUID, movieUUID, err := parseFavoriteIDs(userID, movieID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Favorite.Exists(ctx, userUUID, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("check favorite: %w", err)
	}

	return &response.FavoriteCheckResponse{IsFavorite: exists}, nil
}

func (s *favoriteService) listFor(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error) {
	movies, err := s.repo.Favorite.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list favorites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return movieResponses, nil
}

func parseFavoriteIDs(userID, movieID string) (uuid.UUID, uuid.UUID, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: invalid movie ID %s", ErrValidation, movieID)
	}
	return userUUID, movieUUID, nil
}
