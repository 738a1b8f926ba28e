package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService serves the read-only movie/theater/screen surface the
// booking UI browses before picking seats.
type CatalogService interface {
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	ListTheaters(ctx context.Context) ([]response.TheaterResponse, error)
	GetTheater(ctx context.Context, theaterID string) (*response.TheaterResponse, error)
	ListScreens(ctx context.Context, theaterID string) ([]response.ScreenResponse, error)
	GetScreen(ctx context.Context, screenID string) (*response.ScreenResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return movieResponses, nil
}

func (s *catalogService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %s", ErrValidation, movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, ErrNotFound)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *catalogService) ListTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	theaters, err := s.repo.Theater.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list theaters", zap.Error(err))
		return nil, fmt.Errorf("list theaters: %w", err)
	}

	theaterResponses := make([]response.TheaterResponse, len(theaters))
	for i, theater := range theaters {
		theaterResponses[i] = response.TheaterToResponse(theater)
	}

	return theaterResponses, nil
}

func (s *catalogService) GetTheater(ctx context.Context, theaterID string) (*response.TheaterResponse, error) {
	id, err := uuid.Parse(theaterID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid theater ID %s", ErrValidation, theaterID)
	}

	theater, err := s.repo.Theater.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get theater: %w", err)
	}
	if theater == nil {
		return nil, fmt.Errorf("theater %s: %w", theaterID, ErrNotFound)
	}

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}

func (s *catalogService) ListScreens(ctx context.Context, theaterID string) ([]response.ScreenResponse, error) {
	id, err := uuid.Parse(theaterID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid theater ID %s", ErrValidation, theaterID)
	}

	theater, err := s.repo.Theater.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get theater: %w", err)
	}
	if theater == nil {
		return nil, fmt.Errorf("theater %s: %w", theaterID, ErrNotFound)
	}

	screens, err := s.repo.Screen.FindByTheaterID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list screens: %w", err)
	}

	screenResponses := make([]response.ScreenResponse, len(screens))
	for i, screen := range screens {
		// Seat maps are omitted in the list view
		screenResponses[i] = response.ScreenToResponse(screen, nil)
	}

	return screenResponses, nil
}

func (s *catalogService) GetScreen(ctx context.Context, screenID string) (*response.ScreenResponse, error) {
	id, err := uuid.Parse(screenID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid screen ID %s", ErrValidation, screenID)
	}

	screen, err := s.repo.Screen.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get screen: %w", err)
	}
	if screen == nil {
		return nil, fmt.Errorf("screen %s: %w", screenID, ErrNotFound)
	}

	seats, err := s.repo.Seat.FindByScreenID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get screen seats: %w", err)
	}

	resp := response.ScreenToResponse(screen, seats)
	return &resp, nil
}
