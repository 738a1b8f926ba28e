package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type favoriteFixture struct {
	userID    uuid.UUID
	movieID   uuid.UUID
	movies    *fakeMovieRepo
	favorites *fakeFavoriteRepo
	svc       FavoriteService
}

func newFavoriteFixture() *favoriteFixture {
	f := &favoriteFixture{
		userID:  uuid.New(),
		movieID: uuid.New(),
	}
	f.movies = &fakeMovieRepo{movies: map[uuid.UUID]*entity.Movie{
		f.movieID: {Base: entity.Base{ID: f.movieID}, Title: "Arrival", Genre: "sci-fi", DurationMinutes: 116},
	}}
	f.favorites = newFakeFavoriteRepo(f.movies)

	repo := &repository.Repository{
		Movie:    f.movies,
		Favorite: f.favorites,
	}
	f.svc = NewFavoriteService(repo, zap.NewNop())
	return f
}

func TestAddFavorite(t *testing.T) {
	f := newFavoriteFixture()

	favorites, err := f.svc.AddFavorite(context.Background(), f.userID.String(), f.movieID.String())
	if err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	if len(favorites) != 1 || favorites[0].Title != "Arrival" {
		t.Fatalf("favorites = %+v, want [Arrival]", favorites)
	}
}

func TestAddFavoriteDuplicate(t *testing.T) {
	f := newFavoriteFixture()

	if _, err := f.svc.AddFavorite(context.Background(), f.userID.String(), f.movieID.String()); err != nil {
		t.Fatalf("first AddFavorite() error = %v", err)
	}

	_, err := f.svc.AddFavorite(context.Background(), f.userID.String(), f.movieID.String())
	if !errors.Is(err, repository.ErrAlreadyFavorite) {
		t.Fatalf("error = %v, want ErrAlreadyFavorite", err)
	}
}

func TestAddFavoriteUnknownMovie(t *testing.T) {
	f := newFavoriteFixture()

	_, err := f.svc.AddFavorite(context.Background(), f.userID.String(), uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if len(f.favorites.byUser[f.userID]) != 0 {
		t.Fatalf("stored favorites = %d, want 0", len(f.favorites.byUser[f.userID]))
	}
}

func TestRemoveFavoriteIdempotent(t *testing.T) {
	f := newFavoriteFixture()

	if _, err := f.svc.AddFavorite(context.Background(), f.userID.String(), f.movieID.String()); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}

	favorites, err := f.svc.RemoveFavorite(context.Background(), f.userID.String(), f.movieID.String())
	if err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("favorites = %d, want 0", len(favorites))
	}

	// Removing again is harmless and keeps the empty list.
	favorites, err = f.svc.RemoveFavorite(context.Background(), f.userID.String(), f.movieID.String())
	if err != nil {
		t.Fatalf("second RemoveFavorite() error = %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("favorites after retry = %d, want 0", len(favorites))
	}
}

func TestIsFavorite(t *testing.T) {
	f := newFavoriteFixture()

	check, err := f.svc.IsFavorite(context.Background(), f.userID.String(), f.movieID.String())
	if err != nil {
		t.Fatalf("IsFavorite() error = %v", err)
	}
	if check.IsFavorite {
		t.Fatal("is_favorite = true, want false")
	}

	if _, err := f.svc.AddFavorite(context.Background(), f.userID.String(), f.movieID.String()); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}

	check, err = f.svc.IsFavorite(context.Background(), f.userID.String(), f.movieID.String())
	if err != nil {
		t.Fatalf("IsFavorite() error = %v", err)
	}
	if !check.IsFavorite {
		t.Fatal("is_favorite = false, want true")
	}
}

func TestListFavoritesPerUser(t *testing.T) {
	f := newFavoriteFixture()
	other := uuid.New()

	if _, err := f.svc.AddFavorite(context.Background(), f.userID.String(), f.movieID.String()); err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}

	favorites, err := f.svc.ListFavorites(context.Background(), other.String())
	if err != nil {
		t.Fatalf("ListFavorites() error = %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("other user's favorites = %d, want 0", len(favorites))
	}
}

func TestFavoriteInvalidMovieID(t *testing.T) {
	f := newFavoriteFixture()

	_, err := f.svc.AddFavorite(context.Background(), f.userID.String(), "not-a-uuid")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
