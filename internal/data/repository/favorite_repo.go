package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type FavoriteRepository interface {
	// FindByUserID returns the user's favorite movies, most recently added first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error)
	// Add inserts a favorite; a duplicate maps to ErrAlreadyFavorite.
	Add(ctx context.Context, userID, movieID uuid.UUID) error
	// Remove deletes a favorite. Removing an absent favorite is not an error.
	Remove(ctx context.Context, userID, movieID uuid.UUID) error
	Exists(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	query := `
		SELECT m.id, m.title, m.genre, m.duration_minutes, m.created_at, m.updated_at
		FROM favorites f
		JOIN movies m ON m.id = f.movie_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find favorites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorites for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.DurationMinutes,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate favorite rows", zap.Error(err))
		return nil, fmt.Errorf("iterate favorite rows: %w", err)
	}

	return movies, nil
}

func (r *favoriteRepository) Add(ctx context.Context, userID, movieID uuid.UUID) error {
	query := `INSERT INTO favorites (user_id, movie_id, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, userID, movieID, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("movie %s: %w", movieID.String(), ErrAlreadyFavorite)
		}
		r.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("add favorite %s: %w", movieID.String(), err)
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, movieID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`

	_, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("remove favorite %s: %w", movieID.String(), err)
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND movie_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, movieID).Scan(&exists); err != nil {
		r.log.Error("Failed to check favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return false, fmt.Errorf("check favorite %s: %w", movieID.String(), err)
	}

	return exists, nil
}
