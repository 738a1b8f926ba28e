package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScreenRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screen, error)
	FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Screen, error)
}

type screenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreenRepository(db database.PgxIface, log *zap.Logger) ScreenRepository {
	return &screenRepository{
		db:  db,
		log: log.With(zap.String("repository", "screen")),
	}
}

func (r *screenRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screen, error) {
	query := `
		SELECT id, theater_id, screen_number, capacity, created_at, updated_at
		FROM screens
		WHERE id = $1
	`

	var screen entity.Screen
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screen.ID,
		&screen.TheaterID,
		&screen.ScreenNumber,
		&screen.Capacity,
		&screen.CreatedAt,
		&screen.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screen by ID",
			zap.Error(err),
			zap.String("screen_id", id.String()),
		)
		return nil, fmt.Errorf("find screen by ID %s: %w", id.String(), err)
	}

	return &screen, nil
}

func (r *screenRepository) FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Screen, error) {
	query := `
		SELECT id, theater_id, screen_number, capacity, created_at, updated_at
		FROM screens
		WHERE theater_id = $1
		ORDER BY screen_number
	`

	rows, err := r.db.Query(ctx, query, theaterID)
	if err != nil {
		r.log.Error("Failed to find screens by theater ID",
			zap.Error(err),
			zap.String("theater_id", theaterID.String()),
		)
		return nil, fmt.Errorf("find screens by theater ID %s: %w", theaterID.String(), err)
	}
	defer rows.Close()

	var screens []*entity.Screen
	for rows.Next() {
		var screen entity.Screen
		err := rows.Scan(
			&screen.ID,
			&screen.TheaterID,
			&screen.ScreenNumber,
			&screen.Capacity,
			&screen.CreatedAt,
			&screen.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan screen row", zap.Error(err))
			return nil, fmt.Errorf("scan screen row: %w", err)
		}
		screens = append(screens, &screen)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate screen rows", zap.Error(err))
		return nil, fmt.Errorf("iterate screen rows: %w", err)
	}

	return screens, nil
}
