package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeatRef identifies a seat by its position on a screen.
type SeatRef struct {
	Row    string
	Number int
}

type SeatRepository interface {
	FindByScreenID(ctx context.Context, screenID uuid.UUID) ([]*entity.Seat, error)
	// ResolveSelections looks up each requested (row, number) pair on the
	// screen's seat map, preserving input order. Any missing pair fails the
	// whole lookup with ErrSeatNotFound.
	ResolveSelections(ctx context.Context, screenID uuid.UUID, refs []SeatRef) ([]*entity.Seat, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) FindByScreenID(ctx context.Context, screenID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, screen_id, seat_row, seat_number, seat_class, created_at
		FROM screen_seats
		WHERE screen_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, screenID)
	if err != nil {
		r.log.Error("Failed to find seats by screen ID",
			zap.Error(err),
			zap.String("screen_id", screenID.String()),
		)
		return nil, fmt.Errorf("find seats by screen ID %s: %w", screenID.String(), err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.ScreenID,
			&seat.Row,
			&seat.Number,
			&seat.Class,
			&seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate seat rows", zap.Error(err))
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) ResolveSelections(ctx context.Context, screenID uuid.UUID, refs []SeatRef) ([]*entity.Seat, error) {
	seats, err := r.FindByScreenID(ctx, screenID)
	if err != nil {
		return nil, err
	}

	byRef := make(map[SeatRef]*entity.Seat, len(seats))
	for _, seat := range seats {
		byRef[SeatRef{Row: seat.Row, Number: seat.Number}] = seat
	}

	resolved := make([]*entity.Seat, len(refs))
	for i, ref := range refs {
		seat, ok := byRef[ref]
		if !ok {
			return nil, fmt.Errorf("seat %s%d on screen %s: %w", ref.Row, ref.Number, screenID.String(), ErrSeatNotFound)
		}
		resolved[i] = seat
	}

	return resolved, nil
}
