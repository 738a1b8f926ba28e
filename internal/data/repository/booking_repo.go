package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create persists the booking and its seat snapshot in one transaction.
	// A seat already claimed for the same show fails with ErrSeatTaken.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, status entity.BookingStatus, sortBy, sortOrder string, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID, status entity.BookingStatus) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertBooking := `
		INSERT INTO bookings (id, user_id, movie_id, theater_id, screen_id, show_date, show_time,
		                      subtotal, discount, total_price, coupon_code, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = tx.Exec(ctx, insertBooking,
		booking.ID,
		booking.UserID,
		booking.MovieID,
		booking.TheaterID,
		booking.ScreenID,
		booking.ShowDate,
		booking.ShowTime,
		booking.Subtotal,
		booking.Discount,
		booking.TotalPrice,
		booking.CouponCode,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	insertSeat := `
		INSERT INTO booking_seats (id, booking_id, screen_id, show_date, show_time,
		                           seat_row, seat_number, seat_class, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, seat := range booking.Seats {
		_, err = tx.Exec(ctx, insertSeat,
			seat.ID,
			seat.BookingID,
			seat.ScreenID,
			seat.ShowDate,
			seat.ShowTime,
			seat.Row,
			seat.Number,
			seat.Class,
			seat.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				r.log.Warn("Seat conflict on booking create",
					zap.String("booking_id", booking.ID.String()),
					zap.String("seat", fmt.Sprintf("%s%d", seat.Row, seat.Number)),
				)
				return fmt.Errorf("seat %s%d: %w", seat.Row, seat.Number, ErrSeatTaken)
			}
			r.log.Error("Failed to insert booking seat",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			return fmt.Errorf("insert booking seat: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, movie_id, theater_id, screen_id, show_date, show_time,
		       subtotal, discount, total_price, coupon_code, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.MovieID,
		&booking.TheaterID,
		&booking.ScreenID,
		&booking.ShowDate,
		&booking.ShowTime,
		&booking.Subtotal,
		&booking.Discount,
		&booking.TotalPrice,
		&booking.CouponCode,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	seats, err := r.findSeats(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Seats = seats

	return &booking, nil
}

// orderClause maps client sort parameters to a safe ORDER BY clause.
// Unknown keys fall back to created_at.
func orderClause(sortBy, sortOrder string) string {
	column := "created_at"
	switch sortBy {
	case "created_at", "createdAt":
		column = "created_at"
	case "show_date", "date":
		column = "show_date"
	case "total_price", "totalPrice":
		column = "total_price"
	}

	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}

	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status entity.BookingStatus, sortBy, sortOrder string, limit, offset int) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, movie_id, theater_id, screen_id, show_date, show_time,
		       subtotal, discount, total_price, coupon_code, status, created_at, updated_at
		FROM bookings
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		%s
		LIMIT $3 OFFSET $4
	`, orderClause(sortBy, sortOrder))

	rows, err := r.db.Query(ctx, query, userID, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.MovieID,
			&booking.TheaterID,
			&booking.ScreenID,
			&booking.ShowDate,
			&booking.ShowTime,
			&booking.Subtotal,
			&booking.Discount,
			&booking.TotalPrice,
			&booking.CouponCode,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	for _, booking := range bookings {
		seats, err := r.findSeats(ctx, booking.ID)
		if err != nil {
			return nil, err
		}
		booking.Seats = seats
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID, status entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND ($2 = '' OR status = $2)`

	var count int64
	err := r.db.QueryRow(ctx, query, userID, string(status)).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) findSeats(ctx context.Context, bookingID uuid.UUID) ([]entity.BookingSeat, error) {
	query := `
		SELECT id, booking_id, screen_id, show_date, show_time, seat_row, seat_number, seat_class, created_at
		FROM booking_seats
		WHERE booking_id = $1
		ORDER BY created_at, seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking seats",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking seats %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var seats []entity.BookingSeat
	for rows.Next() {
		var seat entity.BookingSeat
		err := rows.Scan(
			&seat.ID,
			&seat.BookingID,
			&seat.ScreenID,
			&seat.ShowDate,
			&seat.ShowTime,
			&seat.Row,
			&seat.Number,
			&seat.Class,
			&seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booking seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking seat rows", zap.Error(err))
		return nil, fmt.Errorf("iterate booking seat rows: %w", err)
	}

	return seats, nil
}
