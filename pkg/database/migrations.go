package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RunMigrations applies the schema at startup. Statements are idempotent.
func RunMigrations(ctx context.Context, db PgxIface, log *zap.Logger) error {
	migrations := []string{
		createUsersTable,
		createSessionsTable,
		createMoviesTable,
		createTheatersTable,
		createScreensTable,
		createScreenSeatsTable,
		createCouponsTable,
		createBookingsTable,
		createBookingSeatsTable,
		createFavoritesTable,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info("Database migrations completed", zap.Int("steps", len(migrations)))
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    role VARCHAR(20) NOT NULL DEFAULT 'customer',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
    token UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id),
    expires_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
    id UUID PRIMARY KEY,
    title VARCHAR(500) NOT NULL,
    genre VARCHAR(100),
    duration_minutes INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createTheatersTable = `
CREATE TABLE IF NOT EXISTS theaters (
    id UUID PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    location VARCHAR(500),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createScreensTable = `
CREATE TABLE IF NOT EXISTS screens (
    id UUID PRIMARY KEY,
    theater_id UUID NOT NULL REFERENCES theaters(id),
    screen_number INTEGER NOT NULL,
    capacity INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createScreenSeatsTable = `
CREATE TABLE IF NOT EXISTS screen_seats (
    id UUID PRIMARY KEY,
    screen_id UUID NOT NULL REFERENCES screens(id),
    seat_row VARCHAR(5) NOT NULL,
    seat_number INTEGER NOT NULL,
    seat_class VARCHAR(20) NOT NULL DEFAULT 'standard',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (screen_id, seat_row, seat_number)
);`

const createCouponsTable = `
CREATE TABLE IF NOT EXISTS coupons (
    id UUID PRIMARY KEY,
    code VARCHAR(50) UNIQUE NOT NULL,
    description TEXT NOT NULL,
    discount_type VARCHAR(20) NOT NULL,
    discount_value DOUBLE PRECISION NOT NULL,
    minimum_purchase DOUBLE PRECISION NOT NULL DEFAULT 0,
    maximum_discount DOUBLE PRECISION,
    valid_from TIMESTAMP NOT NULL,
    valid_until TIMESTAMP NOT NULL,
    usage_limit INTEGER,
    used_count INTEGER NOT NULL DEFAULT 0,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    applicable_movies UUID[] NOT NULL DEFAULT '{}',
    applicable_users UUID[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id),
    movie_id UUID NOT NULL,
    theater_id UUID NOT NULL,
    screen_id UUID NOT NULL,
    show_date DATE NOT NULL,
    show_time VARCHAR(5) NOT NULL,
    subtotal DOUBLE PRECISION NOT NULL,
    discount DOUBLE PRECISION NOT NULL DEFAULT 0,
    total_price DOUBLE PRECISION NOT NULL,
    coupon_code VARCHAR(50),
    status VARCHAR(20) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

// The unique index is the seat-conflict guard: two confirmed bookings can
// never claim the same seat for the same show. Cancelled bookings keep their
// snapshot rows, so a cancelled seat is not resold.
const createBookingSeatsTable = `
CREATE TABLE IF NOT EXISTS booking_seats (
    id UUID PRIMARY KEY,
    booking_id UUID NOT NULL REFERENCES bookings(id),
    screen_id UUID NOT NULL,
    show_date DATE NOT NULL,
    show_time VARCHAR(5) NOT NULL,
    seat_row VARCHAR(5) NOT NULL,
    seat_number INTEGER NOT NULL,
    seat_class VARCHAR(20) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    UNIQUE (screen_id, show_date, show_time, seat_row, seat_number)
);`

const createFavoritesTable = `
CREATE TABLE IF NOT EXISTS favorites (
    user_id UUID NOT NULL REFERENCES users(id),
    movie_id UUID NOT NULL REFERENCES movies(id),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, movie_id)
);`
