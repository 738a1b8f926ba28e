package repository

import (
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Movie    MovieRepository
	Theater  TheaterRepository
	Screen   ScreenRepository
	Seat     SeatRepository
	Booking  BookingRepository
	Coupon   CouponRepository
	Favorite FavoriteRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Theater:  NewTheaterRepository(db, log),
		Screen:   NewScreenRepository(db, log),
		Seat:     NewSeatRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Coupon:   NewCouponRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
	}
}
