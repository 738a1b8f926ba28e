package repository

import "errors"

var (
	// ErrSeatTaken means the booking_seats unique index rejected a seat that
	// is already claimed for the same screen, date and time.
	ErrSeatTaken = errors.New("seat already booked for this show")

	// ErrSeatNotFound means a requested (row, number) pair does not exist on
	// the screen's seat map.
	ErrSeatNotFound = errors.New("seat not found on screen")

	// ErrCouponExhausted means a conditional usage increment matched no rows
	// because used_count already reached usage_limit.
	ErrCouponExhausted = errors.New("coupon usage limit reached")

	// ErrDuplicateCouponCode means a coupon with the same code already exists.
	ErrDuplicateCouponCode = errors.New("coupon code already exists")

	// ErrAlreadyFavorite means the movie is already on the user's favorites
	// list, rejected by the (user_id, movie_id) primary key.
	ErrAlreadyFavorite = errors.New("movie already in favorites")
)
