package usecase

import "errors"

var (
	// ErrNotFound covers unknown movies, theaters, screens, bookings and
	// coupons. Acting on another user's booking returns it too, so the
	// response never reveals whether the booking exists.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed or missing request fields.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateSeat means the same (row, number) appeared twice in one
	// booking request.
	ErrDuplicateSeat = errors.New("duplicate seat selection")

	// ErrCouponInvalid is the generic coupon rejection. Which rule failed is
	// deliberately not exposed.
	ErrCouponInvalid = errors.New("coupon is not valid for this purchase")
)
