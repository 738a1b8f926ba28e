package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	Base
	UserID     uuid.UUID     `db:"user_id"`
	MovieID    uuid.UUID     `db:"movie_id"`
	TheaterID  uuid.UUID     `db:"theater_id"`
	ScreenID   uuid.UUID     `db:"screen_id"`
	ShowDate   time.Time     `db:"show_date"`
	ShowTime   string        `db:"show_time"` // HH:MM
	Subtotal   float64       `db:"subtotal"`
	Discount   float64       `db:"discount"`
	TotalPrice float64       `db:"total_price"` // subtotal - discount
	CouponCode *string       `db:"coupon_code"`
	Status     BookingStatus `db:"status"`

	// Seat snapshot, loaded from booking_seats
	Seats []BookingSeat `db:"-"`
}
