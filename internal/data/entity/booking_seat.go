package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingSeat is a snapshot of the seat at booking time. It copies row,
// number and class rather than referencing the live seat map, so later
// catalog edits never change a historical booking. The show columns are
// denormalized to carry the unique seat-per-show constraint.
type BookingSeat struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	ScreenID  uuid.UUID `db:"screen_id"`
	ShowDate  time.Time `db:"show_date"`
	ShowTime  string    `db:"show_time"`
	Row       string    `db:"seat_row"`
	Number    int       `db:"seat_number"`
	Class     SeatClass `db:"seat_class"`
}
