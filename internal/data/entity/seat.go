package entity

import "github.com/google/uuid"

type SeatClass string

const (
	SeatClassStandard SeatClass = "standard"
	SeatClassPremium  SeatClass = "premium"
)

// Seat is static reference data; identity is (row, number) within a screen.
type Seat struct {
	BaseSimple
	ScreenID uuid.UUID `db:"screen_id"`
	Row      string    `db:"seat_row"`    // A, B, C, etc.
	Number   int       `db:"seat_number"` // 1, 2, 3, etc.
	Class    SeatClass `db:"seat_class"`
}
