package entity

import "github.com/google/uuid"

type Screen struct {
	Base
	TheaterID    uuid.UUID `db:"theater_id"`
	ScreenNumber int       `db:"screen_number"`
	Capacity     int       `db:"capacity"` // capacity >= number of seats
}
