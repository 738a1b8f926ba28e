package entity

type Movie struct {
	Base
	Title           string `db:"title"`
	Genre           string `db:"genre"`
	DurationMinutes int    `db:"duration_minutes"`
}
