package response

import "movie-booking/internal/data/entity"

type MovieResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Genre           string `json:"genre,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
}

type TheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

type ScreenSeatResponse struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
	Class  string `json:"class"`
}

type ScreenResponse struct {
	ID           string               `json:"id"`
	TheaterID    string               `json:"theater_id"`
	ScreenNumber int                  `json:"screen_number"`
	Capacity     int                  `json:"capacity"`
	Seats        []ScreenSeatResponse `json:"seats,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:              movie.ID.String(),
		Title:           movie.Title,
		Genre:           movie.Genre,
		DurationMinutes: movie.DurationMinutes,
	}
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:       theater.ID.String(),
		Name:     theater.Name,
		Location: theater.Location,
	}
}

func ScreenToResponse(screen *entity.Screen, seats []*entity.Seat) ScreenResponse {
	seatResponses := make([]ScreenSeatResponse, len(seats))
	for i, seat := range seats {
		seatResponses[i] = ScreenSeatResponse{
			Row:    seat.Row,
			Number: seat.Number,
			Class:  string(seat.Class),
		}
	}

	return ScreenResponse{
		ID:           screen.ID.String(),
		TheaterID:    screen.TheaterID.String(),
		ScreenNumber: screen.ScreenNumber,
		Capacity:     screen.Capacity,
		Seats:        seatResponses,
	}
}
