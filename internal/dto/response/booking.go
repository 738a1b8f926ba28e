package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type BookedSeat struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
	Class  string `json:"class"`
}

type BookingResponse struct {
	ID         string               `json:"id"`
	UserID     string               `json:"user_id"`
	MovieID    string               `json:"movie_id"`
	TheaterID  string               `json:"theater_id"`
	ScreenID   string               `json:"screen_id"`
	ShowDate   string               `json:"show_date"`
	ShowTime   string               `json:"show_time"`
	Seats      []BookedSeat         `json:"seats"`
	Subtotal   float64              `json:"subtotal"`
	Discount   float64              `json:"discount"`
	TotalPrice float64              `json:"total_price"`
	CouponCode *string              `json:"coupon_code,omitempty"`
	Status     entity.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	seats := make([]BookedSeat, len(booking.Seats))
	for i, seat := range booking.Seats {
		seats[i] = BookedSeat{
			Row:    seat.Row,
			Number: seat.Number,
			Class:  string(seat.Class),
		}
	}

	return BookingResponse{
		ID:         booking.ID.String(),
		UserID:     booking.UserID.String(),
		MovieID:    booking.MovieID.String(),
		TheaterID:  booking.TheaterID.String(),
		ScreenID:   booking.ScreenID.String(),
		ShowDate:   booking.ShowDate.Format("2006-01-02"),
		ShowTime:   booking.ShowTime,
		Seats:      seats,
		Subtotal:   booking.Subtotal,
		Discount:   booking.Discount,
		TotalPrice: booking.TotalPrice,
		CouponCode: booking.CouponCode,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}
