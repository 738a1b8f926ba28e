package request

// SeatSelection identifies one requested seat by position. The seat class is
// resolved server-side from the screen's seat map, never taken from the client.
type SeatSelection struct {
	Row    string `json:"row" validate:"required,max=5"`
	Number int    `json:"number" validate:"required,min=1"`
}

type CreateBookingRequest struct {
	MovieID   string          `json:"movie_id" validate:"required,uuid4"`
	TheaterID string          `json:"theater_id" validate:"required,uuid4"`
	ScreenID  string          `json:"screen_id" validate:"required,uuid4"`
	Seats     []SeatSelection `json:"seats" validate:"required,min=1,dive"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string          `json:"time" validate:"required,datetime=15:04"`

	CouponCode string `json:"coupon_code,omitempty" validate:"omitempty,max=50"`

	// TotalPrice is accepted for backward compatibility with older clients
	// but ignored: the total is always computed server-side.
	TotalPrice float64 `json:"total_price,omitempty"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Status    string `json:"status" validate:"omitempty,oneof=confirmed cancelled"`
	SortBy    string `json:"sort_by" validate:"omitempty,oneof=created_at createdAt show_date date total_price totalPrice"`
	SortOrder string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
}
