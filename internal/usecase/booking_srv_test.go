package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bookingFixture struct {
	userID    uuid.UUID
	movieID   uuid.UUID
	theaterID uuid.UUID
	screenID  uuid.UUID

	movies   *fakeMovieRepo
	screens  *fakeScreenRepo
	seats    *fakeSeatRepo
	bookings *fakeBookingRepo
	coupons  *fakeCouponRepo

	svc BookingService
}

// newBookingFixture wires a booking service over in-memory repositories with
// one movie, one screen and a 2x2 seat map: row A premium, row B standard.
func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		userID:    uuid.New(),
		movieID:   uuid.New(),
		theaterID: uuid.New(),
		screenID:  uuid.New(),
		bookings:  newFakeBookingRepo(),
		coupons:   newFakeCouponRepo(),
	}

	f.movies = &fakeMovieRepo{movies: map[uuid.UUID]*entity.Movie{
		f.movieID: {Base: entity.Base{ID: f.movieID}, Title: "Arrival", Genre: "sci-fi", DurationMinutes: 116},
	}}
	f.screens = &fakeScreenRepo{screens: map[uuid.UUID]*entity.Screen{
		f.screenID: {Base: entity.Base{ID: f.screenID}, TheaterID: f.theaterID, ScreenNumber: 1, Capacity: 4},
	}}
	f.seats = &fakeSeatRepo{seats: map[uuid.UUID][]*entity.Seat{
		f.screenID: {
			{BaseSimple: entity.BaseSimple{ID: uuid.New()}, ScreenID: f.screenID, Row: "A", Number: 1, Class: entity.SeatClassPremium},
			{BaseSimple: entity.BaseSimple{ID: uuid.New()}, ScreenID: f.screenID, Row: "A", Number: 2, Class: entity.SeatClassPremium},
			{BaseSimple: entity.BaseSimple{ID: uuid.New()}, ScreenID: f.screenID, Row: "B", Number: 1, Class: entity.SeatClassStandard},
			{BaseSimple: entity.BaseSimple{ID: uuid.New()}, ScreenID: f.screenID, Row: "B", Number: 2, Class: entity.SeatClassStandard},
		},
	}}

	repo := &repository.Repository{
		Movie:   f.movies,
		Screen:  f.screens,
		Seat:    f.seats,
		Booking: f.bookings,
		Coupon:  f.coupons,
	}
	f.svc = NewBookingService(repo, testPricer(), zap.NewNop())
	return f
}

// validRequest selects premium A1 and standard B2: subtotal 25.
func (f *bookingFixture) validRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		MovieID:   f.movieID.String(),
		TheaterID: f.theaterID.String(),
		ScreenID:  f.screenID.String(),
		Seats: []request.SeatSelection{
			{Row: "A", Number: 1},
			{Row: "B", Number: 2},
		},
		Date: "2026-10-01",
		Time: "19:30",
	}
}

func (f *bookingFixture) addCoupon(c *entity.Coupon) *entity.Coupon {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.coupons.coupons[c.ID] = c
	return c
}

func fixedCoupon(code string, value float64) *entity.Coupon {
	return &entity.Coupon{
		Base:          entity.Base{ID: uuid.New()},
		Code:          code,
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: value,
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(time.Hour),
		IsActive:      true,
	}
}

func TestCreateBookingComputesTotalServerSide(t *testing.T) {
	f := newBookingFixture()

	req := f.validRequest()
	req.TotalPrice = 1 // client lies, must be ignored

	resp, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	if resp.Subtotal != 25 || resp.Discount != 0 || resp.TotalPrice != 25 {
		t.Fatalf("pricing = (%v, %v, %v), want (25, 0, 25)", resp.Subtotal, resp.Discount, resp.TotalPrice)
	}
	if resp.Status != entity.BookingStatusConfirmed {
		t.Fatalf("status = %s, want confirmed", resp.Status)
	}
	if resp.CouponCode != nil {
		t.Fatalf("coupon_code = %v, want nil", *resp.CouponCode)
	}
	if len(resp.Seats) != 2 {
		t.Fatalf("seats = %d, want 2", len(resp.Seats))
	}
	if resp.Seats[0].Row != "A" || resp.Seats[0].Class != "premium" {
		t.Fatalf("first seat = %+v, want A1 premium", resp.Seats[0])
	}
	if len(f.bookings.bookings) != 1 {
		t.Fatalf("persisted bookings = %d, want 1", len(f.bookings.bookings))
	}
}

func TestCreateBookingWithFixedCoupon(t *testing.T) {
	f := newBookingFixture()
	coupon := f.addCoupon(fixedCoupon("SAVE10", 10))

	req := f.validRequest()
	req.CouponCode = "save10" // matched case-insensitively

	resp, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	if resp.Discount != 10 || resp.TotalPrice != 15 {
		t.Fatalf("discount/total = %v/%v, want 10/15", resp.Discount, resp.TotalPrice)
	}
	if resp.CouponCode == nil || *resp.CouponCode != "SAVE10" {
		t.Fatalf("coupon_code = %v, want SAVE10", resp.CouponCode)
	}
	if f.coupons.increments != 1 {
		t.Fatalf("usage increments = %d, want 1", f.coupons.increments)
	}
	if coupon.UsedCount != 1 {
		t.Fatalf("used_count = %d, want 1", coupon.UsedCount)
	}
}

func TestCreateBookingUnknownCoupon(t *testing.T) {
	f := newBookingFixture()

	req := f.validRequest()
	req.CouponCode = "NOPE"

	_, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Fatalf("persisted bookings = %d, want 0", len(f.bookings.bookings))
	}
}

func TestCreateBookingExhaustedCoupon(t *testing.T) {
	f := newBookingFixture()
	limit := 5
	coupon := fixedCoupon("SOLDOUT", 10)
	coupon.UsageLimit = &limit
	coupon.UsedCount = 5
	f.addCoupon(coupon)

	req := f.validRequest()
	req.CouponCode = "SOLDOUT"

	_, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("error = %v, want ErrCouponInvalid", err)
	}
	if len(f.bookings.bookings) != 0 {
		t.Fatalf("persisted bookings = %d, want 0", len(f.bookings.bookings))
	}
	if f.coupons.increments != 0 {
		t.Fatalf("usage increments = %d, want 0", f.coupons.increments)
	}
}

func TestCreateBookingNoSeats(t *testing.T) {
	f := newBookingFixture()

	req := f.validRequest()
	req.Seats = nil

	_, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestCreateBookingDuplicateSeat(t *testing.T) {
	f := newBookingFixture()

	req := f.validRequest()
	req.Seats = []request.SeatSelection{
		{Row: "A", Number: 1},
		{Row: "A", Number: 1},
	}

	_, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if !errors.Is(err, ErrDuplicateSeat) {
		t.Fatalf("error = %v, want ErrDuplicateSeat", err)
	}
}

func TestCreateBookingUnknownSeat(t *testing.T) {
	f := newBookingFixture()

	req := f.validRequest()
	req.Seats = []request.SeatSelection{{Row: "Z", Number: 9}}

	_, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestCreateBookingUnknownMovie(t *testing.T) {
	f := newBookingFixture()

	req := f.validRequest()
	req.MovieID = uuid.New().String()

	_, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestCreateBookingScreenTheaterMismatch(t *testing.T) {
	f := newBookingFixture()

	req := f.validRequest()
	req.TheaterID = uuid.New().String()

	_, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestCreateBookingSeatTaken(t *testing.T) {
	f := newBookingFixture()
	f.addCoupon(fixedCoupon("SAVE10", 10))

	if _, err := f.svc.CreateBooking(context.Background(), f.userID.String(), f.validRequest()); err != nil {
		t.Fatalf("first CreateBooking() error = %v", err)
	}

	// Another user grabs the same seats for the same show, with a coupon.
	req := f.validRequest()
	req.CouponCode = "SAVE10"

	_, err := f.svc.CreateBooking(context.Background(), uuid.New().String(), req)
	if !errors.Is(err, repository.ErrSeatTaken) {
		t.Fatalf("error = %v, want ErrSeatTaken", err)
	}
	if len(f.bookings.bookings) != 1 {
		t.Fatalf("persisted bookings = %d, want 1", len(f.bookings.bookings))
	}
	if f.coupons.increments != 0 {
		t.Fatalf("usage increments = %d, want 0", f.coupons.increments)
	}
}

func TestCreateBookingSameSeatsDifferentShow(t *testing.T) {
	f := newBookingFixture()

	if _, err := f.svc.CreateBooking(context.Background(), f.userID.String(), f.validRequest()); err != nil {
		t.Fatalf("first CreateBooking() error = %v", err)
	}

	req := f.validRequest()
	req.Time = "22:00"

	if _, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req); err != nil {
		t.Fatalf("CreateBooking() for later show error = %v", err)
	}
}

func TestCreateBookingUsageIncrementFailureKeepsBooking(t *testing.T) {
	f := newBookingFixture()
	f.addCoupon(fixedCoupon("SAVE10", 10))
	f.coupons.incrementErr = errors.New("connection reset")

	req := f.validRequest()
	req.CouponCode = "SAVE10"

	resp, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req)
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if resp.TotalPrice != 15 {
		t.Fatalf("total = %v, want 15", resp.TotalPrice)
	}
	if len(f.bookings.bookings) != 1 {
		t.Fatalf("persisted bookings = %d, want 1", len(f.bookings.bookings))
	}
}

func TestCreateBookingSnapshotsSeatClass(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.svc.CreateBooking(context.Background(), f.userID.String(), f.validRequest())
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	// Reclassify every seat after the fact; the booking keeps its snapshot.
	for _, seat := range f.seats.seats[f.screenID] {
		seat.Class = entity.SeatClassStandard
	}

	got, err := f.svc.GetBooking(context.Background(), f.userID.String(), resp.ID)
	if err != nil {
		t.Fatalf("GetBooking() error = %v", err)
	}
	if got.Seats[0].Class != "premium" {
		t.Fatalf("seat class = %s, want premium snapshot", got.Seats[0].Class)
	}
}

func TestGetBookingOwnership(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.svc.CreateBooking(context.Background(), f.userID.String(), f.validRequest())
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	if _, err := f.svc.GetBooking(context.Background(), f.userID.String(), resp.ID); err != nil {
		t.Fatalf("owner GetBooking() error = %v", err)
	}

	if _, err := f.svc.GetBooking(context.Background(), uuid.New().String(), resp.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stranger GetBooking() error = %v, want ErrNotFound", err)
	}

	if _, err := f.svc.GetBooking(context.Background(), f.userID.String(), uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id GetBooking() error = %v, want ErrNotFound", err)
	}
}

func TestCancelBookingIdempotent(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.svc.CreateBooking(context.Background(), f.userID.String(), f.validRequest())
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	first, err := f.svc.CancelBooking(context.Background(), f.userID.String(), resp.ID)
	if err != nil {
		t.Fatalf("first CancelBooking() error = %v", err)
	}
	if first.Status != entity.BookingStatusCancelled {
		t.Fatalf("status = %s, want cancelled", first.Status)
	}

	second, err := f.svc.CancelBooking(context.Background(), f.userID.String(), resp.ID)
	if err != nil {
		t.Fatalf("second CancelBooking() error = %v", err)
	}
	if second.Status != entity.BookingStatusCancelled {
		t.Fatalf("status after retry = %s, want cancelled", second.Status)
	}
}

func TestCancelBookingNotOwner(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.svc.CreateBooking(context.Background(), f.userID.String(), f.validRequest())
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	if _, err := f.svc.CancelBooking(context.Background(), uuid.New().String(), resp.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stranger CancelBooking() error = %v, want ErrNotFound", err)
	}

	got, err := f.svc.GetBooking(context.Background(), f.userID.String(), resp.ID)
	if err != nil {
		t.Fatalf("GetBooking() error = %v", err)
	}
	if got.Status != entity.BookingStatusConfirmed {
		t.Fatalf("status = %s, want confirmed", got.Status)
	}
}

func TestListBookings(t *testing.T) {
	f := newBookingFixture()

	first, err := f.svc.CreateBooking(context.Background(), f.userID.String(), f.validRequest())
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	req2 := f.validRequest()
	req2.Seats = []request.SeatSelection{{Row: "A", Number: 2}}
	if _, err := f.svc.CreateBooking(context.Background(), f.userID.String(), req2); err != nil {
		t.Fatalf("second CreateBooking() error = %v", err)
	}

	if _, err := f.svc.CancelBooking(context.Background(), f.userID.String(), first.ID); err != nil {
		t.Fatalf("CancelBooking() error = %v", err)
	}

	listReq := &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	}
	page, err := f.svc.ListBookings(context.Background(), f.userID.String(), listReq)
	if err != nil {
		t.Fatalf("ListBookings() error = %v", err)
	}
	if len(page.Data) != 2 || page.Pagination.TotalCount != 2 {
		t.Fatalf("items/total = %d/%d, want 2/2", len(page.Data), page.Pagination.TotalCount)
	}
	if page.Pagination.HasNext {
		t.Fatal("has_next = true, want false")
	}

	listReq.Status = "cancelled"
	page, err = f.svc.ListBookings(context.Background(), f.userID.String(), listReq)
	if err != nil {
		t.Fatalf("ListBookings(cancelled) error = %v", err)
	}
	if len(page.Data) != 1 || page.Data[0].Status != entity.BookingStatusCancelled {
		t.Fatalf("filtered items = %d, want 1 cancelled", len(page.Data))
	}

	// Another user sees nothing.
	page, err = f.svc.ListBookings(context.Background(), uuid.New().String(), &request.ListBookingsRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	})
	if err != nil {
		t.Fatalf("ListBookings(stranger) error = %v", err)
	}
	if len(page.Data) != 0 || page.Pagination.TotalCount != 0 {
		t.Fatalf("stranger items/total = %d/%d, want 0/0", len(page.Data), page.Pagination.TotalCount)
	}
}
