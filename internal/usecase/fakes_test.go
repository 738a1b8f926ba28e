package usecase

import (
	"context"
	"fmt"
	"sort"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes implementing the repository interfaces. They mimic the
// behavior the pgx-backed implementations get from the database, including
// the unique seat-per-show index and the conditional usage increment.

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, m := range f.movies {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return f.movies[id], nil
}

type fakeScreenRepo struct {
	screens map[uuid.UUID]*entity.Screen
}

func (f *fakeScreenRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screen, error) {
	return f.screens[id], nil
}

func (f *fakeScreenRepo) FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Screen, error) {
	var out []*entity.Screen
	for _, s := range f.screens {
		if s.TheaterID == theaterID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeSeatRepo struct {
	seats map[uuid.UUID][]*entity.Seat // by screen
}

func (f *fakeSeatRepo) FindByScreenID(ctx context.Context, screenID uuid.UUID) ([]*entity.Seat, error) {
	return f.seats[screenID], nil
}

func (f *fakeSeatRepo) ResolveSelections(ctx context.Context, screenID uuid.UUID, refs []repository.SeatRef) ([]*entity.Seat, error) {
	byRef := make(map[repository.SeatRef]*entity.Seat)
	for _, seat := range f.seats[screenID] {
		byRef[repository.SeatRef{Row: seat.Row, Number: seat.Number}] = seat
	}

	resolved := make([]*entity.Seat, len(refs))
	for i, ref := range refs {
		seat, ok := byRef[ref]
		if !ok {
			return nil, fmt.Errorf("seat %s%d: %w", ref.Row, ref.Number, repository.ErrSeatNotFound)
		}
		resolved[i] = seat
	}
	return resolved, nil
}

type fakeFavoriteRepo struct {
	catalog *fakeMovieRepo
	byUser  map[uuid.UUID][]uuid.UUID
}

func newFakeFavoriteRepo(catalog *fakeMovieRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{
		catalog: catalog,
		byUser:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeFavoriteRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	ids := f.byUser[userID]
	// Most recently added first, matching the repository's ORDER BY.
	var out []*entity.Movie
	for i := len(ids) - 1; i >= 0; i-- {
		if movie, ok := f.catalog.movies[ids[i]]; ok {
			out = append(out, movie)
		}
	}
	return out, nil
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, userID, movieID uuid.UUID) error {
	for _, id := range f.byUser[userID] {
		if id == movieID {
			return fmt.Errorf("movie %s: %w", movieID, repository.ErrAlreadyFavorite)
		}
	}
	f.byUser[userID] = append(f.byUser[userID], movieID)
	return nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, userID, movieID uuid.UUID) error {
	ids := f.byUser[userID]
	for i, id := range ids {
		if id == movieID {
			f.byUser[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeFavoriteRepo) Exists(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	for _, id := range f.byUser[userID] {
		if id == movieID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
	claimed  map[string]bool // unique index on (screen, date, time, row, number)
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*entity.Booking),
		claimed:  make(map[string]bool),
	}
}

func claimKey(seat entity.BookingSeat) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		seat.ScreenID, seat.ShowDate.Format("2006-01-02"), seat.ShowTime, seat.Row, seat.Number)
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	for _, seat := range booking.Seats {
		if f.claimed[claimKey(seat)] {
			return fmt.Errorf("seat %s%d: %w", seat.Row, seat.Number, repository.ErrSeatTaken)
		}
	}
	for _, seat := range booking.Seats {
		f.claimed[claimKey(seat)] = true
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, status entity.BookingStatus, sortBy, sortOrder string, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if sortOrder == "asc" {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID, status entity.BookingStatus) (int64, error) {
	var count int64
	for _, b := range f.bookings {
		if b.UserID == userID && (status == "" || b.Status == status) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	booking.Status = status
	return nil
}

type fakeCouponRepo struct {
	coupons      map[uuid.UUID]*entity.Coupon
	increments   int
	incrementErr error
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[uuid.UUID]*entity.Coupon)}
}

func (f *fakeCouponRepo) Create(ctx context.Context, coupon *entity.Coupon) error {
	for _, c := range f.coupons {
		if c.Code == coupon.Code {
			return fmt.Errorf("coupon code %s: %w", coupon.Code, repository.ErrDuplicateCouponCode)
		}
	}
	f.coupons[coupon.ID] = coupon
	return nil
}

func (f *fakeCouponRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	return f.coupons[id], nil
}

func (f *fakeCouponRepo) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	for _, c := range f.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponRepo) FindAll(ctx context.Context) ([]*entity.Coupon, error) {
	var out []*entity.Coupon
	for _, c := range f.coupons {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCouponRepo) Update(ctx context.Context, coupon *entity.Coupon) error {
	if _, ok := f.coupons[coupon.ID]; !ok {
		return fmt.Errorf("coupon %s not found", coupon.ID)
	}
	f.coupons[coupon.ID] = coupon
	return nil
}

func (f *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.coupons[id]; !ok {
		return fmt.Errorf("coupon %s not found", id)
	}
	delete(f.coupons, id)
	return nil
}

func (f *fakeCouponRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	coupon, ok := f.coupons[id]
	if !ok {
		return fmt.Errorf("coupon %s not found", id)
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return fmt.Errorf("coupon %s: %w", id, repository.ErrCouponExhausted)
	}
	coupon.UsedCount++
	f.increments++
	return nil
}
