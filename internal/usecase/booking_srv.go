package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, userID string, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, userID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, userID string, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	pricer *Pricer
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, pricer *Pricer, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		pricer: pricer,
		log:    log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs one booking attempt end to end: resolve seats, price,
// apply the coupon if present, persist, then record coupon usage. Any
// failure before the persist leaves nothing behind; a usage-increment
// failure after the persist is logged and swallowed, the booking stands.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %s", ErrValidation, req.MovieID)
	}
	theaterID, err := uuid.Parse(req.TheaterID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid theater ID %s", ErrValidation, req.TheaterID)
	}
	screenID, err := uuid.Parse(req.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid screen ID %s", ErrValidation, req.ScreenID)
	}

	showDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrValidation, req.Date)
	}

	// Reject duplicate (row, number) pairs within one request
	seen := make(map[repository.SeatRef]bool, len(req.Seats))
	refs := make([]repository.SeatRef, len(req.Seats))
	for i, sel := range req.Seats {
		ref := repository.SeatRef{Row: sel.Row, Number: sel.Number}
		if seen[ref] {
			return nil, fmt.Errorf("seat %s%d: %w", sel.Row, sel.Number, ErrDuplicateSeat)
		}
		seen[ref] = true
		refs[i] = ref
	}

	// Validate catalog references
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", req.MovieID, ErrNotFound)
	}

	screen, err := s.repo.Screen.FindByID(ctx, screenID)
	if err != nil {
		return nil, fmt.Errorf("check screen: %w", err)
	}
	if screen == nil {
		return nil, fmt.Errorf("screen %s: %w", req.ScreenID, ErrNotFound)
	}
	if screen.TheaterID != theaterID {
		return nil, fmt.Errorf("%w: screen %s does not belong to theater %s", ErrValidation, req.ScreenID, req.TheaterID)
	}

	// Resolve the selection against the screen's seat map
	seats, err := s.repo.Seat.ResolveSelections(ctx, screenID, refs)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("resolve seats: %w", err)
	}

	subtotal := s.pricer.Subtotal(seats)

	// Client-supplied totals are never trusted; a mismatch is only logged.
	if req.TotalPrice != 0 && math.Abs(req.TotalPrice-subtotal) > 0.001 {
		s.log.Warn("Client total ignored",
			zap.Float64("client_total", req.TotalPrice),
			zap.Float64("subtotal", subtotal),
		)
	}

	// Optional coupon: validate before persisting anything
	var discount float64
	var couponCode *string
	var coupon *entity.Coupon
	if req.CouponCode != "" {
		code := utils.NormalizeCouponCode(req.CouponCode)
		coupon, err = s.repo.Coupon.FindByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("lookup coupon: %w", err)
		}
		if coupon == nil {
			return nil, fmt.Errorf("coupon %s: %w", code, ErrNotFound)
		}
		if !coupon.IsValidFor(userUUID, movieID, subtotal, time.Now()) {
			return nil, ErrCouponInvalid
		}
		discount = coupon.CalculateDiscount(subtotal)
		couponCode = &code
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userUUID,
		MovieID:    movieID,
		TheaterID:  theaterID,
		ScreenID:   screenID,
		ShowDate:   showDate,
		ShowTime:   req.Time,
		Subtotal:   subtotal,
		Discount:   discount,
		TotalPrice: subtotal - discount,
		CouponCode: couponCode,
		Status:     entity.BookingStatusConfirmed,
	}

	booking.Seats = make([]entity.BookingSeat, len(seats))
	for i, seat := range seats {
		booking.Seats[i] = entity.BookingSeat{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID: booking.ID,
			ScreenID:  screenID,
			ShowDate:  showDate,
			ShowTime:  req.Time,
			Row:       seat.Row,
			Number:    seat.Number,
			Class:     seat.Class,
		}
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("screen_id", req.ScreenID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Usage is recorded only after the booking is durably persisted. A
	// failure here may undercount redemptions but never voids the booking.
	if coupon != nil {
		if err := s.repo.Coupon.IncrementUsage(ctx, coupon.ID); err != nil {
			s.log.Error("Failed to record coupon usage",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("coupon_code", coupon.Code),
			)
		}
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.Int("seat_count", len(seats)),
		zap.Float64("subtotal", subtotal),
		zap.Float64("discount", discount),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID string, bookingID string) (*response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	// Not-found and not-owner collapse to the same error so the response
	// never leaks whether the booking exists.
	if booking == nil || booking.UserID != userUUID {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	status := entity.BookingStatus(req.Status)
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, status, req.SortBy, req.SortOrder, limit, offset)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID, status)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, limit, total), nil
}

// CancelBooking transitions confirmed to cancelled. Cancelling an already
// cancelled booking returns it unchanged, so client retries are harmless.
// Coupon usage is not compensated and the seats are not released.
func (s *bookingService) CancelBooking(ctx context.Context, userID string, bookingID string) (*response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil || booking.UserID != userUUID {
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
	}

	if booking.Status == entity.BookingStatusCancelled {
		resp := response.BookingToResponse(booking)
		return &resp, nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	booking.Status = entity.BookingStatusCancelled

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}
