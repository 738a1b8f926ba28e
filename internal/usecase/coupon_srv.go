package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CouponService interface {
	// Public
	ValidateCoupon(ctx context.Context, req *request.ValidateCouponRequest) (*response.CouponValidationResponse, error)

	// Admin
	ListCoupons(ctx context.Context) ([]response.CouponResponse, error)
	GetCoupon(ctx context.Context, couponID string) (*response.CouponResponse, error)
	CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponResponse, error)
	UpdateCoupon(ctx context.Context, couponID string, req *request.UpdateCouponRequest) (*response.CouponResponse, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}

type couponService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCouponService(repo *repository.Repository, log *zap.Logger) CouponService {
	return &couponService{
		repo: repo,
		log:  log.With(zap.String("service", "coupon")),
	}
}

// ValidateCoupon checks a code against a prospective purchase. A failed rule
// yields ErrCouponInvalid without saying which rule failed.
func (s *couponService) ValidateCoupon(ctx context.Context, req *request.ValidateCouponRequest) (*response.CouponValidationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	code := utils.NormalizeCouponCode(req.Code)
	coupon, err := s.repo.Coupon.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("lookup coupon: %w", err)
	}
	if coupon == nil {
		return nil, fmt.Errorf("coupon %s: %w", code, ErrNotFound)
	}

	// The user and movie are optional at validation time; uuid.Nil simply
	// fails the applicability checks when the coupon restricts them.
	var userID, movieID uuid.UUID
	if req.UserID != "" {
		userID, _ = uuid.Parse(req.UserID)
	}
	if req.MovieID != "" {
		movieID, _ = uuid.Parse(req.MovieID)
	}

	if !coupon.IsValidFor(userID, movieID, req.PurchaseAmount, time.Now()) {
		return nil, ErrCouponInvalid
	}

	discountAmount := coupon.CalculateDiscount(req.PurchaseAmount)

	return &response.CouponValidationResponse{
		Valid: true,
		Coupon: response.AppliedCoupon{
			ID:             coupon.ID.String(),
			Code:           coupon.Code,
			Description:    coupon.Description,
			DiscountType:   string(coupon.DiscountType),
			DiscountValue:  coupon.DiscountValue,
			DiscountAmount: discountAmount,
		},
	}, nil
}

func (s *couponService) ListCoupons(ctx context.Context) ([]response.CouponResponse, error) {
	coupons, err := s.repo.Coupon.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list coupons", zap.Error(err))
		return nil, fmt.Errorf("list coupons: %w", err)
	}

	couponResponses := make([]response.CouponResponse, len(coupons))
	for i, coupon := range coupons {
		couponResponses[i] = response.CouponToResponse(coupon)
	}

	return couponResponses, nil
}

func (s *couponService) GetCoupon(ctx context.Context, couponID string) (*response.CouponResponse, error) {
	id, err := uuid.Parse(couponID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid coupon ID %s", ErrValidation, couponID)
	}

	coupon, err := s.repo.Coupon.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	if coupon == nil {
		return nil, fmt.Errorf("coupon %s: %w", couponID, ErrNotFound)
	}

	resp := response.CouponToResponse(coupon)
	return &resp, nil
}

func (s *couponService) CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create coupon validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	validFrom, err := time.Parse(time.RFC3339, req.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid valid_from %s", ErrValidation, req.ValidFrom)
	}
	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid valid_until %s", ErrValidation, req.ValidUntil)
	}
	if !validUntil.After(validFrom) {
		return nil, fmt.Errorf("%w: valid_until must be after valid_from", ErrValidation)
	}

	applicableMovies, err := parseUUIDs(req.ApplicableMovies)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	applicableUsers, err := parseUUIDs(req.ApplicableUsers)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	now := time.Now()
	coupon := &entity.Coupon{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:             utils.NormalizeCouponCode(req.Code),
		Description:      req.Description,
		DiscountType:     entity.DiscountType(req.DiscountType),
		DiscountValue:    req.DiscountValue,
		MinimumPurchase:  req.MinimumPurchase,
		MaximumDiscount:  req.MaximumDiscount,
		ValidFrom:        validFrom,
		ValidUntil:       validUntil,
		UsageLimit:       req.UsageLimit,
		UsedCount:        0,
		IsActive:         true,
		ApplicableMovies: applicableMovies,
		ApplicableUsers:  applicableUsers,
	}

	if err := s.repo.Coupon.Create(ctx, coupon); err != nil {
		s.log.Error("Failed to create coupon",
			zap.Error(err),
			zap.String("code", coupon.Code),
		)
		return nil, fmt.Errorf("create coupon: %w", err)
	}

	s.log.Info("Coupon created",
		zap.String("coupon_id", coupon.ID.String()),
		zap.String("code", coupon.Code),
	)

	resp := response.CouponToResponse(coupon)
	return &resp, nil
}

func (s *couponService) UpdateCoupon(ctx context.Context, couponID string, req *request.UpdateCouponRequest) (*response.CouponResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(couponID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid coupon ID %s", ErrValidation, couponID)
	}

	coupon, err := s.repo.Coupon.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	if coupon == nil {
		return nil, fmt.Errorf("coupon %s: %w", couponID, ErrNotFound)
	}

	// Apply only the fields the request carries
	if req.Description != nil {
		coupon.Description = *req.Description
	}
	if req.DiscountType != nil {
		coupon.DiscountType = entity.DiscountType(*req.DiscountType)
	}
	if req.DiscountValue != nil {
		coupon.DiscountValue = *req.DiscountValue
	}
	if req.MinimumPurchase != nil {
		coupon.MinimumPurchase = *req.MinimumPurchase
	}
	if req.MaximumDiscount != nil {
		coupon.MaximumDiscount = req.MaximumDiscount
	}
	if req.ValidFrom != nil {
		validFrom, err := time.Parse(time.RFC3339, *req.ValidFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid valid_from %s", ErrValidation, *req.ValidFrom)
		}
		coupon.ValidFrom = validFrom
	}
	if req.ValidUntil != nil {
		validUntil, err := time.Parse(time.RFC3339, *req.ValidUntil)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid valid_until %s", ErrValidation, *req.ValidUntil)
		}
		coupon.ValidUntil = validUntil
	}
	if !coupon.ValidUntil.After(coupon.ValidFrom) {
		return nil, fmt.Errorf("%w: valid_until must be after valid_from", ErrValidation)
	}
	if req.UsageLimit != nil {
		if coupon.UsedCount > *req.UsageLimit {
			return nil, fmt.Errorf("%w: usage_limit %d is below current used_count %d", ErrValidation, *req.UsageLimit, coupon.UsedCount)
		}
		coupon.UsageLimit = req.UsageLimit
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}
	if req.ApplicableMovies != nil {
		applicableMovies, err := parseUUIDs(req.ApplicableMovies)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		coupon.ApplicableMovies = applicableMovies
	}
	if req.ApplicableUsers != nil {
		applicableUsers, err := parseUUIDs(req.ApplicableUsers)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
		}
		coupon.ApplicableUsers = applicableUsers
	}
	coupon.UpdatedAt = time.Now()

	if err := s.repo.Coupon.Update(ctx, coupon); err != nil {
		s.log.Error("Failed to update coupon",
			zap.Error(err),
			zap.String("coupon_id", couponID),
		)
		return nil, fmt.Errorf("update coupon: %w", err)
	}

	s.log.Info("Coupon updated", zap.String("coupon_id", couponID))

	resp := response.CouponToResponse(coupon)
	return &resp, nil
}

func (s *couponService) DeleteCoupon(ctx context.Context, couponID string) error {
	id, err := uuid.Parse(couponID)
	if err != nil {
		return fmt.Errorf("%w: invalid coupon ID %s", ErrValidation, couponID)
	}

	coupon, err := s.repo.Coupon.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get coupon: %w", err)
	}
	if coupon == nil {
		return fmt.Errorf("coupon %s: %w", couponID, ErrNotFound)
	}

	if err := s.repo.Coupon.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete coupon",
			zap.Error(err),
			zap.String("coupon_id", couponID),
		)
		return fmt.Errorf("delete coupon: %w", err)
	}

	return nil
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid ID %s", value)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
