package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newCouponService(coupons *fakeCouponRepo) CouponService {
	return NewCouponService(&repository.Repository{Coupon: coupons}, zap.NewNop())
}

func TestValidateCouponUnknownCode(t *testing.T) {
	svc := newCouponService(newFakeCouponRepo())

	_, err := svc.ValidateCoupon(context.Background(), &request.ValidateCouponRequest{
		Code:           "NOPE",
		PurchaseAmount: 25,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestValidateCouponInactive(t *testing.T) {
	coupons := newFakeCouponRepo()
	coupon := fixedCoupon("SAVE10", 10)
	coupon.IsActive = false
	coupons.coupons[coupon.ID] = coupon
	svc := newCouponService(coupons)

	_, err := svc.ValidateCoupon(context.Background(), &request.ValidateCouponRequest{
		Code:           "SAVE10",
		PurchaseAmount: 25,
	})
	if !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("error = %v, want ErrCouponInvalid", err)
	}
}

func TestValidateCouponComputesDiscount(t *testing.T) {
	coupons := newFakeCouponRepo()
	coupon := fixedCoupon("SAVE10", 10)
	coupons.coupons[coupon.ID] = coupon
	svc := newCouponService(coupons)

	// Lowercase input resolves to the stored uppercase code.
	resp, err := svc.ValidateCoupon(context.Background(), &request.ValidateCouponRequest{
		Code:           "save10",
		PurchaseAmount: 25,
	})
	if err != nil {
		t.Fatalf("ValidateCoupon() error = %v", err)
	}
	if !resp.Valid {
		t.Fatal("valid = false, want true")
	}
	if resp.Coupon.Code != "SAVE10" {
		t.Fatalf("code = %s, want SAVE10", resp.Coupon.Code)
	}
	if resp.Coupon.DiscountAmount != 10 {
		t.Fatalf("discount_amount = %v, want 10", resp.Coupon.DiscountAmount)
	}
	// Validation never consumes usage.
	if coupons.increments != 0 {
		t.Fatalf("usage increments = %d, want 0", coupons.increments)
	}
}

func TestValidateCouponBelowMinimumPurchase(t *testing.T) {
	coupons := newFakeCouponRepo()
	coupon := fixedCoupon("BIG50", 50)
	coupon.MinimumPurchase = 100
	coupons.coupons[coupon.ID] = coupon
	svc := newCouponService(coupons)

	_, err := svc.ValidateCoupon(context.Background(), &request.ValidateCouponRequest{
		Code:           "BIG50",
		PurchaseAmount: 25,
	})
	if !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("error = %v, want ErrCouponInvalid", err)
	}
}

func validCreateCouponRequest() *request.CreateCouponRequest {
	return &request.CreateCouponRequest{
		Code:          "WELCOME",
		Description:   "welcome discount",
		DiscountType:  "percentage",
		DiscountValue: 20,
		ValidFrom:     time.Now().Add(-time.Hour).Format(time.RFC3339),
		ValidUntil:    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}
}

func TestCreateCoupon(t *testing.T) {
	coupons := newFakeCouponRepo()
	svc := newCouponService(coupons)

	req := validCreateCouponRequest()
	req.Code = "welcome" // stored uppercase

	resp, err := svc.CreateCoupon(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateCoupon() error = %v", err)
	}
	if resp.Code != "WELCOME" {
		t.Fatalf("code = %s, want WELCOME", resp.Code)
	}
	if !resp.IsActive {
		t.Fatal("is_active = false, want true")
	}
	if resp.UsedCount != 0 {
		t.Fatalf("used_count = %d, want 0", resp.UsedCount)
	}
}

func TestCreateCouponDuplicateCode(t *testing.T) {
	coupons := newFakeCouponRepo()
	svc := newCouponService(coupons)

	if _, err := svc.CreateCoupon(context.Background(), validCreateCouponRequest()); err != nil {
		t.Fatalf("first CreateCoupon() error = %v", err)
	}

	_, err := svc.CreateCoupon(context.Background(), validCreateCouponRequest())
	if !errors.Is(err, repository.ErrDuplicateCouponCode) {
		t.Fatalf("error = %v, want ErrDuplicateCouponCode", err)
	}
}

func TestCreateCouponInvalidWindow(t *testing.T) {
	svc := newCouponService(newFakeCouponRepo())

	req := validCreateCouponRequest()
	req.ValidFrom, req.ValidUntil = req.ValidUntil, req.ValidFrom

	_, err := svc.CreateCoupon(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestUpdateCouponPartial(t *testing.T) {
	coupons := newFakeCouponRepo()
	coupon := fixedCoupon("SAVE10", 10)
	coupon.Description = "ten off"
	coupons.coupons[coupon.ID] = coupon
	svc := newCouponService(coupons)

	inactive := false
	resp, err := svc.UpdateCoupon(context.Background(), coupon.ID.String(), &request.UpdateCouponRequest{
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("UpdateCoupon() error = %v", err)
	}
	if resp.IsActive {
		t.Fatal("is_active = true, want false")
	}
	// Omitted fields keep their stored values.
	if resp.Description != "ten off" || resp.DiscountValue != 10 {
		t.Fatalf("untouched fields changed: %+v", resp)
	}
}

func TestUpdateCouponUsageLimitBelowUsedCount(t *testing.T) {
	coupons := newFakeCouponRepo()
	coupon := fixedCoupon("SAVE10", 10)
	coupon.UsedCount = 5
	coupons.coupons[coupon.ID] = coupon
	svc := newCouponService(coupons)

	limit := 1
	_, err := svc.UpdateCoupon(context.Background(), coupon.ID.String(), &request.UpdateCouponRequest{
		UsageLimit: &limit,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	// The stored coupon keeps satisfying used_count <= usage_limit.
	if coupon.UsageLimit != nil {
		t.Fatalf("usage_limit = %d, want nil", *coupon.UsageLimit)
	}

	// Raising the limit to or above used_count is fine.
	limit = 5
	resp, err := svc.UpdateCoupon(context.Background(), coupon.ID.String(), &request.UpdateCouponRequest{
		UsageLimit: &limit,
	})
	if err != nil {
		t.Fatalf("UpdateCoupon() error = %v", err)
	}
	if resp.UsageLimit == nil || *resp.UsageLimit != 5 {
		t.Fatalf("usage_limit = %v, want 5", resp.UsageLimit)
	}
}

func TestUpdateCouponNotFound(t *testing.T) {
	svc := newCouponService(newFakeCouponRepo())

	active := true
	_, err := svc.UpdateCoupon(context.Background(), uuid.New().String(), &request.UpdateCouponRequest{
		IsActive: &active,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteCoupon(t *testing.T) {
	coupons := newFakeCouponRepo()
	coupon := fixedCoupon("SAVE10", 10)
	coupons.coupons[coupon.ID] = coupon
	svc := newCouponService(coupons)

	if err := svc.DeleteCoupon(context.Background(), coupon.ID.String()); err != nil {
		t.Fatalf("DeleteCoupon() error = %v", err)
	}
	if err := svc.DeleteCoupon(context.Background(), coupon.ID.String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete error = %v, want ErrNotFound", err)
	}
}
