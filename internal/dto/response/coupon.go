package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type CouponResponse struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Description      string    `json:"description"`
	DiscountType     string    `json:"discount_type"`
	DiscountValue    float64   `json:"discount_value"`
	MinimumPurchase  float64   `json:"minimum_purchase"`
	MaximumDiscount  *float64  `json:"maximum_discount,omitempty"`
	ValidFrom        time.Time `json:"valid_from"`
	ValidUntil       time.Time `json:"valid_until"`
	UsageLimit       *int      `json:"usage_limit,omitempty"`
	UsedCount        int       `json:"used_count"`
	IsActive         bool      `json:"is_active"`
	ApplicableMovies []string  `json:"applicable_movies"`
	ApplicableUsers  []string  `json:"applicable_users"`
	CreatedAt        time.Time `json:"created_at"`
}

// AppliedCoupon is the trimmed shape returned by the public validate
// endpoint, with the computed discount for the given purchase amount.
type AppliedCoupon struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Description    string  `json:"description"`
	DiscountType   string  `json:"discount_type"`
	DiscountValue  float64 `json:"discount_value"`
	DiscountAmount float64 `json:"discount_amount"`
}

type CouponValidationResponse struct {
	Valid  bool          `json:"valid"`
	Coupon AppliedCoupon `json:"coupon"`
}

func CouponToResponse(coupon *entity.Coupon) CouponResponse {
	movies := make([]string, len(coupon.ApplicableMovies))
	for i, id := range coupon.ApplicableMovies {
		movies[i] = id.String()
	}
	users := make([]string, len(coupon.ApplicableUsers))
	for i, id := range coupon.ApplicableUsers {
		users[i] = id.String()
	}

	return CouponResponse{
		ID:               coupon.ID.String(),
		Code:             coupon.Code,
		Description:      coupon.Description,
		DiscountType:     string(coupon.DiscountType),
		DiscountValue:    coupon.DiscountValue,
		MinimumPurchase:  coupon.MinimumPurchase,
		MaximumDiscount:  coupon.MaximumDiscount,
		ValidFrom:        coupon.ValidFrom,
		ValidUntil:       coupon.ValidUntil,
		UsageLimit:       coupon.UsageLimit,
		UsedCount:        coupon.UsedCount,
		IsActive:         coupon.IsActive,
		ApplicableMovies: movies,
		ApplicableUsers:  users,
		CreatedAt:        coupon.CreatedAt,
	}
}
