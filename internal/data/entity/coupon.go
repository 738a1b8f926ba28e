package entity

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type Coupon struct {
	Base
	Code            string       `db:"code"` // stored uppercase, matched case-insensitively
	Description     string       `db:"description"`
	DiscountType    DiscountType `db:"discount_type"`
	DiscountValue   float64      `db:"discount_value"`
	MinimumPurchase float64      `db:"minimum_purchase"`
	MaximumDiscount *float64     `db:"maximum_discount"` // caps percentage discounts
	ValidFrom       time.Time    `db:"valid_from"`
	ValidUntil      time.Time    `db:"valid_until"`
	UsageLimit      *int         `db:"usage_limit"` // nil means unlimited
	UsedCount       int          `db:"used_count"`
	IsActive        bool         `db:"is_active"`
	ApplicableMovies []uuid.UUID `db:"applicable_movies"` // empty means all movies
	ApplicableUsers  []uuid.UUID `db:"applicable_users"`  // empty means all users
}

// IsValidFor reports whether the coupon may be applied to a purchase. Every
// rule must hold; a false result never says which rule failed, callers
// surface a generic message instead.
func (c *Coupon) IsValidFor(userID, movieID uuid.UUID, purchaseAmount float64, now time.Time) bool {
	if !c.IsActive {
		return false
	}
	// Window bounds are inclusive
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return false
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return false
	}
	if purchaseAmount < c.MinimumPurchase {
		return false
	}
	if len(c.ApplicableUsers) > 0 && !containsID(c.ApplicableUsers, userID) {
		return false
	}
	if len(c.ApplicableMovies) > 0 && !containsID(c.ApplicableMovies, movieID) {
		return false
	}
	return true
}

// CalculateDiscount computes the discount amount for a purchase. The result
// never exceeds the purchase amount.
func (c *Coupon) CalculateDiscount(amount float64) float64 {
	var discount float64

	switch c.DiscountType {
	case DiscountTypePercentage:
		discount = amount * c.DiscountValue / 100
		if c.MaximumDiscount != nil && discount > *c.MaximumDiscount {
			discount = *c.MaximumDiscount
		}
	case DiscountTypeFixed:
		discount = c.DiscountValue
	}

	if discount > amount {
		discount = amount
	}
	return discount
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
