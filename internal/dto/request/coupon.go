package request

type CreateCouponRequest struct {
	Code             string   `json:"code" validate:"required,min=2,max=50"`
	Description      string   `json:"description" validate:"required"`
	DiscountType     string   `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue    float64  `json:"discount_value" validate:"required,gte=0"`
	MinimumPurchase  float64  `json:"minimum_purchase" validate:"gte=0"`
	MaximumDiscount  *float64 `json:"maximum_discount,omitempty" validate:"omitempty,gte=0"`
	ValidFrom        string   `json:"valid_from" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ValidUntil       string   `json:"valid_until" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	UsageLimit       *int     `json:"usage_limit,omitempty" validate:"omitempty,min=1"`
	ApplicableMovies []string `json:"applicable_movies,omitempty" validate:"omitempty,dive,uuid4"`
	ApplicableUsers  []string `json:"applicable_users,omitempty" validate:"omitempty,dive,uuid4"`
}

// UpdateCouponRequest uses pointers so omitted fields keep their stored value.
type UpdateCouponRequest struct {
	Description      *string  `json:"description,omitempty"`
	DiscountType     *string  `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	DiscountValue    *float64 `json:"discount_value,omitempty" validate:"omitempty,gte=0"`
	MinimumPurchase  *float64 `json:"minimum_purchase,omitempty" validate:"omitempty,gte=0"`
	MaximumDiscount  *float64 `json:"maximum_discount,omitempty" validate:"omitempty,gte=0"`
	ValidFrom        *string  `json:"valid_from,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ValidUntil       *string  `json:"valid_until,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	UsageLimit       *int     `json:"usage_limit,omitempty" validate:"omitempty,min=1"`
	IsActive         *bool    `json:"is_active,omitempty"`
	ApplicableMovies []string `json:"applicable_movies,omitempty" validate:"omitempty,dive,uuid4"`
	ApplicableUsers  []string `json:"applicable_users,omitempty" validate:"omitempty,dive,uuid4"`
}

type ValidateCouponRequest struct {
	Code           string  `json:"code" validate:"required"`
	UserID         string  `json:"user_id,omitempty" validate:"omitempty,uuid4"`
	MovieID        string  `json:"movie_id,omitempty" validate:"omitempty,uuid4"`
	PurchaseAmount float64 `json:"purchase_amount" validate:"gte=0"`
}
