package usecase

import (
	"movie-booking/internal/data/entity"
	"movie-booking/pkg/utils"
)

// Pricer derives seat prices from the fixed per-class configuration. It has
// no state beyond the two prices and no side effects.
type Pricer struct {
	standard float64
	premium  float64
}

func NewPricer(config utils.PricingConfig) *Pricer {
	return &Pricer{
		standard: config.StandardSeat,
		premium:  config.PremiumSeat,
	}
}

func (p *Pricer) PriceOf(class entity.SeatClass) float64 {
	if class == entity.SeatClassPremium {
		return p.premium
	}
	return p.standard
}

func (p *Pricer) Subtotal(seats []*entity.Seat) float64 {
	var total float64
	for _, seat := range seats {
		total += p.PriceOf(seat.Class)
	}
	return total
}
