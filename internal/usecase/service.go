package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog  CatalogService
	Booking  BookingService
	Coupon   CouponService
	Favorite FavoriteService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	pricer := NewPricer(config.Pricing)

	return &Service{
		Catalog:  NewCatalogService(repo, log),
		Booking:  NewBookingService(repo, pricer, log),
		Coupon:   NewCouponService(repo, log),
		Favorite: NewFavoriteService(repo, log),
	}
}
