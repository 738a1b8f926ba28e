package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCoupon(
	r chi.Router,
	couponHandler *adaptor.CouponHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/coupons/validate - check a code against a prospective purchase
	r.Post("/api/coupons/validate", couponHandler.ValidateCoupon)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/coupons", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", couponHandler.ListCoupons)
		r.Post("/", couponHandler.CreateCoupon)
		r.Get("/{id}", couponHandler.GetCoupon)
		r.Put("/{id}", couponHandler.UpdateCoupon)
		r.Delete("/{id}", couponHandler.DeleteCoupon)
	})
}
