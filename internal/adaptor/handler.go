package adaptor

import (
	"errors"
	"net/http"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog  *CatalogHandler
	Booking  *BookingHandler
	Coupon   *CouponHandler
	Favorite *FavoriteHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Coupon:   NewCouponHandler(service.Coupon, log),
		Favorite: NewFavoriteHandler(service.Favorite, log),
	}
}

// handleServiceError maps service errors onto the HTTP taxonomy. Anything
// unrecognized is a 500 with a generic message; internal detail stays in
// the logs.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrDuplicateSeat):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, repository.ErrAlreadyFavorite):
		log.Warn(operation+" failed - already a favorite", zap.Error(err))
		utils.ResponseBadRequest(w, "Movie already in favorites", nil)

	case errors.Is(err, usecase.ErrCouponInvalid):
		log.Warn(operation+" failed - coupon rejected", zap.Error(err))
		utils.ResponseBadRequest(w, "Coupon is not valid for this purchase", nil)

	case errors.Is(err, repository.ErrSeatTaken):
		log.Warn(operation+" failed - seat conflict", zap.Error(err))
		utils.ResponseConflict(w, "One or more seats are already booked for this show")

	case errors.Is(err, repository.ErrDuplicateCouponCode):
		log.Warn(operation+" failed - duplicate coupon code", zap.Error(err))
		utils.ResponseConflict(w, "Coupon code already exists")

	case errors.Is(err, repository.ErrCouponExhausted):
		log.Warn(operation+" failed - coupon exhausted", zap.Error(err))
		utils.ResponseConflict(w, "Coupon usage limit reached")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
