package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CouponHandler struct {
	service usecase.CouponService
	log     *zap.Logger
}

func NewCouponHandler(service usecase.CouponService, log *zap.Logger) *CouponHandler {
	return &CouponHandler{
		service: service,
		log:     log.With(zap.String("handler", "coupon")),
	}
}

// ValidateCoupon handles POST /api/coupons/validate (public)
func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.ValidateCoupon(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "validate coupon")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// ==================== ADMIN METHODS ====================

// ListCoupons handles GET /api/admin/coupons (admin only)
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.service.ListCoupons(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list coupons")
		return
	}

	utils.ResponseSuccess(w, "success", coupons)
}

// GetCoupon handles GET /api/admin/coupons/{id} (admin only)
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	couponID := chi.URLParam(r, "id")
	if couponID == "" {
		utils.ResponseBadRequest(w, "Coupon ID is required", nil)
		return
	}

	coupon, err := h.service.GetCoupon(r.Context(), couponID)
	if err != nil {
		handleServiceError(w, h.log, err, "get coupon")
		return
	}

	utils.ResponseSuccess(w, "success", coupon)
}

// CreateCoupon handles POST /api/admin/coupons (admin only)
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	coupon, err := h.service.CreateCoupon(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create coupon")
		return
	}

	utils.ResponseCreated(w, "success", coupon)
}

// UpdateCoupon handles PUT /api/admin/coupons/{id} (admin only)
func (h *CouponHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	couponID := chi.URLParam(r, "id")
	if couponID == "" {
		utils.ResponseBadRequest(w, "Coupon ID is required", nil)
		return
	}

	var req request.UpdateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	coupon, err := h.service.UpdateCoupon(r.Context(), couponID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update coupon")
		return
	}

	utils.ResponseSuccess(w, "success", coupon)
}

// DeleteCoupon handles DELETE /api/admin/coupons/{id} (admin only)
func (h *CouponHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	couponID := chi.URLParam(r, "id")
	if couponID == "" {
		utils.ResponseBadRequest(w, "Coupon ID is required", nil)
		return
	}

	if err := h.service.DeleteCoupon(r.Context(), couponID); err != nil {
		handleServiceError(w, h.log, err, "delete coupon")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
