package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	// FindByCode expects an already upper-cased code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
	FindAll(ctx context.Context) ([]*entity.Coupon, error)
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementUsage bumps used_count by one with a conditional update so
	// concurrent redemptions never overshoot usage_limit. Returns
	// ErrCouponExhausted when the limit is already reached.
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

type couponRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCouponRepository(db database.PgxIface, log *zap.Logger) CouponRepository {
	return &couponRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon")),
	}
}

const couponColumns = `id, code, description, discount_type, discount_value, minimum_purchase,
	maximum_discount, valid_from, valid_until, usage_limit, used_count, is_active,
	applicable_movies, applicable_users, created_at, updated_at`

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	query := `
		INSERT INTO coupons (id, code, description, discount_type, discount_value, minimum_purchase,
		                     maximum_discount, valid_from, valid_until, usage_limit, used_count, is_active,
		                     applicable_movies, applicable_users, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		coupon.ID,
		coupon.Code,
		coupon.Description,
		coupon.DiscountType,
		coupon.DiscountValue,
		coupon.MinimumPurchase,
		coupon.MaximumDiscount,
		coupon.ValidFrom,
		coupon.ValidUntil,
		coupon.UsageLimit,
		coupon.UsedCount,
		coupon.IsActive,
		coupon.ApplicableMovies,
		coupon.ApplicableUsers,
		coupon.CreatedAt,
		coupon.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("coupon code %s: %w", coupon.Code, ErrDuplicateCouponCode)
		}
		r.log.Error("Failed to create coupon",
			zap.Error(err),
			zap.String("code", coupon.Code),
		)
		return fmt.Errorf("create coupon %s: %w", coupon.Code, err)
	}

	return nil
}

func (r *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	coupon, err := r.scanCoupon(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("Failed to find coupon by ID",
			zap.Error(err),
			zap.String("coupon_id", id.String()),
		)
		return nil, fmt.Errorf("find coupon by ID %s: %w", id.String(), err)
	}

	return coupon, nil
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

	coupon, err := r.scanCoupon(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.log.Error("Failed to find coupon by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find coupon by code %s: %w", code, err)
	}

	return coupon, nil
}

func (r *couponRepository) FindAll(ctx context.Context) ([]*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find coupons", zap.Error(err))
		return nil, fmt.Errorf("find coupons: %w", err)
	}
	defer rows.Close()

	var coupons []*entity.Coupon
	for rows.Next() {
		coupon, err := r.scanCoupon(rows)
		if err != nil {
			r.log.Error("Failed to scan coupon row", zap.Error(err))
			return nil, fmt.Errorf("scan coupon row: %w", err)
		}
		coupons = append(coupons, coupon)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate coupon rows", zap.Error(err))
		return nil, fmt.Errorf("iterate coupon rows: %w", err)
	}

	return coupons, nil
}

func (r *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	query := `
		UPDATE coupons
		SET description = $2, discount_type = $3, discount_value = $4, minimum_purchase = $5,
		    maximum_discount = $6, valid_from = $7, valid_until = $8, usage_limit = $9,
		    is_active = $10, applicable_movies = $11, applicable_users = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		coupon.ID,
		coupon.Description,
		coupon.DiscountType,
		coupon.DiscountValue,
		coupon.MinimumPurchase,
		coupon.MaximumDiscount,
		coupon.ValidFrom,
		coupon.ValidUntil,
		coupon.UsageLimit,
		coupon.IsActive,
		coupon.ApplicableMovies,
		coupon.ApplicableUsers,
		coupon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update coupon",
			zap.Error(err),
			zap.String("coupon_id", coupon.ID.String()),
		)
		return fmt.Errorf("update coupon %s: %w", coupon.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s not found", coupon.ID.String())
	}

	return nil
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM coupons WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete coupon",
			zap.Error(err),
			zap.String("coupon_id", id.String()),
		)
		return fmt.Errorf("delete coupon %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s not found", id.String())
	}

	r.log.Info("Coupon deleted", zap.String("coupon_id", id.String()))
	return nil
}

func (r *couponRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE coupons
		SET used_count = used_count + 1, updated_at = NOW()
		WHERE id = $1 AND (usage_limit IS NULL OR used_count < usage_limit)
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to increment coupon usage",
			zap.Error(err),
			zap.String("coupon_id", id.String()),
		)
		return fmt.Errorf("increment coupon usage %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s: %w", id.String(), ErrCouponExhausted)
	}

	return nil
}

// scanCoupon works for both pgx.Row and pgx.Rows
func (r *couponRepository) scanCoupon(row pgx.Row) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := row.Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Description,
		&coupon.DiscountType,
		&coupon.DiscountValue,
		&coupon.MinimumPurchase,
		&coupon.MaximumDiscount,
		&coupon.ValidFrom,
		&coupon.ValidUntil,
		&coupon.UsageLimit,
		&coupon.UsedCount,
		&coupon.IsActive,
		&coupon.ApplicableMovies,
		&coupon.ApplicableUsers,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}
