package repository

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	FindByTrackingID(ctx context.Context, trackingID string) (*entity.Payment, error)
	FindByMerchantRef(ctx context.Context, merchantRef string) (*entity.Payment, error)

	// Terminal transitions, conditional on the row still being PENDING so
	// duplicate delivery from the two reconciliation channels is idempotent.
	// The bool reports whether this call performed the transition.
	MarkCompleted(ctx context.Context, paymentID uuid.UUID, method string, paidAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, paymentID uuid.UUID) (bool, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, amount, currency, status, tracking_id, merchant_ref, method, paid_at, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, amount, currency, status, tracking_id, merchant_ref, method, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.TrackingID,
		payment.MerchantRef,
		payment.Method,
		payment.PaidAt,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("merchant_ref", payment.MerchantRef),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE id = $1`, paymentColumns)

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, paymentColumns)

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payment by booking ID %s: %w", bookingID.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByTrackingID(ctx context.Context, trackingID string) (*entity.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE tracking_id = $1`, paymentColumns)

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, trackingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by tracking ID",
			zap.Error(err),
			zap.String("tracking_id", trackingID),
		)
		return nil, fmt.Errorf("find payment by tracking ID %s: %w", trackingID, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByMerchantRef(ctx context.Context, merchantRef string) (*entity.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE merchant_ref = $1`, paymentColumns)

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, merchantRef))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by merchant reference",
			zap.Error(err),
			zap.String("merchant_ref", merchantRef),
		)
		return nil, fmt.Errorf("find payment by merchant reference %s: %w", merchantRef, err)
	}

	return payment, nil
}

func (r *paymentRepository) MarkCompleted(ctx context.Context, paymentID uuid.UUID, method string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET status = $2, method = $3, paid_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	result, err := r.db.Exec(ctx, query,
		paymentID,
		entity.PaymentStatusCompleted,
		method,
		paidAt,
		entity.PaymentStatusPending,
	)

	if err != nil {
		r.log.Error("Failed to mark payment completed",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
		)
		return false, fmt.Errorf("mark payment %s completed: %w", paymentID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *paymentRepository) MarkFailed(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	query := `
		UPDATE payments
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	result, err := r.db.Exec(ctx, query,
		paymentID,
		entity.PaymentStatusFailed,
		entity.PaymentStatusPending,
	)

	if err != nil {
		r.log.Error("Failed to mark payment failed",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
		)
		return false, fmt.Errorf("mark payment %s failed: %w", paymentID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// ==================== HELPER METHODS ====================

func (r *paymentRepository) scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.TrackingID,
		&payment.MerchantRef,
		&payment.Method,
		&payment.PaidAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
