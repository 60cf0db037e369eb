package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/cache"
	"tour-booking/pkg/gateway"
	"tour-booking/pkg/mailer"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ReconcileOutcome is the three-way result of checking a payment against the
// gateway. The caller maps it to a redirect (callback) or an ack (IPN).
type ReconcileOutcome string

const (
	ReconcileCompleted ReconcileOutcome = "completed"
	ReconcileFailed    ReconcileOutcome = "failed"
	ReconcilePending   ReconcileOutcome = "pending"
)

type ReconcileResult struct {
	Outcome          ReconcileOutcome
	BookingReference string
}

type PaymentService interface {
	InitiatePayment(ctx context.Context, req *request.InitiatePaymentRequest) (*response.InitiatePaymentResponse, error)

	// Reconcile serves both the browser callback and the IPN channel. The
	// gateway status is authoritative; the stored payment row is only located
	// through it, never trusted for the outcome.
	Reconcile(ctx context.Context, trackingID, merchantRef, channel string) (*ReconcileResult, error)
}

type paymentService struct {
	repo   *repository.Repository
	config *utils.Config
	pg     gateway.Gateway
	rdb    *redis.Client
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewPaymentService(
	repo *repository.Repository,
	config *utils.Config,
	pg gateway.Gateway,
	rdb *redis.Client,
	mail mailer.Mailer,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		repo:   repo,
		config: config,
		pg:     pg,
		rdb:    rdb,
		mail:   mail,
		log:    log.With(zap.String("service", "payment")),
	}
}

// ==================== INITIATION ====================

func (s *paymentService) InitiatePayment(ctx context.Context, req *request.InitiatePaymentRequest) (*response.InitiatePaymentResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Initiate payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", req.BookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}
	if booking.TotalAmount == nil {
		// Nothing to charge; no payment row is created
		return nil, fmt.Errorf("invalid booking %s: no total amount to pay", booking.Reference)
	}

	currency := booking.Currency
	if currency == "" {
		currency = s.config.Gateway.Currency
	}

	merchantRef := utils.GenerateMerchantReference(booking.Reference)
	firstName, lastName := utils.SplitFullName(booking.CustomerName)

	order := &gateway.OrderRequest{
		MerchantReference: merchantRef,
		Currency:          currency,
		Amount:            *booking.TotalAmount,
		Description:       fmt.Sprintf("Tour booking %s", booking.Reference),
		CallbackURL:       s.config.Gateway.CallbackURL,
		NotificationID:    s.config.Gateway.IPNID,
		Billing: gateway.Billing{
			Email:     booking.CustomerEmail,
			FirstName: firstName,
			LastName:  lastName,
		},
	}
	if booking.CustomerPhone != nil {
		order.Billing.Phone = *booking.CustomerPhone
	}
	if booking.Country != nil {
		order.Billing.Country = *booking.Country
	}

	orderResp, err := s.pg.SubmitOrder(ctx, order)
	if err != nil {
		s.log.Error("Gateway order submission failed",
			zap.Error(err),
			zap.String("booking_reference", booking.Reference),
		)
		return nil, fmt.Errorf("submit payment order: %w", err)
	}
	if orderResp.OrderTrackingID == "" || orderResp.RedirectURL == "" {
		return nil, fmt.Errorf("submit payment order: gateway returned no redirect for %s", merchantRef)
	}

	trackingID := orderResp.OrderTrackingID
	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:   booking.ID,
		Amount:      *booking.TotalAmount,
		Currency:    currency,
		Status:      entity.PaymentStatusPending,
		TrackingID:  &trackingID,
		MerchantRef: merchantRef,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info("Payment initiated",
		zap.String("booking_reference", booking.Reference),
		zap.String("tracking_id", trackingID),
		zap.String("merchant_ref", merchantRef),
		zap.Float64("amount", payment.Amount),
	)

	return &response.InitiatePaymentResponse{
		RedirectURL: orderResp.RedirectURL,
		TrackingID:  trackingID,
		MerchantRef: merchantRef,
	}, nil
}

// ==================== RECONCILIATION ====================

func (s *paymentService) Reconcile(ctx context.Context, trackingID, merchantRef, channel string) (*ReconcileResult, error) {
	if trackingID == "" {
		return nil, fmt.Errorf("invalid reconciliation request: missing tracking id")
	}

	payment, err := s.findPayment(ctx, trackingID, merchantRef)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s not found", trackingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, payment.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get payment booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking for payment %s not found", trackingID)
	}

	status, err := s.pg.GetTransactionStatus(ctx, trackingID)
	if err != nil {
		s.log.Error("Gateway status check failed",
			zap.Error(err),
			zap.String("tracking_id", trackingID),
			zap.String("channel", channel),
		)
		return nil, fmt.Errorf("get transaction status: %w", err)
	}

	result := &ReconcileResult{BookingReference: booking.Reference}

	switch status.Status {
	case "COMPLETED", "SUCCESS":
		result.Outcome = ReconcileCompleted
		if err := s.settleCompleted(ctx, payment, booking, status, trackingID, channel); err != nil {
			return nil, err
		}

	case "FAILED", "CANCELLED":
		result.Outcome = ReconcileFailed
		updated, err := s.repo.Payment.MarkFailed(ctx, payment.ID)
		if err != nil {
			return nil, fmt.Errorf("mark payment failed: %w", err)
		}
		if !updated {
			s.log.Info("Payment already settled, skipping failure write",
				zap.String("tracking_id", trackingID),
				zap.String("channel", channel),
			)
		}
		middleware.RecordPaymentReconciled(channel, "failed")

	default:
		// Not terminal yet; nothing is written
		result.Outcome = ReconcilePending
		middleware.RecordPaymentReconciled(channel, "pending")
	}

	s.log.Info("Payment reconciled",
		zap.String("tracking_id", trackingID),
		zap.String("channel", channel),
		zap.String("gateway_status", status.Status),
		zap.String("outcome", string(result.Outcome)),
	)

	return result, nil
}

// settleCompleted applies the COMPLETED outcome. The payment update is
// conditional on the row still being PENDING, so the callback and IPN
// channels cannot both apply the terminal transition.
func (s *paymentService) settleCompleted(
	ctx context.Context,
	payment *entity.Payment,
	booking *entity.Booking,
	status *gateway.TransactionStatus,
	trackingID, channel string,
) error {
	updated, err := s.repo.Payment.MarkCompleted(ctx, payment.ID, status.PaymentMethod, time.Now())
	if err != nil {
		return fmt.Errorf("mark payment completed: %w", err)
	}

	if updated {
		// Second statement on purpose; a crash between the two writes leaves
		// a COMPLETED payment with a non-PAID booking for the back office
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusPaid); err != nil {
			return fmt.Errorf("mark booking paid: %w", err)
		}
		booking.Status = entity.BookingStatusPaid
	} else {
		s.log.Info("Payment already completed, skipping writes",
			zap.String("tracking_id", trackingID),
			zap.String("channel", channel),
		)
	}

	middleware.RecordPaymentReconciled(channel, "completed")

	if s.acquireConfirmationLock(ctx, trackingID) {
		go s.sendConfirmationEmail(booking)
	}

	return nil
}

func (s *paymentService) findPayment(ctx context.Context, trackingID, merchantRef string) (*entity.Payment, error) {
	// Tracking id wins; merchant reference is the fallback for notifications
	// that omit it
	payment, err := s.repo.Payment.FindByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("find payment by tracking id: %w", err)
	}
	if payment != nil {
		return payment, nil
	}

	if merchantRef == "" {
		return nil, nil
	}

	payment, err = s.repo.Payment.FindByMerchantRef(ctx, merchantRef)
	if err != nil {
		return nil, fmt.Errorf("find payment by merchant reference: %w", err)
	}

	return payment, nil
}

// acquireConfirmationLock dedups the booking-confirmed email across the
// callback and IPN channels. Redis being down degrades to possibly sending
// the email twice, never to dropping it.
func (s *paymentService) acquireConfirmationLock(ctx context.Context, trackingID string) bool {
	if s.rdb == nil {
		return true
	}

	acquired, err := s.rdb.SetNX(ctx, cache.PaymentConfirmedKey(trackingID), 1, 24*time.Hour).Result()
	if err != nil {
		s.log.Warn("Confirmation dedup check failed, sending anyway",
			zap.Error(err),
			zap.String("tracking_id", trackingID),
		)
		return true
	}

	return acquired
}

func (s *paymentService) sendConfirmationEmail(booking *entity.Booking) {
	subject := fmt.Sprintf("Booking %s confirmed", booking.Reference)
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\nYour payment was received and booking %s is confirmed.\r\nWe will contact you shortly with the trip details.\r\n\r\n%s",
		booking.CustomerName, booking.Reference, s.config.App.Name,
	)

	if err := s.mail.Send(booking.CustomerEmail, subject, body); err != nil {
		s.log.Warn("Confirmation email failed",
			zap.Error(err),
			zap.String("booking_reference", booking.Reference),
		)
	}
}
