package usecase

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/gateway"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Name: "Tour Booking", SiteURL: "https://example.com"},
		Gateway: utils.GatewayConfig{
			Currency:    "USD",
			CallbackURL: "https://api.example.com/api/payments/callback",
			IPNID:       "ipn-1",
		},
		Session: utils.SessionConfig{CookieName: "admin_session", ExpiryHours: 12},
	}
}

func testBooking(amount *float64) *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Reference:     "TRB-20260828-101500-0042",
		CustomerName:  "Asha Mrema",
		CustomerEmail: "asha@example.com",
		Travelers:     2,
		TotalAmount:   amount,
		Currency:      "USD",
		Status:        entity.BookingStatusPending,
	}
}

func testPayment(bookingID uuid.UUID, trackingID string) *entity.Payment {
	return &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BookingID:   bookingID,
		Amount:      700,
		Currency:    "USD",
		Status:      entity.PaymentStatusPending,
		TrackingID:  &trackingID,
		MerchantRef: "TRB-20260828-101500-0042-P0007",
	}
}

func newPaymentFixture(t *testing.T, bookings *mockBookingRepo, payments *mockPaymentRepo, gw *mockGateway) (PaymentService, *mockMailer) {
	t.Helper()

	mail := &mockMailer{}
	repo := &repository.Repository{
		Booking: bookings,
		Payment: payments,
	}

	srv := NewPaymentService(repo, testConfig(), gw, nil, mail, zaptest.NewLogger(t))
	return srv, mail
}

func TestInitiatePaymentWithoutAmount(t *testing.T) {
	booking := testBooking(nil)
	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	payments := &mockPaymentRepo{}
	gw := &mockGateway{}
	srv, _ := newPaymentFixture(t, bookings, payments, gw)

	resp, err := srv.InitiatePayment(context.Background(), &request.InitiatePaymentRequest{
		BookingID: booking.ID.String(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
	assert.Nil(t, resp)
	assert.Zero(t, gw.SubmitCalls)
	assert.Empty(t, payments.Created)
}

func TestInitiatePaymentPersistsPendingRow(t *testing.T) {
	amount := 700.0
	booking := testBooking(&amount)
	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	payments := &mockPaymentRepo{}

	var submitted *gateway.OrderRequest
	gw := &mockGateway{
		SubmitOrderFunc: func(ctx context.Context, order *gateway.OrderRequest) (*gateway.OrderResponse, error) {
			submitted = order
			return &gateway.OrderResponse{
				OrderTrackingID:   "trk-123",
				MerchantReference: order.MerchantReference,
				RedirectURL:       "https://pay.example.com/trk-123",
			}, nil
		},
	}
	srv, _ := newPaymentFixture(t, bookings, payments, gw)

	resp, err := srv.InitiatePayment(context.Background(), &request.InitiatePaymentRequest{
		BookingID: booking.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/trk-123", resp.RedirectURL)
	assert.Equal(t, "trk-123", resp.TrackingID)

	require.NotNil(t, submitted)
	assert.Equal(t, 700.0, submitted.Amount)
	assert.Equal(t, "Asha", submitted.Billing.FirstName)
	assert.Equal(t, "Mrema", submitted.Billing.LastName)

	require.Len(t, payments.Created, 1)
	created := payments.Created[0]
	assert.Equal(t, entity.PaymentStatusPending, created.Status)
	assert.Equal(t, booking.ID, created.BookingID)
	require.NotNil(t, created.TrackingID)
	assert.Equal(t, "trk-123", *created.TrackingID)
	assert.Contains(t, created.MerchantRef, booking.Reference)
}

func TestReconcileCompletedMarksPaymentThenBooking(t *testing.T) {
	amount := 700.0
	booking := testBooking(&amount)
	payment := testPayment(booking.ID, "trk-123")

	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	payments := &mockPaymentRepo{
		FindByTrackingIDFunc: func(ctx context.Context, trackingID string) (*entity.Payment, error) {
			return payment, nil
		},
	}
	gw := &mockGateway{
		GetTransactionStatusFunc: func(ctx context.Context, trackingID string) (*gateway.TransactionStatus, error) {
			return &gateway.TransactionStatus{Status: "COMPLETED", PaymentMethod: "Visa"}, nil
		},
	}
	srv, mail := newPaymentFixture(t, bookings, payments, gw)

	result, err := srv.Reconcile(context.Background(), "trk-123", "", "callback")

	require.NoError(t, err)
	assert.Equal(t, ReconcileCompleted, result.Outcome)
	assert.Equal(t, booking.Reference, result.BookingReference)
	assert.Equal(t, 1, payments.CompletedCalls)
	require.Len(t, bookings.StatusUpdates, 1)
	assert.Equal(t, entity.BookingStatusPaid, bookings.StatusUpdates[0])

	assert.Eventually(t, func() bool {
		return mail.SentCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestReconcileFailedLeavesBookingUntouched(t *testing.T) {
	amount := 700.0
	booking := testBooking(&amount)
	payment := testPayment(booking.ID, "trk-123")

	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	payments := &mockPaymentRepo{
		FindByTrackingIDFunc: func(ctx context.Context, trackingID string) (*entity.Payment, error) {
			return payment, nil
		},
	}
	gw := &mockGateway{
		GetTransactionStatusFunc: func(ctx context.Context, trackingID string) (*gateway.TransactionStatus, error) {
			return &gateway.TransactionStatus{Status: "CANCELLED"}, nil
		},
	}
	srv, mail := newPaymentFixture(t, bookings, payments, gw)

	result, err := srv.Reconcile(context.Background(), "trk-123", "", "ipn")

	require.NoError(t, err)
	assert.Equal(t, ReconcileFailed, result.Outcome)
	assert.Equal(t, 1, payments.FailedCalls)
	assert.Zero(t, payments.CompletedCalls)
	assert.Empty(t, bookings.StatusUpdates)
	assert.Zero(t, mail.SentCount())
}

func TestReconcileUnknownStatusWritesNothing(t *testing.T) {
	amount := 700.0
	booking := testBooking(&amount)
	payment := testPayment(booking.ID, "trk-123")

	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	payments := &mockPaymentRepo{
		FindByTrackingIDFunc: func(ctx context.Context, trackingID string) (*entity.Payment, error) {
			return payment, nil
		},
	}
	gw := &mockGateway{
		GetTransactionStatusFunc: func(ctx context.Context, trackingID string) (*gateway.TransactionStatus, error) {
			return &gateway.TransactionStatus{Status: "REVERSED"}, nil
		},
	}
	srv, mail := newPaymentFixture(t, bookings, payments, gw)

	result, err := srv.Reconcile(context.Background(), "trk-123", "", "callback")

	require.NoError(t, err)
	assert.Equal(t, ReconcilePending, result.Outcome)
	assert.Zero(t, payments.CompletedCalls)
	assert.Zero(t, payments.FailedCalls)
	assert.Empty(t, bookings.StatusUpdates)
	assert.Zero(t, mail.SentCount())
}

func TestReconcileDuplicateCompletedDeliveryIsIdempotent(t *testing.T) {
	amount := 700.0
	booking := testBooking(&amount)
	payment := testPayment(booking.ID, "trk-123")

	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	payments := &mockPaymentRepo{
		FindByTrackingIDFunc: func(ctx context.Context, trackingID string) (*entity.Payment, error) {
			return payment, nil
		},
		// The row is no longer PENDING; the conditional update is a no-op
		MarkCompletedFunc: func(ctx context.Context, paymentID uuid.UUID, method string, paidAt time.Time) (bool, error) {
			return false, nil
		},
	}
	gw := &mockGateway{
		GetTransactionStatusFunc: func(ctx context.Context, trackingID string) (*gateway.TransactionStatus, error) {
			return &gateway.TransactionStatus{Status: "COMPLETED", PaymentMethod: "Visa"}, nil
		},
	}
	srv, _ := newPaymentFixture(t, bookings, payments, gw)

	result, err := srv.Reconcile(context.Background(), "trk-123", "", "ipn")

	require.NoError(t, err)
	assert.Equal(t, ReconcileCompleted, result.Outcome)
	assert.Equal(t, 1, payments.CompletedCalls)
	assert.Empty(t, bookings.StatusUpdates)
}

func TestReconcileFallsBackToMerchantReference(t *testing.T) {
	amount := 700.0
	booking := testBooking(&amount)
	payment := testPayment(booking.ID, "trk-123")

	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	var merchantLookups int
	payments := &mockPaymentRepo{
		FindByTrackingIDFunc: func(ctx context.Context, trackingID string) (*entity.Payment, error) {
			return nil, nil
		},
		FindByMerchantRefFunc: func(ctx context.Context, merchantRef string) (*entity.Payment, error) {
			merchantLookups++
			if merchantRef == payment.MerchantRef {
				return payment, nil
			}
			return nil, nil
		},
	}
	gw := &mockGateway{
		GetTransactionStatusFunc: func(ctx context.Context, trackingID string) (*gateway.TransactionStatus, error) {
			return &gateway.TransactionStatus{Status: "SUCCESS"}, nil
		},
	}
	srv, _ := newPaymentFixture(t, bookings, payments, gw)

	result, err := srv.Reconcile(context.Background(), "trk-unknown", payment.MerchantRef, "ipn")

	require.NoError(t, err)
	assert.Equal(t, ReconcileCompleted, result.Outcome)
	assert.Equal(t, 1, merchantLookups)
}

func TestReconcileRejectsMissingTrackingID(t *testing.T) {
	srv, _ := newPaymentFixture(t, &mockBookingRepo{}, &mockPaymentRepo{}, &mockGateway{})

	_, err := srv.Reconcile(context.Background(), "", "some-ref", "callback")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestReconcileUnknownPaymentIsNotFound(t *testing.T) {
	gw := &mockGateway{}
	srv, _ := newPaymentFixture(t, &mockBookingRepo{}, &mockPaymentRepo{}, gw)

	_, err := srv.Reconcile(context.Background(), "trk-missing", "", "callback")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Zero(t, gw.StatusCalls)
}
