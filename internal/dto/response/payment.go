package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID          string               `json:"id"`
	BookingID   string               `json:"booking_id"`
	Amount      float64              `json:"amount"`
	Currency    string               `json:"currency"`
	Status      entity.PaymentStatus `json:"status"`
	TrackingID  *string              `json:"tracking_id,omitempty"`
	MerchantRef string               `json:"merchant_ref"`
	Method      *string              `json:"method,omitempty"`
	PaidAt      *time.Time           `json:"paid_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// InitiatePaymentResponse carries the gateway page the browser must be
// redirected to.
type InitiatePaymentResponse struct {
	RedirectURL string `json:"redirect_url"`
	TrackingID  string `json:"tracking_id"`
	MerchantRef string `json:"merchant_ref"`
}

// IPNAck is the JSON acknowledgement returned to the gateway's IPN call
type IPNAck struct {
	OrderNotificationType  string `json:"orderNotificationType"`
	OrderTrackingID        string `json:"orderTrackingId"`
	OrderMerchantReference string `json:"orderMerchantReference"`
	Status                 int    `json:"status"`
}

// Helper converter

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          payment.ID.String(),
		BookingID:   payment.BookingID.String(),
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      payment.Status,
		TrackingID:  payment.TrackingID,
		MerchantRef: payment.MerchantRef,
		Method:      payment.Method,
		PaidAt:      payment.PaidAt,
		CreatedAt:   payment.CreatedAt,
	}
}
