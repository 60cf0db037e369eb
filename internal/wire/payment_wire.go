package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// All three endpoints are public; the callback and IPN are called by the
	// gateway and the customer's browser, not by our frontend

	// POST /api/payments/initiate - Initiate a payment for a booking
	r.Post("/api/payments/initiate", paymentHandler.InitiatePayment)

	// GET /api/payments/callback - Browser return leg from the gateway
	r.Get("/api/payments/callback", paymentHandler.Callback)

	// POST /api/payments/ipn - Server-to-server notification from the gateway
	r.Post("/api/payments/ipn", paymentHandler.IPN)
	r.Get("/api/payments/ipn", paymentHandler.IPN)
}
