package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	config  *utils.Config
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, config *utils.Config, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// InitiatePayment handles POST /api/payments (public)
func (h *PaymentHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.InitiatePayment(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "initiate payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// Callback handles GET /api/payments/callback (public, browser redirect from
// the gateway). It answers with 302 redirects to the site's result pages, not
// JSON.
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	trackingID := query.Get("OrderTrackingId")
	merchantRef := query.Get("OrderMerchantReference")

	if trackingID == "" {
		h.log.Warn("Payment callback without tracking id")
		h.redirect(w, r, "/payment/error", "")
		return
	}

	result, err := h.service.Reconcile(r.Context(), trackingID, merchantRef, "callback")
	if err != nil {
		h.log.Error("Payment callback reconciliation failed",
			zap.Error(err),
			zap.String("tracking_id", trackingID),
		)
		h.redirect(w, r, "/payment/error", "")
		return
	}

	switch result.Outcome {
	case usecase.ReconcileCompleted:
		h.redirect(w, r, "/payment/success", result.BookingReference)
	case usecase.ReconcileFailed:
		h.redirect(w, r, "/payment/failure", result.BookingReference)
	default:
		h.redirect(w, r, "/payment/pending", result.BookingReference)
	}
}

// IPN handles POST /api/payments/ipn (public, server-to-server). The gateway
// expects a JSON acknowledgement, success or not.
func (h *PaymentHandler) IPN(w http.ResponseWriter, r *http.Request) {
	var req request.IPNRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Some gateway configurations deliver the IPN as query parameters
		query := r.URL.Query()
		req.OrderTrackingID = query.Get("OrderTrackingId")
		req.OrderMerchantReference = query.Get("OrderMerchantReference")
		req.OrderNotificationType = query.Get("OrderNotificationType")
	}

	ack := response.IPNAck{
		OrderNotificationType:  req.OrderNotificationType,
		OrderTrackingID:        req.OrderTrackingID,
		OrderMerchantReference: req.OrderMerchantReference,
		Status:                 http.StatusOK,
	}

	if _, err := h.service.Reconcile(r.Context(), req.OrderTrackingID, req.OrderMerchantReference, "ipn"); err != nil {
		h.log.Error("IPN reconciliation failed",
			zap.Error(err),
			zap.String("tracking_id", req.OrderTrackingID),
		)
		ack.Status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ack)
}

// redirect sends the browser to a site result page, carrying the booking
// reference when known
func (h *PaymentHandler) redirect(w http.ResponseWriter, r *http.Request, page, reference string) {
	target := h.config.App.SiteURL + page
	if reference != "" {
		target = fmt.Sprintf("%s?ref=%s", target, url.QueryEscape(reference))
	}

	http.Redirect(w, r, target, http.StatusFound)
}
