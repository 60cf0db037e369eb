package adaptor

import (
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Catalog     *CatalogHandler
	Inquiry     *InquiryHandler
	Booking     *BookingHandler
	Payment     *PaymentHandler
	Review      *ReviewHandler
	FAQ         *FAQHandler
	Site        *SiteHandler
	Translation *TranslationHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, config, log),
		Catalog:     NewCatalogHandler(service.Catalog, log),
		Inquiry:     NewInquiryHandler(service.Inquiry, log),
		Booking:     NewBookingHandler(service.Booking, log),
		Payment:     NewPaymentHandler(service.Payment, config, log),
		Review:      NewReviewHandler(service.Review, log),
		FAQ:         NewFAQHandler(service.FAQ, log),
		Site:        NewSiteHandler(service.Setting, log),
		Translation: NewTranslationHandler(service.Translation, log),
	}
}
