package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/gateway"
	"tour-booking/pkg/mailer"
	"tour-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Catalog     CatalogService
	Inquiry     InquiryService
	Booking     BookingService
	Payment     PaymentService
	Review      ReviewService
	FAQ         FAQService
	Setting     SettingService
	Translation TranslationService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	rdb *redis.Client,
	pg gateway.Gateway,
	mail mailer.Mailer,
	log *zap.Logger,
) *Service {
	translation := NewTranslationService(repo, log)

	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Catalog:     NewCatalogService(repo, translation, rdb, config, log),
		Inquiry:     NewInquiryService(repo, config, mail, log),
		Booking:     NewBookingService(repo, log),
		Payment:     NewPaymentService(repo, config, pg, rdb, mail, log),
		Review:      NewReviewService(repo, config, log),
		FAQ:         NewFAQService(repo, translation, log),
		Setting:     NewSettingService(repo, log),
		Translation: translation,
	}
}
