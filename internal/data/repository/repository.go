package repository

import (
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Package     PackageRepository
	Booking     BookingRepository
	Payment     PaymentRepository
	Inquiry     InquiryRepository
	Review      ReviewRepository
	FAQ         FAQRepository
	Setting     SettingRepository
	Translation TranslationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Package:     NewPackageRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Inquiry:     NewInquiryRepository(db, log),
		Review:      NewReviewRepository(db, log),
		FAQ:         NewFAQRepository(db, log),
		Setting:     NewSettingRepository(db, log),
		Translation: NewTranslationRepository(db, log),
	}
}
