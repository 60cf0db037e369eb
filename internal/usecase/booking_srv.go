package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByReference(ctx context.Context, reference string) (*response.BookingResponse, error)

	// Admin endpoints
	ListBookings(ctx context.Context, status string, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// ==================== PUBLIC ENDPOINTS ====================

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Reference:     utils.GenerateBookingReference(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Country:       req.Country,
		Travelers:     req.Travelers,
		Notes:         req.Notes,
		Status:        entity.BookingStatusInquiry,
	}

	if req.TravelDate != nil {
		travelDate, err := time.Parse("2006-01-02", *req.TravelDate)
		if err != nil {
			return nil, fmt.Errorf("invalid travel date %s: %w", *req.TravelDate, err)
		}
		booking.TravelDate = &travelDate
	}

	var packageName string
	if req.PackageID != "" {
		packageID, err := uuid.Parse(req.PackageID)
		if err != nil {
			return nil, fmt.Errorf("invalid package ID format %s: %w", req.PackageID, err)
		}

		pkg, err := s.repo.Package.FindByID(ctx, packageID)
		if err != nil {
			return nil, fmt.Errorf("get package %s: %w", req.PackageID, err)
		}
		if pkg == nil || !pkg.IsActive {
			return nil, fmt.Errorf("package %s not found", req.PackageID)
		}

		// Price is quoted from the package at booking time, never trusted
		// from the client
		total := pkg.Price * float64(req.Travelers)
		booking.PackageID = &pkg.ID
		booking.TotalAmount = &total
		booking.Currency = pkg.Currency
		packageName = pkg.Name
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("customer_email", booking.CustomerEmail),
	)

	resp := response.BookingToResponse(booking, packageName, nil)
	return &resp, nil
}

func (s *bookingService) GetBookingByReference(ctx context.Context, reference string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking by reference %s: %w", reference, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", reference)
	}

	return s.toDetailResponse(ctx, booking)
}

// ==================== ADMIN ENDPOINTS ====================

func (s *bookingService) ListBookings(ctx context.Context, status string, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error) {
	if status != "" && !entity.BookingStatus(status).Valid() {
		return nil, fmt.Errorf("invalid booking status %s", status)
	}

	offset := utils.CalculateOffset(page, perPage)
	bookings, err := s.repo.Booking.FindAll(ctx, status, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking, "", nil)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return s.toDetailResponse(ctx, booking)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	// Membership is the only status rule; the back office may move a booking
	// between any two statuses
	status := entity.BookingStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("invalid booking status %s", req.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = status

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	return s.toDetailResponse(ctx, booking)
}

// ==================== HELPER METHODS ====================

func (s *bookingService) toDetailResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	var packageName string
	if booking.PackageID != nil {
		pkg, err := s.repo.Package.FindByID(ctx, *booking.PackageID)
		if err != nil {
			return nil, fmt.Errorf("get booking package: %w", err)
		}
		if pkg != nil {
			packageName = pkg.Name
		}
	}

	var payment *response.PaymentResponse
	latest, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking payment: %w", err)
	}
	if latest != nil {
		paymentResp := response.PaymentToResponse(latest)
		payment = &paymentResp
	}

	resp := response.BookingToResponse(booking, packageName, payment)
	return &resp, nil
}
