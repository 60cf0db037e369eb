package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/mailer"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InquiryService interface {
	// Public endpoint
	CreateInquiry(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error)

	// Admin endpoints
	ListInquiries(ctx context.Context, status string, page, perPage int) (*response.PaginatedResponse[response.InquiryResponse], error)
	GetInquiryByID(ctx context.Context, inquiryID string) (*response.InquiryResponse, error)
	UpdateInquiryStatus(ctx context.Context, inquiryID string, req *request.UpdateInquiryStatusRequest) (*response.InquiryResponse, error)
}

type inquiryService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewInquiryService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) InquiryService {
	return &inquiryService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "inquiry")),
	}
}

// ==================== PUBLIC ENDPOINT ====================

func (s *inquiryService) CreateInquiry(ctx context.Context, req *request.CreateInquiryRequest) (*response.InquiryResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create inquiry validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	inquiry := &entity.Inquiry{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Country: req.Country,
		Message: req.Message,
		Status:  entity.InquiryStatusNew,
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
		if pkg == nil {
			return nil, fmt.Errorf("package %s not found", req.PackageID)
		}
		inquiry.PackageID = &pkg.ID
		packageName = pkg.Name
	}

	if req.TravelDate != nil {
		travelDate, err := time.Parse("2006-01-02", *req.TravelDate)
		if err != nil {
			return nil, fmt.Errorf("invalid travel date %s: %w", *req.TravelDate, err)
		}
		inquiry.TravelDate = &travelDate
	}

	if err := s.repo.Inquiry.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.log.Info("Inquiry created",
		zap.String("inquiry_id", inquiry.ID.String()),
		zap.String("email", inquiry.Email),
	)

	// Both mails are best effort; the inquiry is already persisted
	go s.notifyOperator(inquiry, packageName)
	go s.acknowledgeCustomer(inquiry)

	resp := response.InquiryToResponse(inquiry)
	return &resp, nil
}

// ==================== ADMIN ENDPOINTS ====================

func (s *inquiryService) ListInquiries(ctx context.Context, status string, page, perPage int) (*response.PaginatedResponse[response.InquiryResponse], error) {
	if status != "" && !entity.InquiryStatus(status).Valid() {
		return nil, fmt.Errorf("invalid inquiry status %s", status)
	}

	offset := utils.CalculateOffset(page, perPage)
	inquiries, err := s.repo.Inquiry.FindAll(ctx, status, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	total, err := s.repo.Inquiry.CountAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count inquiries: %w", err)
	}

	responses := make([]response.InquiryResponse, len(inquiries))
	for i, inquiry := range inquiries {
		responses[i] = response.InquiryToResponse(inquiry)
	}

	return response.NewPaginatedResponse(responses, page, perPage, total), nil
}

func (s *inquiryService) GetInquiryByID(ctx context.Context, inquiryID string) (*response.InquiryResponse, error) {
	id, err := uuid.Parse(inquiryID)
	if err != nil {
		return nil, fmt.Errorf("invalid inquiry ID format %s: %w", inquiryID, err)
	}

	inquiry, err := s.repo.Inquiry.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inquiry %s: %w", inquiryID, err)
	}
	if inquiry == nil {
		return nil, fmt.Errorf("inquiry %s not found", inquiryID)
	}

	resp := response.InquiryToResponse(inquiry)
	return &resp, nil
}

func (s *inquiryService) UpdateInquiryStatus(ctx context.Context, inquiryID string, req *request.UpdateInquiryStatusRequest) (*response.InquiryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update inquiry status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(inquiryID)
	if err != nil {
		return nil, fmt.Errorf("invalid inquiry ID format %s: %w", inquiryID, err)
	}

	inquiry, err := s.repo.Inquiry.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inquiry %s: %w", inquiryID, err)
	}
	if inquiry == nil {
		return nil, fmt.Errorf("inquiry %s not found", inquiryID)
	}

	status := entity.InquiryStatus(req.Status)
	if err := s.repo.Inquiry.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	inquiry.Status = status

	resp := response.InquiryToResponse(inquiry)
	return &resp, nil
}

// ==================== EMAIL HELPERS ====================

func (s *inquiryService) notifyOperator(inquiry *entity.Inquiry, packageName string) {
	if s.config.Email.Operator == "" {
		return
	}

	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	body := fmt.Sprintf(
		"Name: %s\r\nEmail: %s\r\nPackage: %s\r\n\r\n%s",
		inquiry.Name, inquiry.Email, packageName, inquiry.Message,
	)

	if err := s.mail.Send(s.config.Email.Operator, subject, body); err != nil {
		s.log.Warn("Operator inquiry notification failed",
			zap.Error(err),
			zap.String("inquiry_id", inquiry.ID.String()),
		)
	}
}

func (s *inquiryService) acknowledgeCustomer(inquiry *entity.Inquiry) {
	subject := "We received your inquiry"
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\nThank you for reaching out. Our team will get back to you within one business day.\r\n\r\n%s",
		inquiry.Name, s.config.App.Name,
	)

	if err := s.mail.Send(inquiry.Email, subject, body); err != nil {
		s.log.Warn("Inquiry acknowledgement email failed",
			zap.Error(err),
			zap.String("inquiry_id", inquiry.ID.String()),
		)
	}
}
