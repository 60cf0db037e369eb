package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Inquiry, error)
	CountAll(ctx context.Context, status string) (int64, error)
	UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status entity.InquiryStatus) error
}

type inquiryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInquiryRepository(db database.PgxIface, log *zap.Logger) InquiryRepository {
	return &inquiryRepository{
		db:  db,
		log: log.With(zap.String("repository", "inquiry")),
	}
}

const inquiryColumns = `id, name, email, phone, country, package_id, travel_date, message, status, created_at, updated_at`

func (r *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, phone, country, package_id, travel_date, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Country,
		inquiry.PackageID,
		inquiry.TravelDate,
		inquiry.Message,
		inquiry.Status,
		inquiry.CreatedAt,
		inquiry.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create inquiry",
			zap.Error(err),
			zap.String("email", inquiry.Email),
		)
		return fmt.Errorf("create inquiry from %s: %w", inquiry.Email, err)
	}

	return nil
}

func (r *inquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	query := fmt.Sprintf(`SELECT %s FROM inquiries WHERE id = $1`, inquiryColumns)

	inquiry, err := r.scanInquiry(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find inquiry by ID",
			zap.Error(err),
			zap.String("inquiry_id", id.String()),
		)
		return nil, fmt.Errorf("find inquiry by ID %s: %w", id.String(), err)
	}

	return inquiry, nil
}

func (r *inquiryRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Inquiry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM inquiries
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, inquiryColumns)

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find inquiries", zap.Error(err))
		return nil, fmt.Errorf("find inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*entity.Inquiry
	for rows.Next() {
		inquiry, err := r.scanInquiry(rows)
		if err != nil {
			r.log.Error("Failed to scan inquiry row", zap.Error(err))
			return nil, fmt.Errorf("scan inquiry row: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, nil
}

func (r *inquiryRepository) CountAll(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM inquiries WHERE ($1 = '' OR status = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count inquiries", zap.Error(err))
		return 0, fmt.Errorf("count inquiries: %w", err)
	}

	return count, nil
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, inquiryID uuid.UUID, status entity.InquiryStatus) error {
	query := `UPDATE inquiries SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, inquiryID, status)
	if err != nil {
		r.log.Error("Failed to update inquiry status",
			zap.Error(err),
			zap.String("inquiry_id", inquiryID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update inquiry %s status to %s: %w", inquiryID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("inquiry %s not found", inquiryID.String())
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (r *inquiryRepository) scanInquiry(row pgx.Row) (*entity.Inquiry, error) {
	var inquiry entity.Inquiry
	err := row.Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.Country,
		&inquiry.PackageID,
		&inquiry.TravelDate,
		&inquiry.Message,
		&inquiry.Status,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &inquiry, nil
}
