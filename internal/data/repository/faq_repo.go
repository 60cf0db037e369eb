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

type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error)
	FindActive(ctx context.Context) ([]*entity.FAQ, error)
	FindAll(ctx context.Context) ([]*entity.FAQ, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type faqRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFAQRepository(db database.PgxIface, log *zap.Logger) FAQRepository {
	return &faqRepository{
		db:  db,
		log: log.With(zap.String("repository", "faq")),
	}
}

const faqColumns = `id, question, answer, position, is_active, created_at, updated_at`

func (r *faqRepository) Create(ctx context.Context, faq *entity.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, position, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Position,
		faq.IsActive,
		faq.CreatedAt,
		faq.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create FAQ", zap.Error(err))
		return fmt.Errorf("create FAQ: %w", err)
	}

	return nil
}

func (r *faqRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FAQ, error) {
	query := fmt.Sprintf(`SELECT %s FROM faqs WHERE id = $1`, faqColumns)

	faq, err := r.scanFAQ(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find FAQ by ID",
			zap.Error(err),
			zap.String("faq_id", id.String()),
		)
		return nil, fmt.Errorf("find FAQ by ID %s: %w", id.String(), err)
	}

	return faq, nil
}

func (r *faqRepository) FindActive(ctx context.Context) ([]*entity.FAQ, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM faqs
		WHERE is_active = TRUE
		ORDER BY position, created_at
	`, faqColumns)

	return r.queryFAQs(ctx, query)
}

func (r *faqRepository) FindAll(ctx context.Context) ([]*entity.FAQ, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM faqs
		ORDER BY position, created_at
	`, faqColumns)

	return r.queryFAQs(ctx, query)
}

func (r *faqRepository) Update(ctx context.Context, faq *entity.FAQ) error {
	query := `
		UPDATE faqs
		SET question = $2, answer = $3, position = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Position,
		faq.IsActive,
		faq.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update FAQ",
			zap.Error(err),
			zap.String("faq_id", faq.ID.String()),
		)
		return fmt.Errorf("update FAQ %s: %w", faq.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("FAQ %s not found", faq.ID.String())
	}

	return nil
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM faqs WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete FAQ",
			zap.Error(err),
			zap.String("faq_id", id.String()),
		)
		return fmt.Errorf("delete FAQ %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("FAQ %s not found", id.String())
	}

	r.log.Info("FAQ deleted", zap.String("faq_id", id.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (r *faqRepository) queryFAQs(ctx context.Context, query string) ([]*entity.FAQ, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query FAQs", zap.Error(err))
		return nil, fmt.Errorf("query FAQs: %w", err)
	}
	defer rows.Close()

	var faqs []*entity.FAQ
	for rows.Next() {
		faq, err := r.scanFAQ(rows)
		if err != nil {
			r.log.Error("Failed to scan FAQ row", zap.Error(err))
			return nil, fmt.Errorf("scan FAQ row: %w", err)
		}
		faqs = append(faqs, faq)
	}

	return faqs, nil
}

func (r *faqRepository) scanFAQ(row pgx.Row) (*entity.FAQ, error) {
	var faq entity.FAQ
	err := row.Scan(
		&faq.ID,
		&faq.Question,
		&faq.Answer,
		&faq.Position,
		&faq.IsActive,
		&faq.CreatedAt,
		&faq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &faq, nil
}
