package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.TourPackage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TourPackage, error)
	FindBySlug(ctx context.Context, slug string) (*entity.TourPackage, error)
	FindActive(ctx context.Context, packageType string, limit, offset int) ([]*entity.TourPackage, error)
	CountActive(ctx context.Context, packageType string) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.TourPackage, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, pkg *entity.TourPackage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `id, type, name, slug, summary, description, price, currency, duration_days, images, highlights, is_active, created_at, updated_at`

func (r *packageRepository) Create(ctx context.Context, pkg *entity.TourPackage) error {
	query := `
		INSERT INTO packages (id, type, name, slug, summary, description, price, currency, duration_days, images, highlights, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	images, err := json.Marshal(pkg.Images)
	if err != nil {
		return fmt.Errorf("marshal package images: %w", err)
	}
	highlights, err := json.Marshal(pkg.Highlights)
	if err != nil {
		return fmt.Errorf("marshal package highlights: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Type,
		pkg.Name,
		pkg.Slug,
		pkg.Summary,
		pkg.Description,
		pkg.Price,
		pkg.Currency,
		pkg.DurationDays,
		images,
		highlights,
		pkg.IsActive,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("slug", pkg.Slug),
		)
		return fmt.Errorf("create package %s: %w", pkg.Slug, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourPackage, error) {
	query := fmt.Sprintf(`SELECT %s FROM packages WHERE id = $1`, packageColumns)

	pkg, err := r.scanPackage(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	return pkg, nil
}

func (r *packageRepository) FindBySlug(ctx context.Context, slug string) (*entity.TourPackage, error) {
	query := fmt.Sprintf(`SELECT %s FROM packages WHERE slug = $1`, packageColumns)

	pkg, err := r.scanPackage(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find package by slug %s: %w", slug, err)
	}

	return pkg, nil
}

func (r *packageRepository) FindActive(ctx context.Context, packageType string, limit, offset int) ([]*entity.TourPackage, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM packages
		WHERE is_active = TRUE AND ($1 = '' OR type = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, packageColumns)

	rows, err := r.db.Query(ctx, query, packageType, limit, offset)
	if err != nil {
		r.log.Error("Failed to find active packages",
			zap.Error(err),
			zap.String("type", packageType),
		)
		return nil, fmt.Errorf("find active packages: %w", err)
	}
	defer rows.Close()

	return r.collectPackages(rows)
}

func (r *packageRepository) CountActive(ctx context.Context, packageType string) (int64, error) {
	query := `SELECT COUNT(*) FROM packages WHERE is_active = TRUE AND ($1 = '' OR type = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, packageType).Scan(&count); err != nil {
		r.log.Error("Failed to count active packages", zap.Error(err))
		return 0, fmt.Errorf("count active packages: %w", err)
	}

	return count, nil
}

func (r *packageRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.TourPackage, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM packages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, packageColumns)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find packages", zap.Error(err))
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer rows.Close()

	return r.collectPackages(rows)
}

func (r *packageRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM packages`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count packages", zap.Error(err))
		return 0, fmt.Errorf("count packages: %w", err)
	}

	return count, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.TourPackage) error {
	query := `
		UPDATE packages
		SET type = $2, name = $3, slug = $4, summary = $5, description = $6, price = $7,
		    currency = $8, duration_days = $9, images = $10, highlights = $11, is_active = $12, updated_at = $13
		WHERE id = $1
	`

	images, err := json.Marshal(pkg.Images)
	if err != nil {
		return fmt.Errorf("marshal package images: %w", err)
	}
	highlights, err := json.Marshal(pkg.Highlights)
	if err != nil {
		return fmt.Errorf("marshal package highlights: %w", err)
	}

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Type,
		pkg.Name,
		pkg.Slug,
		pkg.Summary,
		pkg.Description,
		pkg.Price,
		pkg.Currency,
		pkg.DurationDays,
		images,
		highlights,
		pkg.IsActive,
		pkg.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update package",
			zap.Error(err),
			zap.String("package_id", pkg.ID.String()),
		)
		return fmt.Errorf("update package %s: %w", pkg.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", pkg.ID.String())
	}

	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return fmt.Errorf("delete package %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", id.String())
	}

	r.log.Info("Package deleted", zap.String("package_id", id.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (r *packageRepository) scanPackage(row pgx.Row) (*entity.TourPackage, error) {
	var pkg entity.TourPackage
	var images, highlights []byte

	err := row.Scan(
		&pkg.ID,
		&pkg.Type,
		&pkg.Name,
		&pkg.Slug,
		&pkg.Summary,
		&pkg.Description,
		&pkg.Price,
		&pkg.Currency,
		&pkg.DurationDays,
		&images,
		&highlights,
		&pkg.IsActive,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(images) > 0 {
		if err := json.Unmarshal(images, &pkg.Images); err != nil {
			return nil, fmt.Errorf("unmarshal package images: %w", err)
		}
	}
	if len(highlights) > 0 {
		if err := json.Unmarshal(highlights, &pkg.Highlights); err != nil {
			return nil, fmt.Errorf("unmarshal package highlights: %w", err)
		}
	}

	return &pkg, nil
}

func (r *packageRepository) collectPackages(rows pgx.Rows) ([]*entity.TourPackage, error) {
	var packages []*entity.TourPackage
	for rows.Next() {
		pkg, err := r.scanPackage(rows)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, pkg)
	}

	return packages, nil
}
