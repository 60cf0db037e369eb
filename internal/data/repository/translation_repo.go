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

type TranslationRepository interface {
	Upsert(ctx context.Context, translation *entity.Translation) error
	FindByEntity(ctx context.Context, entityType entity.TranslatedEntity, entityID uuid.UUID) ([]*entity.Translation, error)
	// FindForEntities loads the translations for a set of rows in one locale,
	// keyed by entity id. Rows without a translation are simply absent.
	FindForEntities(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type translationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTranslationRepository(db database.PgxIface, log *zap.Logger) TranslationRepository {
	return &translationRepository{
		db:  db,
		log: log.With(zap.String("repository", "translation")),
	}
}

func (r *translationRepository) Upsert(ctx context.Context, translation *entity.Translation) error {
	query := `
		INSERT INTO translations (id, entity_type, entity_id, locale, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (entity_type, entity_id, locale)
		DO UPDATE SET fields = EXCLUDED.fields, updated_at = EXCLUDED.updated_at
	`

	fields, err := json.Marshal(translation.Fields)
	if err != nil {
		return fmt.Errorf("marshal translation fields: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		translation.ID,
		translation.EntityType,
		translation.EntityID,
		translation.Locale,
		fields,
		translation.CreatedAt,
		translation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert translation",
			zap.Error(err),
			zap.String("entity_type", string(translation.EntityType)),
			zap.String("entity_id", translation.EntityID.String()),
			zap.String("locale", translation.Locale),
		)
		return fmt.Errorf("upsert translation for %s %s (%s): %w",
			string(translation.EntityType), translation.EntityID.String(), translation.Locale, err)
	}

	return nil
}

func (r *translationRepository) FindByEntity(ctx context.Context, entityType entity.TranslatedEntity, entityID uuid.UUID) ([]*entity.Translation, error) {
	query := `
		SELECT id, entity_type, entity_id, locale, fields, created_at, updated_at
		FROM translations
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY locale
	`

	rows, err := r.db.Query(ctx, query, entityType, entityID)
	if err != nil {
		r.log.Error("Failed to find translations by entity",
			zap.Error(err),
			zap.String("entity_type", string(entityType)),
			zap.String("entity_id", entityID.String()),
		)
		return nil, fmt.Errorf("find translations for %s %s: %w", string(entityType), entityID.String(), err)
	}
	defer rows.Close()

	var translations []*entity.Translation
	for rows.Next() {
		translation, err := r.scanTranslation(rows)
		if err != nil {
			r.log.Error("Failed to scan translation row", zap.Error(err))
			return nil, fmt.Errorf("scan translation row: %w", err)
		}
		translations = append(translations, translation)
	}

	return translations, nil
}

func (r *translationRepository) FindForEntities(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error) {
	result := make(map[uuid.UUID]map[string]string)
	if len(entityIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT entity_id, fields
		FROM translations
		WHERE entity_type = $1 AND locale = $2 AND entity_id = ANY($3)
	`

	rows, err := r.db.Query(ctx, query, entityType, locale, entityIDs)
	if err != nil {
		r.log.Error("Failed to find translations for entities",
			zap.Error(err),
			zap.String("entity_type", string(entityType)),
			zap.String("locale", locale),
			zap.Int("entity_count", len(entityIDs)),
		)
		return nil, fmt.Errorf("find %s translations for locale %s: %w", string(entityType), locale, err)
	}
	defer rows.Close()

	for rows.Next() {
		var entityID uuid.UUID
		var raw []byte
		if err := rows.Scan(&entityID, &raw); err != nil {
			r.log.Error("Failed to scan translation row", zap.Error(err))
			return nil, fmt.Errorf("scan translation row: %w", err)
		}

		fields := make(map[string]string)
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &fields); err != nil {
				return nil, fmt.Errorf("unmarshal translation fields: %w", err)
			}
		}
		result[entityID] = fields
	}

	return result, nil
}

func (r *translationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM translations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete translation",
			zap.Error(err),
			zap.String("translation_id", id.String()),
		)
		return fmt.Errorf("delete translation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("translation %s not found", id.String())
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (r *translationRepository) scanTranslation(row pgx.Row) (*entity.Translation, error) {
	var translation entity.Translation
	var raw []byte

	err := row.Scan(
		&translation.ID,
		&translation.EntityType,
		&translation.EntityID,
		&translation.Locale,
		&raw,
		&translation.CreatedAt,
		&translation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	translation.Fields = make(map[string]string)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &translation.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal translation fields: %w", err)
		}
	}

	return &translation, nil
}
