package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*entity.Setting, error)
	GetAll(ctx context.Context) ([]*entity.Setting, error)
	Upsert(ctx context.Context, setting *entity.Setting) error
	Delete(ctx context.Context, key string) error
}

type settingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettingRepository(db database.PgxIface, log *zap.Logger) SettingRepository {
	return &settingRepository{
		db:  db,
		log: log.With(zap.String("repository", "setting")),
	}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*entity.Setting, error) {
	query := `SELECT key, value, updated_at FROM settings WHERE key = $1`

	var setting entity.Setting
	err := r.db.QueryRow(ctx, query, key).Scan(
		&setting.Key,
		&setting.Value,
		&setting.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get setting",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}

	return &setting, nil
}

func (r *settingRepository) GetAll(ctx context.Context) ([]*entity.Setting, error) {
	query := `SELECT key, value, updated_at FROM settings ORDER BY key`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get settings", zap.Error(err))
		return nil, fmt.Errorf("get settings: %w", err)
	}
	defer rows.Close()

	var settings []*entity.Setting
	for rows.Next() {
		var setting entity.Setting
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			r.log.Error("Failed to scan setting row", zap.Error(err))
			return nil, fmt.Errorf("scan setting row: %w", err)
		}
		settings = append(settings, &setting)
	}

	return settings, nil
}

func (r *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query, setting.Key, setting.Value, setting.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to upsert setting",
			zap.Error(err),
			zap.String("key", setting.Key),
		)
		return fmt.Errorf("upsert setting %s: %w", setting.Key, err)
	}

	return nil
}

func (r *settingRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM settings WHERE key = $1`

	result, err := r.db.Exec(ctx, query, key)
	if err != nil {
		r.log.Error("Failed to delete setting",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("delete setting %s: %w", key, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("setting %s not found", key)
	}

	return nil
}
