package usecase

import (
	"context"
	"errors"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func newTranslationFixture(t *testing.T, translations *mockTranslationRepo) TranslationService {
	t.Helper()

	repo := &repository.Repository{Translation: translations}
	return NewTranslationService(repo, zaptest.NewLogger(t))
}

func TestApplyToPackagesOverlaysStoredFields(t *testing.T) {
	pkg := testTourPackage()
	translations := &mockTranslationRepo{
		FindForEntitiesFunc: func(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error) {
			assert.Equal(t, entity.TranslatedEntityPackage, entityType)
			assert.Equal(t, "sw", locale)
			return map[uuid.UUID]map[string]string{
				pkg.ID: {"name": "Serengeti ya Kale", "summary": "Safari ya siku tano"},
			}, nil
		},
	}
	srv := newTranslationFixture(t, translations)

	srv.ApplyToPackages(context.Background(), "sw", []*entity.TourPackage{pkg})

	assert.Equal(t, "Serengeti ya Kale", pkg.Name)
	assert.NotNil(t, pkg.Summary)
	assert.Equal(t, "Safari ya siku tano", *pkg.Summary)
}

func TestApplyToPackagesFallsBackWhenNoRow(t *testing.T) {
	pkg := testTourPackage()
	baseName := pkg.Name
	srv := newTranslationFixture(t, &mockTranslationRepo{})

	srv.ApplyToPackages(context.Background(), "fr", []*entity.TourPackage{pkg})

	assert.Equal(t, baseName, pkg.Name)
	assert.Nil(t, pkg.Summary)
}

func TestApplyToPackagesKeepsBaseFieldsNotInTranslation(t *testing.T) {
	pkg := testTourPackage()
	summary := "Five day classic safari"
	pkg.Summary = &summary

	translations := &mockTranslationRepo{
		FindForEntitiesFunc: func(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error) {
			// Only the name is translated; summary stays base
			return map[uuid.UUID]map[string]string{
				pkg.ID: {"name": "Serengeti ya Kale"},
			}, nil
		},
	}
	srv := newTranslationFixture(t, translations)

	srv.ApplyToPackages(context.Background(), "sw", []*entity.TourPackage{pkg})

	assert.Equal(t, "Serengeti ya Kale", pkg.Name)
	assert.Equal(t, "Five day classic safari", *pkg.Summary)
}

func TestApplyToPackagesSwallowsLookupErrors(t *testing.T) {
	pkg := testTourPackage()
	baseName := pkg.Name

	translations := &mockTranslationRepo{
		FindForEntitiesFunc: func(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error) {
			return nil, errors.New("connection refused")
		},
	}
	srv := newTranslationFixture(t, translations)

	srv.ApplyToPackages(context.Background(), "sw", []*entity.TourPackage{pkg})

	assert.Equal(t, baseName, pkg.Name)
}

func TestApplyToFAQsOverlaysQuestionAndAnswer(t *testing.T) {
	faq := &entity.FAQ{
		Base:     entity.Base{ID: uuid.New()},
		Question: "Do I need a visa?",
		Answer:   "Most visitors can obtain one on arrival.",
		IsActive: true,
	}

	translations := &mockTranslationRepo{
		FindForEntitiesFunc: func(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error) {
			assert.Equal(t, entity.TranslatedEntityFAQ, entityType)
			return map[uuid.UUID]map[string]string{
				faq.ID: {"question": "Je, nahitaji visa?", "answer": "Wageni wengi hupata visa uwanjani."},
			}, nil
		},
	}
	srv := newTranslationFixture(t, translations)

	srv.ApplyToFAQs(context.Background(), "sw", []*entity.FAQ{faq})

	assert.Equal(t, "Je, nahitaji visa?", faq.Question)
	assert.Equal(t, "Wageni wengi hupata visa uwanjani.", faq.Answer)
}

func TestApplyToPackagesSkipsEmptyLocale(t *testing.T) {
	lookups := 0
	translations := &mockTranslationRepo{
		FindForEntitiesFunc: func(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error) {
			lookups++
			return nil, nil
		},
	}
	srv := newTranslationFixture(t, translations)

	srv.ApplyToPackages(context.Background(), "", []*entity.TourPackage{testTourPackage()})

	assert.Zero(t, lookups)
}
