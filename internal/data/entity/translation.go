package entity

import (
	"github.com/google/uuid"
)

type TranslatedEntity string

const (
	TranslatedEntityPackage TranslatedEntity = "package"
	TranslatedEntityFAQ     TranslatedEntity = "faq"
)

func (e TranslatedEntity) Valid() bool {
	switch e {
	case TranslatedEntityPackage, TranslatedEntityFAQ:
		return true
	}
	return false
}

// Translation holds the per-locale strings for one row of a translated
// entity. Fields maps base column name to the translated value; columns
// absent from the map fall back to the base language.
type Translation struct {
	Base
	EntityType TranslatedEntity  `db:"entity_type"`
	EntityID   uuid.UUID         `db:"entity_id"`
	Locale     string            `db:"locale"`
	Fields     map[string]string `db:"fields"` // jsonb
}
