package entity

type PackageType string

const (
	PackageTypeSafari   PackageType = "SAFARI"
	PackageTypeMountain PackageType = "MOUNTAIN"
	PackageTypeBeach    PackageType = "BEACH"
	PackageTypeDayTrip  PackageType = "DAY_TRIP"
)

func (t PackageType) Valid() bool {
	switch t {
	case PackageTypeSafari, PackageTypeMountain, PackageTypeBeach, PackageTypeDayTrip:
		return true
	}
	return false
}

type TourPackage struct {
	Base
	Type         PackageType `db:"type"`
	Name         string      `db:"name"`
	Slug         string      `db:"slug"`
	Summary      *string     `db:"summary"`
	Description  *string     `db:"description"`
	Price        float64     `db:"price"`
	Currency     string      `db:"currency"`
	DurationDays int         `db:"duration_days"`
	Images       []string    `db:"images"`     // jsonb
	Highlights   []string    `db:"highlights"` // jsonb
	IsActive     bool        `db:"is_active"`
}
