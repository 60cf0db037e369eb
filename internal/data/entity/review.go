package entity

type ReviewSource string

const (
	ReviewSourceManual ReviewSource = "manual"
	ReviewSourceSynced ReviewSource = "synced"
)

type Review struct {
	Base
	Author    string       `db:"author"`
	Rating    int          `db:"rating"` // 1-5
	Text      string       `db:"text"`
	Source    ReviewSource `db:"source"`
	SourceRef *string      `db:"source_ref"` // external id for synced reviews
	IsActive  bool         `db:"is_active"`
}
