package entity

type FAQ struct {
	Base
	Question string `db:"question"`
	Answer   string `db:"answer"`
	Position int    `db:"position"`
	IsActive bool   `db:"is_active"`
}
