package entity

import "time"

// Setting keys holding the gallery and video link lists. Values are
// JSON-encoded string arrays.
const (
	SettingKeyGalleryImages = "gallery_images"
	SettingKeyVideoLinks    = "video_links"
)

type Setting struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
