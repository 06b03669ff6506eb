package domain

import "time"

// MatchCacheEntry maps a content hash to the image IDs matched for that
// content. Entries are written once on the first miss and never updated in
// place; new text produces a new hash and therefore a new entry. There is no
// TTL; entries persist until cleared administratively.
type MatchCacheEntry struct {
	ContentHash     string      `gorm:"column:content_hash;type:text;primaryKey" json:"content_hash"`
	Category        string      `gorm:"type:text;not null" json:"category"`
	MatchedImageIDs StringArray `gorm:"column:matched_image_ids;type:text" json:"matched_image_ids"`
	CreatedAt       time.Time   `json:"created_at"`
}

// TableName returns the database table name for MatchCacheEntry.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (MatchCacheEntry) TableName() string {
	return "image_cache"
}
