package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringArray stores a string slice as a JSON text column. The JSON encoding
// is what makes the portable keyword containment filter in the repository
// layer possible.
type StringArray []string

// Value implements the driver.Valuer interface for database serialization.
// Parameters: none.
// Returns:
//   - driver.Value: JSON-encoded string representation of the slice.
//   - error: non-nil if marshaling fails.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
// Parameters:
//   - value: raw database value to decode.
// Returns:
//   - error: non-nil if decoding fails or the type is unexpected.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan StringArray")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, a)
}

// BackgroundImage is one record in the image inventory. Records are written
// by the population process and read-only to the matching pipeline;
// administrative repopulation is the only mutation path.
type BackgroundImage struct {
	ID           string      `gorm:"type:text;primaryKey" json:"id"`
	URL          string      `gorm:"type:text;not null" json:"url"`
	Category     string      `gorm:"type:text;not null;index:idx_background_images_category" json:"category"`
	Mood         string      `gorm:"type:text;not null;index:idx_background_images_mood" json:"mood"`
	Keywords     StringArray `gorm:"type:text" json:"keywords"`
	Source       string      `gorm:"type:text;not null;index:idx_background_images_source,unique" json:"source"`
	SourceID     string      `gorm:"column:source_id;not null;index:idx_background_images_source,unique" json:"source_id,omitempty"`
	Photographer string      `gorm:"type:text" json:"photographer,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName returns the database table name for BackgroundImage.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (BackgroundImage) TableName() string {
	return "background_images"
}
