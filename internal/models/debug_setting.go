package models

import "time"

// DebugSetting is one persisted debug default. List values are stored as JSON
// arrays in Value.
type DebugSetting struct {
	Key       string `gorm:"primaryKey;column:setting_key;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
