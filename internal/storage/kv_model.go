package storage

import "time"

// Entry is one key/value pair, the same shape a device-local storage keeps.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Entry) TableName() string {
	return "storage_entries"
}
