package models

import "time"

// Category represents an optional grouping for portfolio entries.
// The table is part of the schema but no handler writes to it yet.
type Category struct {
	ID        uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Category  string     `json:"category" db:"category" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"autoUpdateTime:false"`
}
