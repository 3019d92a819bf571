package models

import "time"

// Portfolio represents a showcased project owned by a user.
// UpdatedAt is assigned by the update handler at write time, never by
// the ORM, so freshly created rows keep it NULL.
type Portfolio struct {
	ID          uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	UserID      uint       `json:"userId" db:"user_id" gorm:"not null;index"`
	CategoryID  *uint      `json:"categoryId,omitempty" db:"category_id"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    string     `json:"imageUrl" db:"image_url" gorm:"type:text"`
	ProjectURL  string     `json:"projectUrl" db:"project_url" gorm:"type:text"`
	Tags        *string    `json:"tags,omitempty" db:"tags" gorm:"type:text"` // JSON string of tags array
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" db:"updated_at" gorm:"autoUpdateTime:false"`

	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
