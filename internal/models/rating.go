package models

import "time"

// Rating is a user's 1-5 score for the app. The unique index on UserID
// enforces at most one row per user; submitting again updates in place.
type Rating struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Value     int       `json:"value" gorm:"not null" validate:"required,gte=1,lte=5"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
