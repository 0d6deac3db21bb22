package models

import "time"

// Favorite is a saved map location. The composite unique index keeps a user
// from saving the same coordinates string twice; the comparison is on the
// exact text, "48.85,2.35" and "48.8500,2.3500" are different favorites.
type Favorite struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	LocationName string    `json:"locationName" gorm:"type:varchar(255);not null" validate:"required"`
	Coordinates  string    `json:"coordinates" gorm:"type:varchar(100);not null;uniqueIndex:idx_favorites_owner_coords" validate:"required"`
	UserID       string    `json:"userId" gorm:"type:varchar(36);not null;uniqueIndex:idx_favorites_owner_coords"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
