package models

import "time"

// Comment is a note a user leaves on a map location. The User relation is
// loaded at read time so clients get the author's display fields without
// duplicating them on the row.
type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CommentText string    `json:"commentText" gorm:"type:text;not null" validate:"required"`
	MapLocation string    `json:"mapLocation" gorm:"type:varchar(255)"`
	UserID      string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	User        User      `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
