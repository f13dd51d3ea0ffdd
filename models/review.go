package models

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_song"`
	SongID    uint      `json:"song_id" gorm:"not null;uniqueIndex:idx_user_song"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"size:500"`
	Song      *Song     `json:"-" gorm:"foreignKey:SongID"`
	CreatedAt time.Time `json:"created_at"`
}

// TopRated reports whether the review counts as a personalization signal.
func (r *Review) TopRated() bool {
	return r.Rating >= 4
}
