package models

import (
	"time"
)

type Song struct {
	ID                uint      `json:"id" gorm:"primarykey"`
	Title             string    `json:"title" gorm:"not null;uniqueIndex:idx_title_singer_album"`
	Album             string    `json:"album" gorm:"uniqueIndex:idx_title_singer_album"`
	Genre             string    `json:"genre"`
	Singer            string    `json:"singer" gorm:"not null;uniqueIndex:idx_title_singer_album"`
	Length            int       `json:"length"` // minutes
	DateOfPublication time.Time `json:"date_of_publication"`
	Reviews           []Review  `json:"reviews,omitempty" gorm:"foreignKey:SongID"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
