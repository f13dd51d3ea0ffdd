package models

import (
	"time"
)

type Playlist struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_owner_name"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_owner_name"`
	Owner     *User     `json:"-" gorm:"foreignKey:UserID"`
	Songs     []Song    `json:"songs" gorm:"many2many:playlist_songs;"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaylistSong is the playlist_songs join row. Membership is mutated through
// this row directly, never by appending to the Songs association.
type PlaylistSong struct {
	PlaylistID uint      `json:"playlist_id" gorm:"primaryKey"`
	SongID     uint      `json:"song_id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
}
