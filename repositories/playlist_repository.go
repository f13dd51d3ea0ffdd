package repositories

import (
	"tunecheck/models"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *models.Playlist) error
	GetByID(id uint) (*models.Playlist, error)
	GetByUser(userID uint) ([]models.Playlist, error)
	GetByUserAndName(userID uint, name string) (*models.Playlist, error)
	Update(playlist *models.Playlist) error
	Delete(id uint) error
	AddSong(playlistID, songID uint) error
	HasSong(playlistID, songID uint) (bool, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *models.Playlist) error {
	return r.db.Create(playlist).Error
}

func (r *playlistRepository) GetByID(id uint) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.Preload("Songs", func(db *gorm.DB) *gorm.DB {
		return db.Order("songs.id")
	}).First(&playlist, id).Error
	return &playlist, err
}

func (r *playlistRepository) GetByUser(userID uint) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&playlists).Error
	return playlists, err
}

func (r *playlistRepository) GetByUserAndName(userID uint, name string) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&playlist).Error
	return &playlist, err
}

func (r *playlistRepository) Update(playlist *models.Playlist) error {
	return r.db.Save(playlist).Error
}

// Delete removes the playlist and its membership rows in one transaction.
func (r *playlistRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistSong{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Playlist{}, id).Error
	})
}

// AddSong inserts a membership row into playlist_songs directly.
func (r *playlistRepository) AddSong(playlistID, songID uint) error {
	return r.db.Create(&models.PlaylistSong{PlaylistID: playlistID, SongID: songID}).Error
}

func (r *playlistRepository) HasSong(playlistID, songID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PlaylistSong{}).
		Where("playlist_id = ? AND song_id = ?", playlistID, songID).
		Count(&count).Error
	return count > 0, err
}
