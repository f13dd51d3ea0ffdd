package repositories

import (
	"tunecheck/models"

	"gorm.io/gorm"
)

type SongRepository interface {
	Create(song *models.Song) error
	GetByID(id uint) (*models.Song, error)
	GetByIDs(ids []uint) ([]models.Song, error)
	GetAll() ([]models.Song, error)
	GetByTitleSingerAlbum(title, singer, album string) (*models.Song, error)
	GetByGenre(genre string) ([]models.Song, error)
	GetFirst(limit int) ([]models.Song, error)
	Update(song *models.Song) error
	Delete(id uint) error
}

type songRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

func (r *songRepository) Create(song *models.Song) error {
	return r.db.Create(song).Error
}

func (r *songRepository) GetByID(id uint) (*models.Song, error) {
	var song models.Song
	err := r.db.First(&song, id).Error
	return &song, err
}

func (r *songRepository) GetByIDs(ids []uint) ([]models.Song, error) {
	var songs []models.Song
	err := r.db.Where("id IN ?", ids).Find(&songs).Error
	return songs, err
}

func (r *songRepository) GetAll() ([]models.Song, error) {
	var songs []models.Song
	err := r.db.Order("id").Find(&songs).Error
	return songs, err
}

func (r *songRepository) GetByTitleSingerAlbum(title, singer, album string) (*models.Song, error) {
	var song models.Song
	err := r.db.Where("title = ? AND singer = ? AND album = ?", title, singer, album).First(&song).Error
	return &song, err
}

func (r *songRepository) GetByGenre(genre string) ([]models.Song, error) {
	var songs []models.Song
	err := r.db.Where("genre = ?", genre).Order("id").Find(&songs).Error
	return songs, err
}

func (r *songRepository) GetFirst(limit int) ([]models.Song, error) {
	var songs []models.Song
	err := r.db.Order("id").Limit(limit).Find(&songs).Error
	return songs, err
}

func (r *songRepository) Update(song *models.Song) error {
	return r.db.Save(song).Error
}

// Delete removes the song together with its reviews and playlist membership
// rows, all in one transaction.
func (r *songRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("song_id = ?", id).Delete(&models.PlaylistSong{}).Error; err != nil {
			return err
		}
		if err := tx.Where("song_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Song{}, id).Error
	})
}
