package repositories

import (
	"tunecheck/models"

	"gorm.io/gorm"
)

// SongRating is one row of the popularity aggregate: a song id with the mean
// of all its review ratings.
type SongRating struct {
	SongID    uint
	AvgRating float64
}

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByUser(userID uint) ([]models.Review, error)
	GetByUserAndSong(userID, songID uint) (*models.Review, error)
	GetBySong(songID uint) ([]models.Review, error)
	GlobalTopSongs(limit int) ([]SongRating, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("user_id = ?", userID).
		Preload("Song").
		Order("id").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetByUserAndSong(userID, songID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND song_id = ?", userID, songID).First(&review).Error
	return &review, err
}

func (r *reviewRepository) GetBySong(songID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("song_id = ?", songID).Order("id").Find(&reviews).Error
	return reviews, err
}

// GlobalTopSongs groups all reviews by song and returns the best-rated song
// ids by mean rating. Song id ascending breaks mean-rating ties so repeated
// calls stay deterministic.
func (r *reviewRepository) GlobalTopSongs(limit int) ([]SongRating, error) {
	var results []SongRating
	err := r.db.Model(&models.Review{}).
		Select("song_id, AVG(rating) as avg_rating").
		Group("song_id").
		Order("avg_rating desc, song_id asc").
		Limit(limit).
		Scan(&results).Error
	return results, err
}
