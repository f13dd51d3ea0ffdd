package services

import (
	"errors"

	"gorm.io/gorm"

	"tunecheck/models"
	"tunecheck/repositories"
)

type ReviewService interface {
	Create(actor *models.User, songID uint, req models.ReviewRequest) (*models.Review, error)
	GetBySong(songID uint) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	songRepo   repositories.SongRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, songRepo repositories.SongRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		songRepo:   songRepo,
	}
}

func (s *reviewService) Create(actor *models.User, songID uint, req models.ReviewRequest) (*models.Review, error) {
	if _, err := s.songRepo.GetByID(songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "song not found"}
		}
		return nil, err
	}

	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, models.ErrorConflict{Message: "rating must be between 1 and 5"}
	}

	if _, err := s.reviewRepo.GetByUserAndSong(actor.ID, songID); err == nil {
		return nil, models.ErrorConflict{Message: "you have already reviewed this song"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.Review{
		UserID:  actor.ID,
		SongID:  songID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) GetBySong(songID uint) ([]models.Review, error) {
	if _, err := s.songRepo.GetByID(songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "song not found"}
		}
		return nil, err
	}
	return s.reviewRepo.GetBySong(songID)
}
