package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tunecheck/models"
	"tunecheck/repositories"
)

const publicationDateLayout = "2006-01-02"

type SongService interface {
	GetByID(id uint) (*models.Song, error)
	GetAll() ([]models.Song, error)
	Create(actor *models.User, req models.SongRequest) (*models.Song, error)
	Update(actor *models.User, id uint, req models.SongRequest) (*models.Song, error)
	Delete(actor *models.User, id uint) error
}

type songService struct {
	songRepo repositories.SongRepository
}

func NewSongService(songRepo repositories.SongRepository) SongService {
	return &songService{songRepo: songRepo}
}

func (s *songService) GetByID(id uint) (*models.Song, error) {
	song, err := s.songRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "song not found"}
		}
		return nil, err
	}
	return song, nil
}

func (s *songService) GetAll() ([]models.Song, error) {
	return s.songRepo.GetAll()
}

func (s *songService) Create(actor *models.User, req models.SongRequest) (*models.Song, error) {
	if !CanManageCatalog(actor) {
		return nil, models.ErrorForbidden{Message: "you don't have rights to add new songs"}
	}

	if _, err := s.songRepo.GetByTitleSingerAlbum(req.Title, req.Singer, req.Album); err == nil {
		return nil, models.ErrorConflict{Message: "this song is already added"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	published, err := time.Parse(publicationDateLayout, req.DateOfPublication)
	if err != nil {
		return nil, err
	}

	song := &models.Song{
		Title:             req.Title,
		Album:             req.Album,
		Genre:             req.Genre,
		Singer:            req.Singer,
		Length:            req.Length,
		DateOfPublication: published,
	}

	if err := s.songRepo.Create(song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *songService) Update(actor *models.User, id uint, req models.SongRequest) (*models.Song, error) {
	if !CanManageCatalog(actor) {
		return nil, models.ErrorForbidden{Message: "you don't have rights to update songs"}
	}

	song, err := s.songRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "song not found"}
		}
		return nil, err
	}

	// An update may not collide with another song's catalog identity.
	if existing, err := s.songRepo.GetByTitleSingerAlbum(req.Title, req.Singer, req.Album); err == nil {
		if existing.ID != song.ID {
			return nil, models.ErrorConflict{Message: "this song is already added"}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	published, err := time.Parse(publicationDateLayout, req.DateOfPublication)
	if err != nil {
		return nil, err
	}

	song.Title = req.Title
	song.Album = req.Album
	song.Genre = req.Genre
	song.Singer = req.Singer
	song.Length = req.Length
	song.DateOfPublication = published

	if err := s.songRepo.Update(song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *songService) Delete(actor *models.User, id uint) error {
	if !CanManageCatalog(actor) {
		return models.ErrorForbidden{Message: "you don't have rights to delete songs"}
	}

	if _, err := s.songRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "song not found"}
		}
		return err
	}

	return s.songRepo.Delete(id)
}
