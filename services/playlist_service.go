package services

import (
	"errors"

	"gorm.io/gorm"

	"tunecheck/models"
	"tunecheck/repositories"
)

type PlaylistService interface {
	Create(actor *models.User, req models.PlaylistRequest) (*models.Playlist, error)
	GetByID(id uint) (*models.Playlist, error)
	GetMine(actor *models.User) ([]models.Playlist, error)
	Update(actor *models.User, id uint, req models.PlaylistRequest) (*models.Playlist, error)
	Delete(actor *models.User, id uint) error
	AddSong(actor *models.User, playlistID, songID uint) error
}

type playlistService struct {
	playlistRepo repositories.PlaylistRepository
	songRepo     repositories.SongRepository
}

func NewPlaylistService(playlistRepo repositories.PlaylistRepository, songRepo repositories.SongRepository) PlaylistService {
	return &playlistService{
		playlistRepo: playlistRepo,
		songRepo:     songRepo,
	}
}

func (s *playlistService) Create(actor *models.User, req models.PlaylistRequest) (*models.Playlist, error) {
	if _, err := s.playlistRepo.GetByUserAndName(actor.ID, req.Name); err == nil {
		return nil, models.ErrorConflict{Message: "playlist with this name already exists"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	playlist := &models.Playlist{
		Name:   req.Name,
		UserID: actor.ID,
	}

	if err := s.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) GetByID(id uint) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "playlist not found"}
		}
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) GetMine(actor *models.User) ([]models.Playlist, error) {
	return s.playlistRepo.GetByUser(actor.ID)
}

func (s *playlistService) Update(actor *models.User, id uint, req models.PlaylistRequest) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "playlist not found"}
		}
		return nil, err
	}

	if !CanMutatePlaylist(actor, playlist) {
		return nil, models.ErrorForbidden{Message: "not authorized to modify this playlist"}
	}

	if req.Name != playlist.Name {
		if _, err := s.playlistRepo.GetByUserAndName(playlist.UserID, req.Name); err == nil {
			return nil, models.ErrorConflict{Message: "playlist with this name already exists"}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		playlist.Name = req.Name
	}

	if err := s.playlistRepo.Update(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *playlistService) Delete(actor *models.User, id uint) error {
	playlist, err := s.playlistRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "playlist not found"}
		}
		return err
	}

	if !CanMutatePlaylist(actor, playlist) {
		return models.ErrorForbidden{Message: "not authorized to delete this playlist"}
	}

	return s.playlistRepo.Delete(id)
}

func (s *playlistService) AddSong(actor *models.User, playlistID, songID uint) error {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "playlist not found"}
		}
		return err
	}

	if !CanMutatePlaylist(actor, playlist) {
		return models.ErrorForbidden{Message: "not authorized to modify this playlist"}
	}

	if _, err := s.songRepo.GetByID(songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "song not found"}
		}
		return err
	}

	exists, err := s.playlistRepo.HasSong(playlistID, songID)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrorConflict{Message: "song is already in this playlist"}
	}

	return s.playlistRepo.AddSong(playlistID, songID)
}
