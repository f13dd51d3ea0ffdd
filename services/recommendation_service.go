package services

import (
	"tunecheck/models"
	"tunecheck/repositories"
)

const recommendationLimit = 3

type RecommendationService interface {
	// Recommend produces up to 3 suggested songs for the user: genre
	// affinity first, then global popularity, then an arbitrary catalog
	// sample. Read-only.
	Recommend(userID uint) ([]models.Song, error)
}

type recommendationService struct {
	reviewRepo repositories.ReviewRepository
	songRepo   repositories.SongRepository
}

func NewRecommendationService(reviewRepo repositories.ReviewRepository, songRepo repositories.SongRepository) RecommendationService {
	return &recommendationService{
		reviewRepo: reviewRepo,
		songRepo:   songRepo,
	}
}

func (s *recommendationService) Recommend(userID uint) ([]models.Song, error) {
	reviews, err := s.reviewRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	// Genres of the user's top-rated songs, duplicates kept, in review order.
	// The rated set covers every rating so already-reviewed songs never show
	// up in the personalized branch.
	var genres []string
	rated := make(map[uint]bool, len(reviews))
	for i := range reviews {
		rated[reviews[i].SongID] = true
		if reviews[i].TopRated() && reviews[i].Song != nil {
			genres = append(genres, reviews[i].Song.Genre)
		}
	}

	if len(genres) > 0 {
		songs, err := s.songRepo.GetByGenre(mostCommonGenre(genres))
		if err != nil {
			return nil, err
		}
		var candidates []models.Song
		for _, song := range songs {
			if rated[song.ID] {
				continue
			}
			candidates = append(candidates, song)
			if len(candidates) == recommendationLimit {
				break
			}
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}

	// Global top hits by mean rating. This branch is not filtered against the
	// user's own reviews, so a popular song the user already rated can come
	// back; callers rely on that behavior.
	top, err := s.reviewRepo.GlobalTopSongs(recommendationLimit)
	if err != nil {
		return nil, err
	}
	if len(top) > 0 {
		ids := make([]uint, len(top))
		for i, hit := range top {
			ids[i] = hit.SongID
		}
		songs, err := s.songRepo.GetByIDs(ids)
		if err != nil {
			return nil, err
		}
		byID := make(map[uint]models.Song, len(songs))
		for _, song := range songs {
			byID[song.ID] = song
		}
		ordered := make([]models.Song, 0, len(ids))
		for _, id := range ids {
			if song, ok := byID[id]; ok {
				ordered = append(ordered, song)
			}
		}
		return ordered, nil
	}

	// No reviews anywhere: hand back the front of the catalog.
	return s.songRepo.GetFirst(recommendationLimit)
}

// mostCommonGenre returns the most frequent genre. Ties go to the genre
// encountered first, so repeated calls over the same history pick the same
// genre.
func mostCommonGenre(genres []string) string {
	counts := make(map[string]int, len(genres))
	order := make([]string, 0, len(genres))
	for _, genre := range genres {
		if _, seen := counts[genre]; !seen {
			order = append(order, genre)
		}
		counts[genre]++
	}

	best := order[0]
	for _, genre := range order[1:] {
		if counts[genre] > counts[best] {
			best = genre
		}
	}
	return best
}
