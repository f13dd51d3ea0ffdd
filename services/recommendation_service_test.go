package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tunecheck/models"
	"tunecheck/repositories"
)

func newRecommendationService(db *gorm.DB) RecommendationService {
	return NewRecommendationService(
		repositories.NewReviewRepository(db),
		repositories.NewSongRepository(db),
	)
}

func songIDs(songs []models.Song) []uint {
	ids := make([]uint, len(songs))
	for i, song := range songs {
		ids[i] = song.ID
	}
	return ids
}

func TestRecommendEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nesi", models.RoleUser)

	songs, err := newRecommendationService(db).Recommend(user.ID)
	require.NoError(t, err)
	assert.Empty(t, songs)
}

func TestRecommendNoReviewsFallsBackToCatalog(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nesi", models.RoleUser)

	first := seedSong(t, db, "Chop Suey", "SOAD", "Toxicity", "Rock")
	second := seedSong(t, db, "Cigaro", "SOAD", "Mezmerize", "Rock")
	third := seedSong(t, db, "Losha", "Andrea", "Andrea Top", "Pop Folk")
	seedSong(t, db, "Fuel", "Metallica", "ReLoad", "Rock")

	songs, err := newRecommendationService(db).Recommend(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{first.ID, second.ID, third.ID}, songIDs(songs))
}

func TestRecommendGenreAffinity(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nesi", models.RoleUser)

	rock1 := seedSong(t, db, "Chop Suey", "SOAD", "Toxicity", "Rock")
	rock2 := seedSong(t, db, "Cigaro", "SOAD", "Mezmerize", "Rock")
	rock3 := seedSong(t, db, "Fuel", "Metallica", "ReLoad", "Rock")
	pop := seedSong(t, db, "Dance Monkey", "Tones and I", "The Kids Are Coming", "Pop")

	seedReview(t, db, user.ID, rock1.ID, 5)

	songs, err := newRecommendationService(db).Recommend(user.ID)
	require.NoError(t, err)

	ids := songIDs(songs)
	assert.ElementsMatch(t, []uint{rock2.ID, rock3.ID}, ids)
	assert.NotContains(t, ids, rock1.ID)
	assert.NotContains(t, ids, pop.ID)
}

func TestRecommendGenreAffinityLimit(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nesi", models.RoleUser)

	rated := seedSong(t, db, "Chop Suey", "SOAD", "Toxicity", "Rock")
	a := seedSong(t, db, "Cigaro", "SOAD", "Mezmerize", "Rock")
	b := seedSong(t, db, "Fuel", "Metallica", "ReLoad", "Rock")
	c := seedSong(t, db, "One", "Metallica", "...And Justice for All", "Rock")
	seedSong(t, db, "Master of Puppets", "Metallica", "Master of Puppets", "Rock")

	seedReview(t, db, user.ID, rated.ID, 4)

	songs, err := newRecommendationService(db).Recommend(user.ID)
	require.NoError(t, err)
	// First three unrated rock songs in id order, never more.
	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, songIDs(songs))
}

func TestRecommendLowRatingsAreNoSignal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nesi", models.RoleUser)
	other := seedUser(t, db, "denis", models.RoleUser)

	rock1 := seedSong(t, db, "Chop Suey", "SOAD", "Toxicity", "Rock")
	rock2 := seedSong(t, db, "Cigaro", "SOAD", "Mezmerize", "Rock")
	pop := seedSong(t, db, "Dance Monkey", "Tones and I", "The Kids Are Coming", "Pop")

	// A rating of 3 personalizes nothing; the engine falls through to
	// global popularity.
	seedReview(t, db, user.ID, rock1.ID, 3)
	seedReview(t, db, other.ID, pop.ID, 5)
	seedReview(t, db, other.ID, rock2.ID, 2)

	songs, err := newRecommendationService(db).Recommend(user.ID)
	require.NoError(t, err)

	ids := songIDs(songs)
	require.Len(t, ids, 3)
	// Ordered by mean rating: pop 5.0, rock1 3.0, rock2 2.0.
	assert.Equal(t, []uint{pop.ID, rock1.ID, rock2.ID}, ids)
}

func TestRecommendGlobalFallbackKeepsRatedSongs(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nesi", models.RoleUser)
	other := seedUser(t, db, "denis", models.RoleUser)

	rock := seedSong(t, db, "Chop Suey", "SOAD", "Toxicity", "Rock")
	pop := seedSong(t, db, "Dance Monkey", "Tones and I", "The Kids Are Coming", "Pop")

	// The user top-rated the only rock song, so the personalized branch has
	// no unrated candidates and the engine falls back to global top hits,
	// which include songs the user already rated.
	seedReview(t, db, user.ID, rock.ID, 5)
	seedReview(t, db, other.ID, pop.ID, 4)

	songs, err := newRecommendationService(db).Recommend(user.ID)
	require.NoError(t, err)

	ids := songIDs(songs)
	assert.Contains(t, ids, rock.ID)
	assert.Contains(t, ids, pop.ID)
	// Mean 5.0 beats mean 4.0.
	assert.Equal(t, rock.ID, ids[0])
}

func TestRecommendGenreTieBreakIsDeterministic(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "nesi", models.RoleUser)

	rock1 := seedSong(t, db, "Chop Suey", "SOAD", "Toxicity", "Rock")
	rock2 := seedSong(t, db, "Cigaro", "SOAD", "Mezmerize", "Rock")
	pop1 := seedSong(t, db, "Dance Monkey", "Tones and I", "The Kids Are Coming", "Pop")
	pop2 := seedSong(t, db, "Levitating", "Dua Lipa", "Future Nostalgia", "Pop")
	rockFree := seedSong(t, db, "Fuel", "Metallica", "ReLoad", "Rock")
	seedSong(t, db, "Blinding Lights", "The Weeknd", "After Hours", "Pop")

	// Two rock and two pop top-rated reviews: a count tie. Rock is
	// encountered first, so rock wins every time.
	seedReview(t, db, user.ID, rock1.ID, 5)
	seedReview(t, db, user.ID, rock2.ID, 4)
	seedReview(t, db, user.ID, pop1.ID, 5)
	seedReview(t, db, user.ID, pop2.ID, 4)

	svc := newRecommendationService(db)
	for i := 0; i < 5; i++ {
		songs, err := svc.Recommend(user.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{rockFree.ID}, songIDs(songs))
	}
}

func TestMostCommonGenre(t *testing.T) {
	assert.Equal(t, "Rock", mostCommonGenre([]string{"Rock"}))
	assert.Equal(t, "Pop", mostCommonGenre([]string{"Rock", "Pop", "Pop"}))
	// On a tie the first-encountered genre wins.
	assert.Equal(t, "Rock", mostCommonGenre([]string{"Rock", "Pop", "Rock", "Pop"}))
}
