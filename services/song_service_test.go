package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunecheck/models"
	"tunecheck/repositories"
)

func songRequest() models.SongRequest {
	return models.SongRequest{
		Title:             "Losha",
		Album:             "Andrea Top",
		Genre:             "Pop Folk",
		Singer:            "Andrea",
		Length:            3,
		DateOfPublication: "2022-04-06",
	}
}

func TestCreateSongAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewSongService(repositories.NewSongRepository(db))

	user := seedUser(t, db, "nesi", models.RoleUser)
	admin := seedUser(t, db, "neskafe", models.RoleAdmin)

	_, err := svc.Create(user, songRequest())
	assert.IsType(t, models.ErrorForbidden{}, err)

	song, err := svc.Create(admin, songRequest())
	require.NoError(t, err)
	assert.NotZero(t, song.ID)
	assert.Equal(t, "Losha", song.Title)
}

func TestCreateSongDuplicateCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewSongService(repositories.NewSongRepository(db))
	admin := seedUser(t, db, "neskafe", models.RoleAdmin)

	_, err := svc.Create(admin, songRequest())
	require.NoError(t, err)

	// Same (title, singer, album) conflicts even when other fields differ.
	dup := songRequest()
	dup.Genre = "Chalga"
	dup.Length = 99
	_, err = svc.Create(admin, dup)
	assert.IsType(t, models.ErrorConflict{}, err)
}

func TestSongRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewSongService(repositories.NewSongRepository(db))
	admin := seedUser(t, db, "neskafe", models.RoleAdmin)

	created, err := svc.Create(admin, songRequest())
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Singer, fetched.Singer)
	assert.Equal(t, created.Album, fetched.Album)
	assert.Equal(t, created.Genre, fetched.Genre)
	assert.Equal(t, created.Length, fetched.Length)
	assert.True(t, created.DateOfPublication.Equal(fetched.DateOfPublication))

	// Reads are idempotent.
	again, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, fetched.Title, again.Title)
	assert.Equal(t, fetched.UpdatedAt.Unix(), again.UpdatedAt.Unix())
}

func TestUpdateSong(t *testing.T) {
	db := newTestDB(t)
	svc := NewSongService(repositories.NewSongRepository(db))
	user := seedUser(t, db, "nesi", models.RoleUser)
	admin := seedUser(t, db, "neskafe", models.RoleAdmin)

	created, err := svc.Create(admin, songRequest())
	require.NoError(t, err)

	req := songRequest()
	req.Title = "Gorivo"
	_, err = svc.Update(user, created.ID, req)
	assert.IsType(t, models.ErrorForbidden{}, err)

	updated, err := svc.Update(admin, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Gorivo", updated.Title)

	_, err = svc.Update(admin, 9999, req)
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestUpdateSongDuplicateCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewSongService(repositories.NewSongRepository(db))
	admin := seedUser(t, db, "neskafe", models.RoleAdmin)

	_, err := svc.Create(admin, songRequest())
	require.NoError(t, err)

	other := songRequest()
	other.Title = "Fuel"
	other.Singer = "Metallica"
	other.Album = "ReLoad"
	created, err := svc.Create(admin, other)
	require.NoError(t, err)

	// Renaming onto an existing (title, singer, album) conflicts.
	_, err = svc.Update(admin, created.ID, songRequest())
	assert.IsType(t, models.ErrorConflict{}, err)

	// Saving a song under its own identity does not.
	_, err = svc.Update(admin, created.ID, other)
	assert.NoError(t, err)
}

func TestDeleteSongCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewSongService(repositories.NewSongRepository(db))
	user := seedUser(t, db, "nesi", models.RoleUser)
	admin := seedUser(t, db, "neskafe", models.RoleAdmin)

	song := seedSong(t, db, "Fuel", "Metallica", "ReLoad", "Rock")
	seedReview(t, db, user.ID, song.ID, 5)
	playlist := &models.Playlist{Name: "All Time Hits", UserID: user.ID}
	require.NoError(t, db.Create(playlist).Error)
	require.NoError(t, db.Create(&models.PlaylistSong{PlaylistID: playlist.ID, SongID: song.ID}).Error)

	err := svc.Delete(user, song.ID)
	assert.IsType(t, models.ErrorForbidden{}, err)

	require.NoError(t, svc.Delete(admin, song.ID))

	_, err = svc.GetByID(song.ID)
	assert.IsType(t, models.ErrorNotFound{}, err)

	var reviews int64
	db.Model(&models.Review{}).Where("song_id = ?", song.ID).Count(&reviews)
	assert.Zero(t, reviews)

	var memberships int64
	db.Model(&models.PlaylistSong{}).Where("song_id = ?", song.ID).Count(&memberships)
	assert.Zero(t, memberships)
}
