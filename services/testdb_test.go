package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tunecheck/config"
	"tunecheck/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh connection would see a fresh empty in-memory database, so the
	// pool is pinned to a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      []byte("test-secret"),
		JWTExpiration:  time.Hour,
		AuthMode:       config.AuthModeOpaque,
		PasswordScheme: config.PasswordSchemeSHA256,
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	hashed, err := HashPassword("password123", config.PasswordSchemeSHA256)
	require.NoError(t, err)

	user := &models.User{Username: username, PasswordHash: hashed, Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedSong(t *testing.T, db *gorm.DB, title, singer, album, genre string) *models.Song {
	t.Helper()

	song := &models.Song{
		Title:             title,
		Singer:            singer,
		Album:             album,
		Genre:             genre,
		Length:            3,
		DateOfPublication: time.Date(2022, 4, 6, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(song).Error)
	return song
}

func seedReview(t *testing.T, db *gorm.DB, userID, songID uint, rating int) *models.Review {
	t.Helper()

	review := &models.Review{UserID: userID, SongID: songID, Rating: rating, Comment: "seed"}
	require.NoError(t, db.Create(review).Error)
	return review
}
