package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tunecheck/models"
)

// InitDB connects to the database and runs the schema migration.
func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	if err := Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate DB: %v", err)
	}

	return db
}

// Migrate creates the schema. The playlist_songs join table is registered
// explicitly so membership rows can be written through models.PlaylistSong.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Playlist{}, "Songs", &models.PlaylistSong{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Song{},
		&models.Playlist{},
		&models.Review{},
	)
}
