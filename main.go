package main

import (
	"net/http"

	"tunecheck/config"
	"tunecheck/handlers"
	"tunecheck/middleware"
	"tunecheck/repositories"
	"tunecheck/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Initialize database
	db := config.InitDB(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	songRepo := repositories.NewSongRepository(db)
	playlistRepo := repositories.NewPlaylistRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo, cfg)
	songService := services.NewSongService(songRepo)
	playlistService := services.NewPlaylistService(playlistRepo, songRepo)
	reviewService := services.NewReviewService(reviewRepo, songRepo)
	recommendationService := services.NewRecommendationService(reviewRepo, songRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	songHandler := handlers.NewSongHandler(songService)
	playlistHandler := handlers.NewPlaylistHandler(playlistService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TuneCheck Web App"})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	router.POST("/register", authHandler.Register)
	router.POST("/token", authHandler.Login)
	router.GET("/users/", userHandler.GetAllUsers)
	router.GET("/users/:id", userHandler.GetUser)
	router.GET("/songs", songHandler.GetSongs)
	router.GET("/songs/:id", songHandler.GetSong)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.GET("/users/me", authHandler.GetProfile)
		protected.PUT("/user/:id", userHandler.UpdateUser)
		protected.DELETE("/user/:id", userHandler.DeleteUser)

		protected.POST("/songs", songHandler.CreateSong)
		protected.PUT("/songs/:id", songHandler.UpdateSong)
		protected.DELETE("/songs/:id", songHandler.DeleteSong)

		protected.POST("/songs/:id/reviews", reviewHandler.CreateReview)
		protected.GET("/songs/:id/reviews", reviewHandler.GetSongReviews)

		playlists := protected.Group("/playlists")
		{
			playlists.POST("", playlistHandler.CreatePlaylist)
			playlists.GET("", playlistHandler.GetMyPlaylists)
			playlists.GET("/:id", playlistHandler.GetPlaylist)
			playlists.PUT("/:id", playlistHandler.UpdatePlaylist)
			playlists.DELETE("/:id", playlistHandler.DeletePlaylist)
			playlists.POST("/:id/add/:song_id", playlistHandler.AddSongToPlaylist)
		}

		protected.GET("/recommendations", recommendationHandler.GetRecommendations)
	}

	logrus.Infof("Server starting on port %s", cfg.Port)
	logrus.Fatal(router.Run(":" + cfg.Port))
}
