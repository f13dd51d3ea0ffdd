package handlers

import (
	"net/http"

	"tunecheck/middleware"
	"tunecheck/models"
	"tunecheck/services"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	songs, err := h.recommendationService.Recommend(actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if songs == nil {
		songs = []models.Song{}
	}
	c.JSON(http.StatusOK, songs)
}
