package handlers

import (
	"net/http"
	"strconv"

	"tunecheck/middleware"
	"tunecheck/models"
	"tunecheck/services"

	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	songService services.SongService
}

func NewSongHandler(songService services.SongService) *SongHandler {
	return &SongHandler{songService: songService}
}

func (h *SongHandler) GetSongs(c *gin.Context) {
	songs, err := h.songService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, songs)
}

func (h *SongHandler) GetSong(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	song, err := h.songService.GetByID(uint(id))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, song)
}

func (h *SongHandler) CreateSong(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	var req models.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songService.Create(actor, req)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, song)
}

func (h *SongHandler) UpdateSong(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	var req models.SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songService.Update(actor, uint(id), req)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, song)
}

func (h *SongHandler) DeleteSong(c *gin.Context) {
	actor, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid song ID"})
		return
	}

	if err := h.songService.Delete(actor, uint(id)); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song deleted"})
}
