package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tunecheck/models"
)

func TestCanMutateUser(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleUser}
	admin := &models.User{ID: 2, Role: models.RoleAdmin}

	tests := []struct {
		name     string
		actor    *models.User
		targetID uint
		want     bool
	}{
		{"self", user, 1, true},
		{"other user", user, 2, false},
		{"admin on other", admin, 1, true},
		{"admin on self", admin, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutateUser(tt.actor, tt.targetID))
		})
	}
}

func TestCanManageCatalog(t *testing.T) {
	assert.False(t, CanManageCatalog(&models.User{ID: 1, Role: models.RoleUser}))
	assert.True(t, CanManageCatalog(&models.User{ID: 2, Role: models.RoleAdmin}))
}

func TestCanMutatePlaylist(t *testing.T) {
	playlist := &models.Playlist{ID: 10, UserID: 1}

	owner := &models.User{ID: 1, Role: models.RoleUser}
	other := &models.User{ID: 2, Role: models.RoleUser}
	admin := &models.User{ID: 3, Role: models.RoleAdmin}
	adminOwner := &models.User{ID: 1, Role: models.RoleAdmin}

	assert.True(t, CanMutatePlaylist(owner, playlist))
	assert.False(t, CanMutatePlaylist(other, playlist))
	// Admin role grants no playlist override.
	assert.False(t, CanMutatePlaylist(admin, playlist))
	// An admin who owns the playlist still qualifies through ownership.
	assert.True(t, CanMutatePlaylist(adminOwner, playlist))
}
