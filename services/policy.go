package services

import (
	"tunecheck/models"
)

// Ownership policy: pure predicates deciding whether an actor may mutate a
// target resource. Services call these before touching the store.

// CanMutateUser reports whether the actor may update or delete the user with
// targetID. Self-match and the admin role are OR'd, never exclusive.
func CanMutateUser(actor *models.User, targetID uint) bool {
	return actor.ID == targetID || actor.Role == models.RoleAdmin
}

// CanManageCatalog reports whether the actor may create, update or delete
// songs. Admins only.
func CanManageCatalog(actor *models.User) bool {
	return actor.Role == models.RoleAdmin
}

// CanMutatePlaylist reports whether the actor may update, delete or add
// songs to the playlist. Owner only; the admin role grants no override here.
func CanMutatePlaylist(actor *models.User, playlist *models.Playlist) bool {
	return actor.ID == playlist.UserID
}
