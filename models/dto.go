package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=100"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty" binding:"omitempty,oneof=User Admin"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=100"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SongRequest struct {
	Title             string `json:"title" binding:"required,max=100"`
	Album             string `json:"album" binding:"required,max=100"`
	Genre             string `json:"genre" binding:"required,max=100"`
	Singer            string `json:"singer" binding:"required,max=100"`
	Length            int    `json:"length" binding:"required,min=1"`
	DateOfPublication string `json:"date_of_publication" binding:"required,datetime=2006-01-02"`
}

type PlaylistRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"max=500"`
}
