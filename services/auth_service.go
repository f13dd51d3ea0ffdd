package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"tunecheck/config"
	"tunecheck/models"
	"tunecheck/repositories"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	Login(username, password string) (*models.TokenResponse, error)
	// Resolve maps a presented bearer credential to a user record.
	Resolve(token string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func (s *authService) Register(req models.RegisterRequest) (*models.User, error) {
	_, err := s.userRepo.GetByUsername(req.Username)
	if err == nil {
		return nil, models.ErrorConflict{Message: "user with this username already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(req.Password, s.cfg.PasswordScheme)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hashed,
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(username, password string) (*models.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user doesn't exist"}
		}
		return nil, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, models.ErrorUnauthorized{Message: "incorrect username or password"}
	}

	token := user.Username
	if s.cfg.AuthMode == config.AuthModeJWT {
		token, err = s.generateToken(user)
		if err != nil {
			return nil, err
		}
	}

	return &models.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *authService) Resolve(token string) (*models.User, error) {
	if s.cfg.AuthMode == config.AuthModeJWT {
		return s.resolveJWT(token)
	}

	// Legacy scheme: the token is the username itself. Zero integrity, kept
	// for compatibility with existing clients.
	user, err := s.userRepo.GetByUsername(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) resolveJWT(tokenString string) (*models.User, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrorUnauthorized{Message: "invalid token"}
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.JWTSecret)
}
