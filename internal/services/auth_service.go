package services

import (
	"errors"
	"strings"
	"time"

	"github.com/quietfield/habitloop/internal/models"
	"github.com/quietfield/habitloop/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNotFound      = errors.New("token not found")
)

type AuthUserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
}

type AuthTokenRepository interface {
	Create(token *models.Token) error
	FindUserID(token string) (uint, error)
}

type AuthService struct {
	users  AuthUserRepository
	tokens AuthTokenRepository
}

func NewAuthService(users AuthUserRepository, tokens AuthTokenRepository) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (service *AuthService) Register(username string, password string) (models.User, error) {
	username = strings.TrimSpace(username)

	taken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login verifies the credentials and issues a fresh permanent bearer token.
func (service *AuthService) Login(username string, password string) (models.Token, models.User, error) {
	user, err := service.users.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Token{}, models.User{}, ErrInvalidCredentials
		}
		return models.Token{}, models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}

	value, err := security.NewToken()
	if err != nil {
		return models.Token{}, models.User{}, err
	}

	token := models.Token{
		Token:     value,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := service.tokens.Create(&token); err != nil {
		return models.Token{}, models.User{}, err
	}
	return token, user, nil
}

// VerifyToken resolves a bearer token to the owning user id. There is no
// expiry check: issued tokens stay valid until removed out-of-band.
func (service *AuthService) VerifyToken(token string) (uint, error) {
	userID, err := service.tokens.FindUserID(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTokenNotFound
		}
		return 0, err
	}
	return userID, nil
}
