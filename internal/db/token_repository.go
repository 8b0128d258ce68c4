package db

import (
	"github.com/quietfield/habitloop/internal/models"
	"gorm.io/gorm"
)

type TokenRepository struct {
	database *gorm.DB
}

func NewTokenRepository(database *gorm.DB) *TokenRepository {
	return &TokenRepository{database: database}
}

func (repo *TokenRepository) Create(token *models.Token) error {
	return repo.database.Create(token).Error
}

// FindUserID resolves a bearer token to its owning user. Unknown tokens
// surface gorm.ErrRecordNotFound.
func (repo *TokenRepository) FindUserID(token string) (uint, error) {
	var row models.Token
	if err := repo.database.Where("token = ?", token).First(&row).Error; err != nil {
		return 0, err
	}
	return row.UserID, nil
}
