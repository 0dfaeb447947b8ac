package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

type PasswordResetRepository interface {
	Create(token *models.PasswordResetToken) error
	GetByToken(token string) (*models.PasswordResetToken, error)
	Update(token *models.PasswordResetToken) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(token *models.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *passwordResetRepository) GetByToken(token string) (*models.PasswordResetToken, error) {
	var reset models.PasswordResetToken
	err := r.db.Preload("User").
		Where("token = ?", token).
		First(&reset).Error
	return &reset, err
}

func (r *passwordResetRepository) Update(token *models.PasswordResetToken) error {
	return r.db.Save(token).Error
}
