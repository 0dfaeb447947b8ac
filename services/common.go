package services

import (
	"errors"

	"newsroom/models"
	"newsroom/repositories"

	"gorm.io/gorm"
)

// notFound converts a gorm record-miss into the domain not_found kind so
// handlers never see persistence internals.
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewDomainError(models.ErrNotFound, message)
	}
	return err
}

// loadActor fetches the acting identity. Every operation receives the
// actor explicitly; there is no ambient current-user state.
func loadActor(repo repositories.UserRepository, id uint) (*models.User, error) {
	actor, err := repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "user not found")
	}
	return actor, nil
}
