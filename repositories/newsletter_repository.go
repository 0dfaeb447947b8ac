package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(newsletter *models.Newsletter) error
	GetByID(id uint) (*models.Newsletter, error)
	GetByAuthor(authorID uint, limit int) ([]models.Newsletter, error)
	GetRecentByPublisher(publisherID uint, limit int) ([]models.Newsletter, error)
	GetRecent(limit int) ([]models.Newsletter, error)
	GetFeed(publisherIDs, journalistIDs []uint, limit int) ([]models.Newsletter, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(newsletter *models.Newsletter) error {
	return r.db.Create(newsletter).Error
}

func (r *newsletterRepository) GetByID(id uint) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.Preload("Author").
		Preload("Publisher").
		First(&newsletter, id).Error
	return &newsletter, err
}

func (r *newsletterRepository) GetByAuthor(authorID uint, limit int) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.Preload("Publisher").
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Limit(limit).
		Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) GetRecentByPublisher(publisherID uint, limit int) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.Preload("Author").
		Where("publisher_id = ?", publisherID).
		Order("created_at desc").
		Limit(limit).
		Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) GetRecent(limit int) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.Preload("Author").
		Preload("Publisher").
		Order("created_at desc").
		Limit(limit).
		Find(&newsletters).Error
	return newsletters, err
}

// GetFeed returns the union of newsletters published by any of the given
// publishers or authored by any of the given journalists, newest first.
func (r *newsletterRepository) GetFeed(publisherIDs, journalistIDs []uint, limit int) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter

	query := r.db.Preload("Author").Preload("Publisher")
	switch {
	case len(publisherIDs) > 0 && len(journalistIDs) > 0:
		query = query.Where("publisher_id IN ? OR author_id IN ?", publisherIDs, journalistIDs)
	case len(publisherIDs) > 0:
		query = query.Where("publisher_id IN ?", publisherIDs)
	case len(journalistIDs) > 0:
		query = query.Where("author_id IN ?", journalistIDs)
	default:
		return []models.Newsletter{}, nil
	}

	err := query.Order("created_at desc").Limit(limit).Find(&newsletters).Error
	return newsletters, err
}
