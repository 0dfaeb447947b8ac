package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(subscription *models.Subscription) error
	GetByID(id uint) (*models.Subscription, error)
	GetByUser(userID uint) ([]models.Subscription, error)
	GetByUserAndPublisher(userID, publisherID uint) (*models.Subscription, error)
	GetByUserAndJournalist(userID, journalistID uint) (*models.Subscription, error)
	Delete(id uint) error
	CountByPublisher(publisherID uint) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create relies on the composite unique indexes: a concurrent duplicate
// surfaces as gorm.ErrDuplicatedKey, which the service treats as
// "already subscribed" rather than an error.
func (r *subscriptionRepository) Create(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

func (r *subscriptionRepository) GetByID(id uint) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Preload("Publisher").
		Preload("Journalist").
		First(&subscription, id).Error
	return &subscription, err
}

func (r *subscriptionRepository) GetByUser(userID uint) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Preload("Publisher").
		Preload("Journalist").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&subscriptions).Error
	return subscriptions, err
}

func (r *subscriptionRepository) GetByUserAndPublisher(userID, publisherID uint) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Where("user_id = ? AND publisher_id = ?", userID, publisherID).
		First(&subscription).Error
	return &subscription, err
}

func (r *subscriptionRepository) GetByUserAndJournalist(userID, journalistID uint) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Where("user_id = ? AND journalist_id = ?", userID, journalistID).
		First(&subscription).Error
	return &subscription, err
}

func (r *subscriptionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Subscription{}, id).Error
}

func (r *subscriptionRepository) CountByPublisher(publisherID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("publisher_id = ?", publisherID).
		Count(&count).Error
	return count, err
}
