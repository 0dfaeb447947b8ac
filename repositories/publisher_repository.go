package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(publisher *models.Publisher) error
	Update(publisher *models.Publisher) error
	GetByID(id uint) (*models.Publisher, error)
	GetByName(name string) (*models.Publisher, error)
	GetAll() ([]models.Publisher, error)
	GetByOwner(ownerID uint) (*models.Publisher, error)
	GetIDsByEditor(userID uint) ([]uint, error)
	AddEditor(publisher *models.Publisher, user *models.User) error
	AddJournalist(publisher *models.Publisher, user *models.User) error
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(publisher *models.Publisher) error {
	return r.db.Create(publisher).Error
}

func (r *publisherRepository) Update(publisher *models.Publisher) error {
	return r.db.Save(publisher).Error
}

func (r *publisherRepository) GetByID(id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Preload("Owner").
		Preload("Editors").
		Preload("Journalists").
		First(&publisher, id).Error
	return &publisher, err
}

func (r *publisherRepository) GetByName(name string) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Where("name = ?", name).First(&publisher).Error
	return &publisher, err
}

func (r *publisherRepository) GetAll() ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Preload("Owner").Order("name asc").Find(&publishers).Error
	return publishers, err
}

func (r *publisherRepository) GetByOwner(ownerID uint) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Preload("Editors").
		Preload("Journalists").
		Where("owner_id = ?", ownerID).
		First(&publisher).Error
	return &publisher, err
}

func (r *publisherRepository) GetIDsByEditor(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Publisher{}).
		Joins("JOIN publisher_editors ON publisher_editors.publisher_id = publishers.id").
		Where("publisher_editors.user_id = ?", userID).
		Pluck("publishers.id", &ids).Error
	return ids, err
}

func (r *publisherRepository) AddEditor(publisher *models.Publisher, user *models.User) error {
	return r.db.Model(publisher).Association("Editors").Append(user)
}

func (r *publisherRepository) AddJournalist(publisher *models.Publisher, user *models.User) error {
	return r.db.Model(publisher).Association("Journalists").Append(user)
}
