package services

import (
	"errors"

	"newsroom/models"
	"newsroom/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CreateCategoryRequest, actorID uint) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	userRepo     repositories.UserRepository
	access       *AccessControl
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	access *AccessControl,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		access:       access,
	}
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest, actorID uint) (*models.Category, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(actor, ActionManagePublisher, Target{}).Err(); err != nil {
		return nil, err
	}

	_, err = s.categoryRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.NewDomainError(models.ErrConflict, "category already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "category not found")
	}
	return category, nil
}
