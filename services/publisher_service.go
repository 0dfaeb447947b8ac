package services

import (
	"errors"

	"newsroom/models"
	"newsroom/repositories"

	"gorm.io/gorm"
)

const (
	dashboardArticleLimit    = 10
	dashboardNewsletterLimit = 5
)

type PublisherService interface {
	CreatePublisher(req models.PublisherRequest, actorID uint) (*models.Publisher, error)
	UpdatePublisher(id uint, req models.PublisherRequest, actorID uint) (*models.Publisher, error)
	GetPublisher(id uint) (*models.Publisher, error)
	GetPublishers() ([]models.Publisher, error)
	// AddTeamMember is idempotent: the bool is false when the user was
	// already on the team and nothing changed.
	AddTeamMember(publisherID uint, req models.AddTeamMemberRequest, actorID uint) (*models.User, bool, error)
	GetDashboard(publisherID uint, actorID uint) (*models.PublisherDashboard, error)
}

type publisherService struct {
	publisherRepo    repositories.PublisherRepository
	articleRepo      repositories.ArticleRepository
	newsletterRepo   repositories.NewsletterRepository
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
	access           *AccessControl
}

func NewPublisherService(
	publisherRepo repositories.PublisherRepository,
	articleRepo repositories.ArticleRepository,
	newsletterRepo repositories.NewsletterRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	access *AccessControl,
) PublisherService {
	return &publisherService{
		publisherRepo:    publisherRepo,
		articleRepo:      articleRepo,
		newsletterRepo:   newsletterRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		access:           access,
	}
}

func (s *publisherService) CreatePublisher(req models.PublisherRequest, actorID uint) (*models.Publisher, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(actor, ActionManagePublisher, Target{}).Err(); err != nil {
		return nil, err
	}

	if req.OwnerID == nil {
		return nil, models.NewDomainError(models.ErrValidation, "publisher owner is required")
	}
	owner, err := s.userRepo.GetByID(*req.OwnerID)
	if err != nil {
		return nil, notFound(err, "owner not found")
	}
	if !owner.IsPublisher() {
		return nil, models.NewDomainError(models.ErrRoleMismatch, "publisher owner must have the publisher role")
	}

	if _, err := s.publisherRepo.GetByName(req.Name); err == nil {
		return nil, models.NewDomainError(models.ErrConflict, "a publisher with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	publisher := &models.Publisher{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		OwnerID:     owner.ID,
	}

	if err := s.publisherRepo.Create(publisher); err != nil {
		return nil, err
	}

	return s.publisherRepo.GetByID(publisher.ID)
}

func (s *publisherService) UpdatePublisher(id uint, req models.PublisherRequest, actorID uint) (*models.Publisher, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(actor, ActionManagePublisher, Target{}).Err(); err != nil {
		return nil, err
	}

	publisher, err := s.publisherRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "publisher not found")
	}

	// The owner is set once at creation and never reassigned here.
	publisher.Name = req.Name
	publisher.Description = req.Description
	publisher.Website = req.Website

	if err := s.publisherRepo.Update(publisher); err != nil {
		return nil, err
	}

	return s.publisherRepo.GetByID(publisher.ID)
}

func (s *publisherService) GetPublisher(id uint) (*models.Publisher, error) {
	publisher, err := s.publisherRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "publisher not found")
	}
	return publisher, nil
}

func (s *publisherService) GetPublishers() ([]models.Publisher, error) {
	return s.publisherRepo.GetAll()
}

func (s *publisherService) AddTeamMember(publisherID uint, req models.AddTeamMemberRequest, actorID uint) (*models.User, bool, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, false, err
	}

	publisher, err := s.publisherRepo.GetByID(publisherID)
	if err != nil {
		return nil, false, notFound(err, "publisher not found")
	}

	if err := s.access.Authorize(actor, ActionManageTeam, Target{Publisher: publisher}).Err(); err != nil {
		return nil, false, err
	}

	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, false, notFound(err, "user not found")
	}

	switch req.Role {
	case models.RoleEditor:
		if !user.IsEditor() {
			return nil, false, models.NewDomainError(models.ErrRoleMismatch,
				"user must register as an editor before joining an editor team")
		}
		if publisher.HasEditor(user.ID) {
			return user, false, nil
		}
		if err := s.publisherRepo.AddEditor(publisher, user); err != nil {
			return nil, false, err
		}
	case models.RoleJournalist:
		if !user.IsJournalist() {
			return nil, false, models.NewDomainError(models.ErrRoleMismatch,
				"user must register as a journalist before joining a journalist team")
		}
		if publisher.HasJournalist(user.ID) {
			return user, false, nil
		}
		if err := s.publisherRepo.AddJournalist(publisher, user); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, models.NewDomainError(models.ErrRoleMismatch, "team members are editors or journalists")
	}

	return user, true, nil
}

func (s *publisherService) GetDashboard(publisherID uint, actorID uint) (*models.PublisherDashboard, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	publisher, err := s.publisherRepo.GetByID(publisherID)
	if err != nil {
		return nil, notFound(err, "publisher not found")
	}

	if err := s.access.Authorize(actor, ActionManageTeam, Target{Publisher: publisher}).Err(); err != nil {
		return nil, err
	}

	articles, err := s.articleRepo.GetRecentByPublisher(publisher.ID, dashboardArticleLimit)
	if err != nil {
		return nil, err
	}
	newsletters, err := s.newsletterRepo.GetRecentByPublisher(publisher.ID, dashboardNewsletterLimit)
	if err != nil {
		return nil, err
	}
	articleCount, err := s.articleRepo.CountByPublisher(publisher.ID)
	if err != nil {
		return nil, err
	}
	subscriberCount, err := s.subscriptionRepo.CountByPublisher(publisher.ID)
	if err != nil {
		return nil, err
	}

	return &models.PublisherDashboard{
		Publisher:       *publisher,
		Articles:        articles,
		Newsletters:     newsletters,
		ArticleCount:    articleCount,
		SubscriberCount: subscriberCount,
	}, nil
}
