package services

import (
	"context"
	"log"

	"newsroom/events"
	"newsroom/models"
	"newsroom/repositories"
)

// Newsletters have no review workflow: creation is publication.
const (
	ownNewsletterLimit    = 50
	publicNewsletterLimit = 20
)

type NewsletterService interface {
	CreateNewsletter(req models.CreateNewsletterRequest, actorID uint) (*models.Newsletter, error)
	GetNewsletter(id uint) (*models.Newsletter, error)
	GetOwnNewsletters(actorID uint) ([]models.Newsletter, error)
	GetRecentNewsletters() ([]models.Newsletter, error)
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	publisherRepo  repositories.PublisherRepository
	userRepo       repositories.UserRepository
	access         *AccessControl
	events         events.Publisher
}

func NewNewsletterService(
	newsletterRepo repositories.NewsletterRepository,
	publisherRepo repositories.PublisherRepository,
	userRepo repositories.UserRepository,
	access *AccessControl,
	eventPublisher events.Publisher,
) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		publisherRepo:  publisherRepo,
		userRepo:       userRepo,
		access:         access,
		events:         eventPublisher,
	}
}

func (s *newsletterService) CreateNewsletter(req models.CreateNewsletterRequest, actorID uint) (*models.Newsletter, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(actor, ActionCreateNewsletter, Target{}).Err(); err != nil {
		return nil, err
	}

	if req.PublisherID != nil {
		if _, err := s.publisherRepo.GetByID(*req.PublisherID); err != nil {
			return nil, notFound(err, "publisher not found")
		}
	}

	newsletter := &models.Newsletter{
		AuthorID:    actor.ID,
		PublisherID: req.PublisherID,
		Title:       req.Title,
		Content:     req.Content,
	}

	if err := s.newsletterRepo.Create(newsletter); err != nil {
		return nil, err
	}

	newsletter, err = s.newsletterRepo.GetByID(newsletter.ID)
	if err != nil {
		return nil, err
	}

	if err := s.events.NewsletterCreated(context.Background(), newsletter); err != nil {
		log.Printf("publish newsletter event failed: %v", err)
	}

	return newsletter, nil
}

func (s *newsletterService) GetNewsletter(id uint) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "newsletter not found")
	}
	return newsletter, nil
}

func (s *newsletterService) GetOwnNewsletters(actorID uint) ([]models.Newsletter, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	return s.newsletterRepo.GetByAuthor(actor.ID, ownNewsletterLimit)
}

func (s *newsletterService) GetRecentNewsletters() ([]models.Newsletter, error) {
	return s.newsletterRepo.GetRecent(publicNewsletterLimit)
}
