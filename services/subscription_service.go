package services

import (
	"errors"

	"newsroom/models"
	"newsroom/repositories"

	"gorm.io/gorm"
)

// DefaultFeedLimit caps the resolved newsletter feed.
const DefaultFeedLimit = 50

type SubscriptionService interface {
	// Subscribe is idempotent: the bool is false when an identical
	// subscription already existed and no row was created.
	Subscribe(req models.SubscribeRequest, actorID uint) (*models.Subscription, bool, error)
	Unsubscribe(id uint, actorID uint) error
	GetSubscriptions(actorID uint) ([]models.Subscription, error)
	ResolveVisibleNewsletters(actorID uint) ([]models.Newsletter, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	newsletterRepo   repositories.NewsletterRepository
	publisherRepo    repositories.PublisherRepository
	userRepo         repositories.UserRepository
	access           *AccessControl
	feedLimit        int
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	newsletterRepo repositories.NewsletterRepository,
	publisherRepo repositories.PublisherRepository,
	userRepo repositories.UserRepository,
	access *AccessControl,
	feedLimit int,
) SubscriptionService {
	if feedLimit <= 0 {
		feedLimit = DefaultFeedLimit
	}
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		newsletterRepo:   newsletterRepo,
		publisherRepo:    publisherRepo,
		userRepo:         userRepo,
		access:           access,
		feedLimit:        feedLimit,
	}
}

func (s *subscriptionService) Subscribe(req models.SubscribeRequest, actorID uint) (*models.Subscription, bool, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, false, err
	}

	if err := s.access.Authorize(actor, ActionSubscribe, Target{}).Err(); err != nil {
		return nil, false, err
	}

	hasPublisher := req.PublisherID != nil
	hasJournalist := req.JournalistID != nil
	if hasPublisher == hasJournalist {
		return nil, false, models.NewDomainError(models.ErrAmbiguousTarget,
			"a subscription targets exactly one of a publisher or a journalist")
	}

	if hasPublisher {
		if _, err := s.publisherRepo.GetByID(*req.PublisherID); err != nil {
			return nil, false, notFound(err, "publisher not found")
		}
		if existing, err := s.subscriptionRepo.GetByUserAndPublisher(actor.ID, *req.PublisherID); err == nil {
			return existing, false, nil
		}
	} else {
		journalist, err := s.userRepo.GetByID(*req.JournalistID)
		if err != nil {
			return nil, false, notFound(err, "journalist not found")
		}
		if !journalist.IsJournalist() {
			return nil, false, models.NewDomainError(models.ErrRoleMismatch,
				"subscriptions can only follow users with the journalist role")
		}
		if existing, err := s.subscriptionRepo.GetByUserAndJournalist(actor.ID, *req.JournalistID); err == nil {
			return existing, false, nil
		}
	}

	subscription := &models.Subscription{
		UserID:       actor.ID,
		PublisherID:  req.PublisherID,
		JournalistID: req.JournalistID,
	}

	if err := s.subscriptionRepo.Create(subscription); err != nil {
		// A concurrent identical subscribe won the race; report the
		// surviving row as "already subscribed" rather than an error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.lookupExisting(actor.ID, req)
		}
		return nil, false, err
	}

	return subscription, true, nil
}

func (s *subscriptionService) lookupExisting(userID uint, req models.SubscribeRequest) (*models.Subscription, bool, error) {
	if req.PublisherID != nil {
		existing, err := s.subscriptionRepo.GetByUserAndPublisher(userID, *req.PublisherID)
		return existing, false, err
	}
	existing, err := s.subscriptionRepo.GetByUserAndJournalist(userID, *req.JournalistID)
	return existing, false, err
}

func (s *subscriptionService) Unsubscribe(id uint, actorID uint) error {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return err
	}

	subscription, err := s.subscriptionRepo.GetByID(id)
	if err != nil {
		return notFound(err, "subscription not found")
	}

	if err := s.access.Authorize(actor, ActionUnsubscribe, Target{Subscription: subscription}).Err(); err != nil {
		return err
	}

	return s.subscriptionRepo.Delete(subscription.ID)
}

func (s *subscriptionService) GetSubscriptions(actorID uint) ([]models.Subscription, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	return s.subscriptionRepo.GetByUser(actor.ID)
}

// ResolveVisibleNewsletters computes the reader's feed: the union of
// newsletters from subscribed publishers and subscribed journalists,
// newest first, capped at the configured page size. Each newsletter
// appears once even when both subscription kinds cover it.
func (s *subscriptionService) ResolveVisibleNewsletters(actorID uint) ([]models.Newsletter, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	subscriptions, err := s.subscriptionRepo.GetByUser(actor.ID)
	if err != nil {
		return nil, err
	}

	var publisherIDs, journalistIDs []uint
	for i := range subscriptions {
		if subscriptions[i].PublisherID != nil {
			publisherIDs = append(publisherIDs, *subscriptions[i].PublisherID)
		}
		if subscriptions[i].JournalistID != nil {
			journalistIDs = append(journalistIDs, *subscriptions[i].JournalistID)
		}
	}

	return s.newsletterRepo.GetFeed(publisherIDs, journalistIDs, s.feedLimit)
}
