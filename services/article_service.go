package services

import (
	"context"
	"log"
	"time"

	"newsroom/events"
	"newsroom/models"
	"newsroom/repositories"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, actorID uint) (*models.Article, error)
	GetArticle(id uint, actorID uint) (*models.Article, error)
	GetPublicArticle(id uint) (*models.Article, error)
	GetArticles(params models.ArticleListParams, actorID uint) ([]models.Article, int64, error)
	GetPublicArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest, actorID uint) (*models.Article, error)
	Submit(id uint, actorID uint) (*models.Article, error)
	Approve(id uint, actorID uint) (*models.Article, error)
	Reject(id uint, actorID uint) (*models.Article, error)
}

type articleService struct {
	articleRepo   repositories.ArticleRepository
	publisherRepo repositories.PublisherRepository
	categoryRepo  repositories.CategoryRepository
	userRepo      repositories.UserRepository
	access        *AccessControl
	events        events.Publisher
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	publisherRepo repositories.PublisherRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	access *AccessControl,
	eventPublisher events.Publisher,
) ArticleService {
	return &articleService{
		articleRepo:   articleRepo,
		publisherRepo: publisherRepo,
		categoryRepo:  categoryRepo,
		userRepo:      userRepo,
		access:        access,
		events:        eventPublisher,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, actorID uint) (*models.Article, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.access.Authorize(actor, ActionCreateArticle, Target{}).Err(); err != nil {
		return nil, err
	}

	if req.PublisherID != nil {
		if _, err := s.publisherRepo.GetByID(*req.PublisherID); err != nil {
			return nil, notFound(err, "publisher not found")
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			return nil, notFound(err, "category not found")
		}
	}

	article := &models.Article{
		AuthorID:    actor.ID,
		PublisherID: req.PublisherID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Status:      models.StatusDraft,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint, actorID uint) (*models.Article, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "article not found")
	}

	if err := s.access.Authorize(actor, ActionViewArticle, Target{Article: article}).Err(); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) GetPublicArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "article not found")
	}
	if article.Status != models.StatusPublished {
		return nil, models.NewDomainError(models.ErrNotFound, "article not found")
	}
	return article, nil
}

// GetArticles lists what the acting role may see: readers get published
// content only, journalists their own, editors their publishers' plus the
// pending queue, staff and publishers everything.
func (s *articleService) GetArticles(params models.ArticleListParams, actorID uint) ([]models.Article, int64, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, 0, err
	}

	var scope repositories.ArticleScope
	switch {
	case actor.IsReader():
		scope.PublishedOnly = true
	case actor.IsJournalist():
		scope.AuthorID = actor.ID
	case actor.IsEditor():
		ids, err := s.publisherRepo.GetIDsByEditor(actor.ID)
		if err != nil {
			return nil, 0, err
		}
		scope.EditorScope = true
		scope.EditorPublisherIDs = ids
	}

	return s.articleRepo.GetList(params, scope)
}

func (s *articleService) GetPublicArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params, repositories.ArticleScope{PublishedOnly: true})
}

func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest, actorID uint) (*models.Article, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "article not found")
	}

	if article.Status.Terminal() {
		return nil, models.NewDomainError(models.ErrInvalidTransition, "article is no longer editable")
	}

	if err := s.access.Authorize(actor, ActionEditArticle, Target{Article: article}).Err(); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			return nil, notFound(err, "category not found")
		}
	}

	// Content-only mutation; status is owned by the workflow transitions.
	article.Title = req.Title
	article.Summary = req.Summary
	article.Content = req.Content
	article.CategoryID = req.CategoryID

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

// Submit moves draft -> pending. Only the author may submit; authorship
// is the single path into review so accountability stays singular.
func (s *articleService) Submit(id uint, actorID uint) (*models.Article, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "article not found")
	}

	if article.AuthorID != actor.ID {
		return nil, models.NewDomainError(models.ErrNotOwner, "only the author may submit an article")
	}
	if article.Status != models.StatusDraft {
		return nil, models.NewDomainError(models.ErrInvalidTransition, "only draft articles can be submitted")
	}

	ok, err := s.articleRepo.MarkPending(article.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewDomainError(models.ErrInvalidTransition, "article is no longer a draft")
	}

	return s.articleRepo.GetByID(article.ID)
}

// Approve moves pending -> published. Approval is publisher-scoped: the
// actor must sit in the article's publisher's editor set, and an
// unaffiliated article cannot be approved at all.
func (s *articleService) Approve(id uint, actorID uint) (*models.Article, error) {
	return s.decide(id, actorID, ActionApproveArticle)
}

// Reject moves pending -> rejected under the same guard as Approve.
func (s *articleService) Reject(id uint, actorID uint) (*models.Article, error) {
	return s.decide(id, actorID, ActionRejectArticle)
}

func (s *articleService) decide(id uint, actorID uint, action Action) (*models.Article, error) {
	actor, err := loadActor(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "article not found")
	}

	if err := s.access.Authorize(actor, action, Target{Article: article}).Err(); err != nil {
		return nil, err
	}

	if article.Status.Terminal() {
		return nil, models.NewDomainError(models.ErrAlreadyDecided, "article has already been decided")
	}
	if article.Status != models.StatusPending {
		return nil, models.NewDomainError(models.ErrInvalidTransition, "only pending articles can be decided")
	}

	now := time.Now()
	var ok bool
	if action == ActionApproveArticle {
		ok, err = s.articleRepo.MarkPublished(article.ID, actor.ID, now)
	} else {
		ok, err = s.articleRepo.MarkRejected(article.ID, actor.ID, now)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		// Another editor's decision landed between the load and the update.
		return nil, models.NewDomainError(models.ErrAlreadyDecided, "article has already been decided")
	}

	article, err = s.articleRepo.GetByID(article.ID)
	if err != nil {
		return nil, err
	}

	if article.Status == models.StatusPublished {
		if err := s.events.ArticlePublished(context.Background(), article); err != nil {
			log.Printf("publish article event failed: %v", err)
		}
	}

	return article, nil
}
