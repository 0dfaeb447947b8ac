package repositories

import (
	"time"

	"newsroom/models"

	"gorm.io/gorm"
)

// ArticleScope narrows a listing to what the acting role may see.
// The zero value means no narrowing (staff view).
type ArticleScope struct {
	PublishedOnly bool
	// AuthorID restricts to the author's own articles when non-zero.
	AuthorID uint
	// EditorPublisherIDs widens the listing to articles of these
	// publishers plus anything pending review.
	EditorPublisherIDs []uint
	EditorScope        bool
}

type ArticleRepository interface {
	Create(article *models.Article) error
	Update(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams, scope ArticleScope) ([]models.Article, int64, error)
	GetRecentByPublisher(publisherID uint, limit int) ([]models.Article, error)
	CountByPublisher(publisherID uint) (int64, error)
	MarkPending(id uint) (bool, error)
	MarkPublished(id uint, editorID uint, at time.Time) (bool, error)
	MarkRejected(id uint, editorID uint, at time.Time) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Publisher").
		Preload("Publisher.Editors").
		Preload("Category").
		Preload("ApprovedBy").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams, scope ArticleScope) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).
		Preload("Author").
		Preload("Publisher").
		Preload("Category")

	if scope.PublishedOnly {
		query = query.Where("articles.status = ?", models.StatusPublished)
	}
	if scope.AuthorID > 0 {
		query = query.Where("articles.author_id = ?", scope.AuthorID)
	}
	if scope.EditorScope {
		if len(scope.EditorPublisherIDs) > 0 {
			query = query.Where("articles.publisher_id IN ? OR articles.status = ?",
				scope.EditorPublisherIDs, models.StatusPending)
		} else {
			query = query.Where("articles.status = ?", models.StatusPending)
		}
	}

	if params.Status != "" {
		query = query.Where("articles.status = ?", params.Status)
	}
	if params.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = articles.category_id").
			Where("categories.name = ?", params.Category)
	}
	if params.Publisher != "" {
		query = query.Joins("JOIN publishers ON publishers.id = articles.publisher_id").
			Where("publishers.name = ?", params.Publisher)
	}
	if params.Query != "" {
		like := "%" + params.Query + "%"
		query = query.Where("articles.title LIKE ? OR articles.content LIKE ?", like, like)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("articles.created_at desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetRecentByPublisher(publisherID uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Where("publisher_id = ?", publisherID).
		Order("created_at desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) CountByPublisher(publisherID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("publisher_id = ?", publisherID).
		Count(&count).Error
	return count, err
}

// MarkPending moves a draft to pending. The WHERE clause on the current
// status makes the transition atomic: a false return means another writer
// got there first or the article was not a draft.
func (r *articleRepository) MarkPending(id uint) (bool, error) {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND status = ?", id, models.StatusDraft).
		Update("status", models.StatusPending)
	return res.RowsAffected == 1, res.Error
}

// MarkPublished decides a pending article. The status re-check happens in
// the same UPDATE, so concurrent approvals resolve to exactly one winner.
func (r *articleRepository) MarkPublished(id uint, editorID uint, at time.Time) (bool, error) {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":         models.StatusPublished,
			"approved_by_id": editorID,
			"approved_at":    at,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *articleRepository) MarkRejected(id uint, editorID uint, at time.Time) (bool, error) {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":         models.StatusRejected,
			"approved_by_id": editorID,
			"approved_at":    at,
		})
	return res.RowsAffected == 1, res.Error
}
