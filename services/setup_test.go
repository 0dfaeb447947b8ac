package services

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"newsroom/models"
	"newsroom/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatal("failed to connect database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Publisher{},
		&models.Article{},
		&models.Newsletter{},
		&models.Subscription{},
		&models.PasswordResetToken{},
	)
	if err != nil {
		t.Fatal("failed to migrate:", err)
	}

	return db
}

type eventRecorder struct {
	publishedArticles  []uint
	createdNewsletters []uint
}

func (r *eventRecorder) ArticlePublished(_ context.Context, article *models.Article) error {
	r.publishedArticles = append(r.publishedArticles, article.ID)
	return nil
}

func (r *eventRecorder) NewsletterCreated(_ context.Context, newsletter *models.Newsletter) error {
	r.createdNewsletters = append(r.createdNewsletters, newsletter.ID)
	return nil
}

func (r *eventRecorder) Close() error { return nil }

type mailRecorder struct {
	to     []string
	tokens []string
}

func (r *mailRecorder) SendPasswordResetEmail(to, token string) error {
	r.to = append(r.to, to)
	r.tokens = append(r.tokens, token)
	return nil
}

type testEnv struct {
	db *gorm.DB

	userRepo         repositories.UserRepository
	categoryRepo     repositories.CategoryRepository
	publisherRepo    repositories.PublisherRepository
	articleRepo      repositories.ArticleRepository
	newsletterRepo   repositories.NewsletterRepository
	subscriptionRepo repositories.SubscriptionRepository
	resetRepo        repositories.PasswordResetRepository

	events *eventRecorder
	mail   *mailRecorder

	auth          AuthService
	articles      ArticleService
	newsletters   NewsletterService
	subscriptions SubscriptionService
	publishers    PublisherService
	categories    CategoryService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	env := &testEnv{
		db:               db,
		userRepo:         repositories.NewUserRepository(db),
		categoryRepo:     repositories.NewCategoryRepository(db),
		publisherRepo:    repositories.NewPublisherRepository(db),
		articleRepo:      repositories.NewArticleRepository(db),
		newsletterRepo:   repositories.NewNewsletterRepository(db),
		subscriptionRepo: repositories.NewSubscriptionRepository(db),
		resetRepo:        repositories.NewPasswordResetRepository(db),
		events:           &eventRecorder{},
		mail:             &mailRecorder{},
	}

	access := NewAccessControl()
	env.auth = NewAuthService(env.userRepo, env.publisherRepo, env.resetRepo, env.mail)
	env.articles = NewArticleService(env.articleRepo, env.publisherRepo, env.categoryRepo, env.userRepo, access, env.events)
	env.newsletters = NewNewsletterService(env.newsletterRepo, env.publisherRepo, env.userRepo, access, env.events)
	env.subscriptions = NewSubscriptionService(env.subscriptionRepo, env.newsletterRepo, env.publisherRepo, env.userRepo, access, 0)
	env.publishers = NewPublisherService(env.publisherRepo, env.articleRepo, env.newsletterRepo, env.subscriptionRepo, env.userRepo, access)
	env.categories = NewCategoryService(env.categoryRepo, env.userRepo, access)

	return env
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashedpassword",
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatal("failed to create user:", err)
	}
	return user
}

func createTestPublisher(t *testing.T, db *gorm.DB, name string, owner *models.User) *models.Publisher {
	publisher := &models.Publisher{
		Name:    name,
		OwnerID: owner.ID,
	}
	if err := db.Create(publisher).Error; err != nil {
		t.Fatal("failed to create publisher:", err)
	}
	return publisher
}

func addEditor(t *testing.T, db *gorm.DB, publisher *models.Publisher, user *models.User) {
	if err := db.Model(publisher).Association("Editors").Append(user); err != nil {
		t.Fatal("failed to add editor:", err)
	}
}

func addJournalist(t *testing.T, db *gorm.DB, publisher *models.Publisher, user *models.User) {
	if err := db.Model(publisher).Association("Journalists").Append(user); err != nil {
		t.Fatal("failed to add journalist:", err)
	}
}

func createTestArticle(t *testing.T, db *gorm.DB, author *models.User, publisher *models.Publisher, status models.ArticleStatus) *models.Article {
	article := &models.Article{
		AuthorID: author.ID,
		Title:    "Test Article",
		Content:  "# Heading\n\nBody text.",
		Status:   status,
	}
	if publisher != nil {
		article.PublisherID = &publisher.ID
	}
	if err := db.Create(article).Error; err != nil {
		t.Fatal("failed to create article:", err)
	}
	return article
}

func createTestNewsletter(t *testing.T, db *gorm.DB, author *models.User, publisher *models.Publisher, title string) *models.Newsletter {
	newsletter := &models.Newsletter{
		AuthorID: author.ID,
		Title:    title,
		Content:  "Newsletter body.",
	}
	if publisher != nil {
		newsletter.PublisherID = &publisher.ID
	}
	if err := db.Create(newsletter).Error; err != nil {
		t.Fatal("failed to create newsletter:", err)
	}
	return newsletter
}
