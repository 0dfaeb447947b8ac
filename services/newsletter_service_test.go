package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsroom/models"
)

func TestCreateNewsletterRequiresJournalist(t *testing.T) {
	env := newTestEnv(t)

	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	reader := createTestUser(t, env.db, "reader", models.RoleReader)

	newsletter, err := env.newsletters.CreateNewsletter(models.CreateNewsletterRequest{
		Title:   "Weekly Digest",
		Content: "This week in brief.",
	}, journalist.ID)
	assert.NoError(t, err)
	assert.Equal(t, journalist.ID, newsletter.AuthorID)
	assert.Equal(t, []uint{newsletter.ID}, env.events.createdNewsletters)

	_, err = env.newsletters.CreateNewsletter(models.CreateNewsletterRequest{
		Title:   "Nope",
		Content: "x",
	}, reader.ID)
	assert.Equal(t, models.ErrRoleMismatch, models.KindOf(err))
}

func TestCreateNewsletterUnderPublisher(t *testing.T) {
	env := newTestEnv(t)

	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	newsletter, err := env.newsletters.CreateNewsletter(models.CreateNewsletterRequest{
		Title:       "House Letter",
		Content:     "x",
		PublisherID: &publisher.ID,
	}, journalist.ID)
	assert.NoError(t, err)
	assert.NotNil(t, newsletter.PublisherID)
	assert.Equal(t, publisher.ID, *newsletter.PublisherID)

	missing := uint(9999)
	_, err = env.newsletters.CreateNewsletter(models.CreateNewsletterRequest{
		Title:       "Dangling",
		Content:     "x",
		PublisherID: &missing,
	}, journalist.ID)
	assert.Equal(t, models.ErrNotFound, models.KindOf(err))
}

func TestGetOwnNewsletters(t *testing.T) {
	env := newTestEnv(t)

	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	other := createTestUser(t, env.db, "other", models.RoleJournalist)
	createTestNewsletter(t, env.db, journalist, nil, "Mine")
	createTestNewsletter(t, env.db, other, nil, "Theirs")

	own, err := env.newsletters.GetOwnNewsletters(journalist.ID)
	assert.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Equal(t, "Mine", own[0].Title)
}

func TestGetRecentNewsletters(t *testing.T) {
	env := newTestEnv(t)

	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	createTestNewsletter(t, env.db, journalist, nil, "One")
	createTestNewsletter(t, env.db, journalist, nil, "Two")

	recent, err := env.newsletters.GetRecentNewsletters()
	assert.NoError(t, err)
	assert.Len(t, recent, 2)
}
