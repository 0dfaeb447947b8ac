package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsroom/models"
)

func TestSubscribeToPublisher(t *testing.T) {
	env := newTestEnv(t)

	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	sub, created, err := env.subscriptions.Subscribe(models.SubscribeRequest{PublisherID: &publisher.ID}, reader.ID)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, reader.ID, sub.UserID)

	// A repeat subscribe returns the existing row instead of failing.
	again, created, err := env.subscriptions.Subscribe(models.SubscribeRequest{PublisherID: &publisher.ID}, reader.ID)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, sub.ID, again.ID)

	subs, err := env.subscriptions.GetSubscriptions(reader.ID)
	assert.NoError(t, err)
	assert.Len(t, subs, 1)
}

func TestSubscribeToJournalist(t *testing.T) {
	env := newTestEnv(t)

	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	editor := createTestUser(t, env.db, "editor", models.RoleEditor)

	_, created, err := env.subscriptions.Subscribe(models.SubscribeRequest{JournalistID: &journalist.ID}, reader.ID)
	assert.NoError(t, err)
	assert.True(t, created)

	// Only journalist accounts can be followed.
	_, _, err = env.subscriptions.Subscribe(models.SubscribeRequest{JournalistID: &editor.ID}, reader.ID)
	assert.Equal(t, models.ErrRoleMismatch, models.KindOf(err))
}

func TestSubscribeTargetIsExclusive(t *testing.T) {
	env := newTestEnv(t)

	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	_, _, err := env.subscriptions.Subscribe(models.SubscribeRequest{}, reader.ID)
	assert.Equal(t, models.ErrAmbiguousTarget, models.KindOf(err))

	_, _, err = env.subscriptions.Subscribe(models.SubscribeRequest{
		PublisherID:  &publisher.ID,
		JournalistID: &journalist.ID,
	}, reader.ID)
	assert.Equal(t, models.ErrAmbiguousTarget, models.KindOf(err))
}

func TestSubscribeRequiresReader(t *testing.T) {
	env := newTestEnv(t)

	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	_, _, err := env.subscriptions.Subscribe(models.SubscribeRequest{PublisherID: &publisher.ID}, journalist.ID)
	assert.Equal(t, models.ErrRoleMismatch, models.KindOf(err))
}

func TestUnsubscribeOwnership(t *testing.T) {
	env := newTestEnv(t)

	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	other := createTestUser(t, env.db, "other", models.RoleReader)
	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	sub, _, err := env.subscriptions.Subscribe(models.SubscribeRequest{PublisherID: &publisher.ID}, reader.ID)
	assert.NoError(t, err)

	err = env.subscriptions.Unsubscribe(sub.ID, other.ID)
	assert.Equal(t, models.ErrNotOwner, models.KindOf(err))

	err = env.subscriptions.Unsubscribe(sub.ID, reader.ID)
	assert.NoError(t, err)

	subs, err := env.subscriptions.GetSubscriptions(reader.ID)
	assert.NoError(t, err)
	assert.Empty(t, subs)
}

func TestResolveVisibleNewsletters(t *testing.T) {
	env := newTestEnv(t)

	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	outsider := createTestUser(t, env.db, "outsider", models.RoleJournalist)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	base := time.Now().Add(-time.Hour)
	fromPublisher := createTestNewsletter(t, env.db, journalist, publisher, "From Publisher")
	env.db.Model(fromPublisher).Update("created_at", base)
	fromJournalist := createTestNewsletter(t, env.db, journalist, nil, "From Journalist")
	env.db.Model(fromJournalist).Update("created_at", base.Add(10*time.Minute))
	unrelated := createTestNewsletter(t, env.db, outsider, nil, "Unrelated")
	env.db.Model(unrelated).Update("created_at", base.Add(20*time.Minute))

	_, _, err := env.subscriptions.Subscribe(models.SubscribeRequest{PublisherID: &publisher.ID}, reader.ID)
	assert.NoError(t, err)
	_, _, err = env.subscriptions.Subscribe(models.SubscribeRequest{JournalistID: &journalist.ID}, reader.ID)
	assert.NoError(t, err)

	feed, err := env.subscriptions.ResolveVisibleNewsletters(reader.ID)
	assert.NoError(t, err)
	assert.Len(t, feed, 2)

	// Newest first, and the publisher newsletter appears once even though
	// both subscriptions cover its author.
	assert.Equal(t, "From Journalist", feed[0].Title)
	assert.Equal(t, "From Publisher", feed[1].Title)
}

func TestFeedCap(t *testing.T) {
	env := newTestEnv(t)

	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		n := createTestNewsletter(t, env.db, journalist, nil, "Issue")
		env.db.Model(n).Update("created_at", base.Add(time.Duration(i)*time.Minute))
	}

	access := NewAccessControl()
	capped := NewSubscriptionService(env.subscriptionRepo, env.newsletterRepo, env.publisherRepo, env.userRepo, access, 3)

	_, _, err := capped.Subscribe(models.SubscribeRequest{JournalistID: &journalist.ID}, reader.ID)
	assert.NoError(t, err)

	feed, err := capped.ResolveVisibleNewsletters(reader.ID)
	assert.NoError(t, err)
	assert.Len(t, feed, 3)
}

func TestFeedEmptyWithoutSubscriptions(t *testing.T) {
	env := newTestEnv(t)

	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	createTestNewsletter(t, env.db, journalist, nil, "Issue")

	feed, err := env.subscriptions.ResolveVisibleNewsletters(reader.ID)
	assert.NoError(t, err)
	assert.Empty(t, feed)
}

func TestUnsubscribeRemovesFromFeed(t *testing.T) {
	env := newTestEnv(t)

	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	createTestNewsletter(t, env.db, journalist, nil, "Issue")

	sub, _, err := env.subscriptions.Subscribe(models.SubscribeRequest{JournalistID: &journalist.ID}, reader.ID)
	assert.NoError(t, err)

	feed, err := env.subscriptions.ResolveVisibleNewsletters(reader.ID)
	assert.NoError(t, err)
	assert.Len(t, feed, 1)

	assert.NoError(t, env.subscriptions.Unsubscribe(sub.ID, reader.ID))

	feed, err = env.subscriptions.ResolveVisibleNewsletters(reader.ID)
	assert.NoError(t, err)
	assert.Empty(t, feed)
}
