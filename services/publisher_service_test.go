package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsroom/models"
)

func TestCreatePublisherRequiresStaff(t *testing.T) {
	env := newTestEnv(t)

	staff := createTestUser(t, env.db, "staff", models.RoleStaff)
	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	reader := createTestUser(t, env.db, "reader", models.RoleReader)

	publisher, err := env.publishers.CreatePublisher(models.PublisherRequest{
		Name:    "Daily Bugle",
		OwnerID: &owner.ID,
	}, staff.ID)
	assert.NoError(t, err)
	assert.Equal(t, owner.ID, publisher.OwnerID)

	_, err = env.publishers.CreatePublisher(models.PublisherRequest{
		Name:    "Second House",
		OwnerID: &owner.ID,
	}, owner.ID)
	assert.Equal(t, models.ErrRoleMismatch, models.KindOf(err))

	// Owner must carry the publisher role.
	_, err = env.publishers.CreatePublisher(models.PublisherRequest{
		Name:    "Reader House",
		OwnerID: &reader.ID,
	}, staff.ID)
	assert.Equal(t, models.ErrRoleMismatch, models.KindOf(err))

	// Names are unique.
	_, err = env.publishers.CreatePublisher(models.PublisherRequest{
		Name:    "Daily Bugle",
		OwnerID: &owner.ID,
	}, staff.ID)
	assert.Equal(t, models.ErrConflict, models.KindOf(err))
}

func TestUpdatePublisherKeepsOwner(t *testing.T) {
	env := newTestEnv(t)

	staff := createTestUser(t, env.db, "staff", models.RoleStaff)
	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	updated, err := env.publishers.UpdatePublisher(publisher.ID, models.PublisherRequest{
		Name:        "Daily Bugle Renamed",
		Description: "Updated",
	}, staff.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Daily Bugle Renamed", updated.Name)
	assert.Equal(t, owner.ID, updated.OwnerID)

	_, err = env.publishers.UpdatePublisher(publisher.ID, models.PublisherRequest{Name: "x"}, owner.ID)
	assert.Equal(t, models.ErrRoleMismatch, models.KindOf(err))
}

func TestAddTeamMember(t *testing.T) {
	env := newTestEnv(t)

	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	editor := createTestUser(t, env.db, "editor", models.RoleEditor)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	user, added, err := env.publishers.AddTeamMember(publisher.ID, models.AddTeamMemberRequest{
		Username: "editor",
		Role:     models.RoleEditor,
	}, owner.ID)
	assert.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, editor.ID, user.ID)

	// Adding the same member again is a no-op.
	_, added, err = env.publishers.AddTeamMember(publisher.ID, models.AddTeamMemberRequest{
		Username: "editor",
		Role:     models.RoleEditor,
	}, owner.ID)
	assert.NoError(t, err)
	assert.False(t, added)

	_, added, err = env.publishers.AddTeamMember(publisher.ID, models.AddTeamMemberRequest{
		Username: "journo",
		Role:     models.RoleJournalist,
	}, owner.ID)
	assert.NoError(t, err)
	assert.True(t, added)

	loaded, err := env.publishers.GetPublisher(publisher.ID)
	assert.NoError(t, err)
	assert.True(t, loaded.HasEditor(editor.ID))
	assert.True(t, loaded.HasJournalist(journalist.ID))
}

func TestAddTeamMemberRoleMustMatch(t *testing.T) {
	env := newTestEnv(t)

	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	createTestUser(t, env.db, "journo", models.RoleJournalist)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	// A journalist cannot be seated as an editor.
	_, _, err := env.publishers.AddTeamMember(publisher.ID, models.AddTeamMemberRequest{
		Username: "journo",
		Role:     models.RoleEditor,
	}, owner.ID)
	assert.Equal(t, models.ErrRoleMismatch, models.KindOf(err))
}

func TestAddTeamMemberOwnerOnly(t *testing.T) {
	env := newTestEnv(t)

	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	rival := createTestUser(t, env.db, "rival", models.RolePublisher)
	createTestUser(t, env.db, "editor", models.RoleEditor)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	_, _, err := env.publishers.AddTeamMember(publisher.ID, models.AddTeamMemberRequest{
		Username: "editor",
		Role:     models.RoleEditor,
	}, rival.ID)
	assert.Equal(t, models.ErrNotOwner, models.KindOf(err))
}

func TestGetDashboard(t *testing.T) {
	env := newTestEnv(t)

	owner := createTestUser(t, env.db, "owner", models.RolePublisher)
	rival := createTestUser(t, env.db, "rival", models.RolePublisher)
	reader := createTestUser(t, env.db, "reader", models.RoleReader)
	journalist := createTestUser(t, env.db, "journo", models.RoleJournalist)
	publisher := createTestPublisher(t, env.db, "Daily Bugle", owner)

	createTestArticle(t, env.db, journalist, publisher, models.StatusPublished)
	createTestArticle(t, env.db, journalist, publisher, models.StatusPending)
	createTestNewsletter(t, env.db, journalist, publisher, "Weekly")

	_, _, err := env.subscriptions.Subscribe(models.SubscribeRequest{PublisherID: &publisher.ID}, reader.ID)
	assert.NoError(t, err)

	dashboard, err := env.publishers.GetDashboard(publisher.ID, owner.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), dashboard.ArticleCount)
	assert.Equal(t, int64(1), dashboard.SubscriberCount)
	assert.Len(t, dashboard.Articles, 2)
	assert.Len(t, dashboard.Newsletters, 1)

	_, err = env.publishers.GetDashboard(publisher.ID, rival.ID)
	assert.Equal(t, models.ErrNotOwner, models.KindOf(err))
}
