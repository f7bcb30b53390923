package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomly-app/backend/internal/apperrors"
)

func TestSendJoinRequest(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice", "bob")

	notifID, err := env.notifSvc.SendJoinRequest(env.ctx, "alice", "bob", "join-request")
	require.NoError(t, err)

	unread, err := env.notifSvc.Unread(env.ctx, "bob")
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, notifID, unread[0].ID)
	assert.Equal(t, "alice", unread[0].From)
	assert.Equal(t, "alice requests to join your room", unread[0].Message)
	assert.Equal(t, "join-request", unread[0].Type)

	// The sender gets nothing.
	unread, err = env.notifSvc.Unread(env.ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestSendJoinRequestUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice")

	_, err := env.notifSvc.SendJoinRequest(env.ctx, "alice", "ghost", "join-request")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "User not found", apperrors.MessageOf(err))

	_, err = env.notifSvc.SendJoinRequest(env.ctx, "ghost", "alice", "join-request")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListAndMarkRead(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice", "bob")

	notifID, err := env.notifSvc.SendJoinRequest(env.ctx, "alice", "bob", "join-request")
	require.NoError(t, err)

	rendered, err := env.notifSvc.ListAndMarkRead(env.ctx, "bob")
	require.NoError(t, err)
	require.Len(t, rendered, 1)
	assert.Equal(t, "alice", rendered[0].From)
	assert.Equal(t, "join-request", rendered[0].Type)

	// The listing marked it read, so the unread view is now empty while the
	// full listing still returns it.
	unread, err := env.notifSvc.Unread(env.ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, unread)

	rendered, err = env.notifSvc.ListAndMarkRead(env.ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, rendered, 1)

	notification, err := env.notifications.Get(env.ctx, notifID)
	require.NoError(t, err)
	assert.True(t, notification.Read)
}

func TestListSkipsDanglingIDs(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice", "bob")

	notifID, err := env.notifSvc.SendJoinRequest(env.ctx, "alice", "bob", "join-request")
	require.NoError(t, err)

	// Simulate the delete partial-failure window: the record is gone but
	// its id is still in the user's set.
	require.NoError(t, env.notifications.Delete(env.ctx, notifID))

	rendered, err := env.notifSvc.ListAndMarkRead(env.ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, rendered)
}

// Scenario: deleting a notification that is not in the caller's set fails
// with NotFound and never touches another user's notification.
func TestDeleteNotificationOwnership(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice", "bob", "carol")

	notifID, err := env.notifSvc.SendJoinRequest(env.ctx, "alice", "bob", "join-request")
	require.NoError(t, err)

	err = env.notifSvc.Delete(env.ctx, "carol", notifID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Notification not found", apperrors.MessageOf(err))

	// Bob's notification survived the rejected delete.
	_, err = env.notifications.Get(env.ctx, notifID)
	require.NoError(t, err)

	require.NoError(t, env.notifSvc.Delete(env.ctx, "bob", notifID))

	_, err = env.notifications.Get(env.ctx, notifID)
	assert.True(t, apperrors.IsNotFound(err))

	ids, err := env.users.NotificationIDs(env.ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSendAnnouncementAlone(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice")
	_, err := env.roomSvc.CreateRoom(env.ctx, "alice", "The Loft")
	require.NoError(t, err)

	alone, err := env.notifSvc.SendAnnouncement(env.ctx, "alice", "dinner at 8")
	require.NoError(t, err)
	assert.True(t, alone)

	unread, err := env.notifSvc.Unread(env.ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestSendAnnouncementFansOut(t *testing.T) {
	env := newTestEnv(t)
	env.setupRoommates(t)
	env.registerUsers(t, "carol")
	require.NoError(t, env.roomSvc.AddRoommate(env.ctx, "alice", "carol"))

	alone, err := env.notifSvc.SendAnnouncement(env.ctx, "alice", "dinner at 8")
	require.NoError(t, err)
	assert.False(t, alone)

	for _, userID := range []string{"bob", "carol"} {
		unread, err := env.notifSvc.Unread(env.ctx, userID)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, "alice", unread[0].From)
		assert.Equal(t, "dinner at 8", unread[0].Message)
		assert.Equal(t, "announcement", unread[0].Type)
	}

	// The sender never receives their own announcement.
	unread, err := env.notifSvc.Unread(env.ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestSendAnnouncementUnknownSender(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notifSvc.SendAnnouncement(env.ctx, "ghost", "hi")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Error Sending Announcement - User not found", apperrors.MessageOf(err))
}
