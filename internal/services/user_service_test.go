package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomly-app/backend/internal/apperrors"
)

func TestRegisterDuplicateUser(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice")

	err := env.userSvc.Register(env.ctx, "alice")
	assert.True(t, apperrors.IsConflict(err))
}

func TestRoomNameWithoutRoom(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice")

	name, err := env.userSvc.RoomName(env.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "NA", name)
}

func TestRoomNameResolvesRoom(t *testing.T) {
	env := newTestEnv(t)
	env.setupRoommates(t)

	name, err := env.userSvc.RoomName(env.ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "The Loft", name)
}

func TestRoommatesIncludeSelf(t *testing.T) {
	env := newTestEnv(t)
	env.setupRoommates(t)

	members, err := env.userSvc.Roommates(env.ctx, "alice", true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, members)

	others, err := env.userSvc.Roommates(env.ctx, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, others)
}

func TestRoommatesWithoutRoom(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice")

	_, err := env.userSvc.Roommates(env.ctx, "alice", true)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Room not found", apperrors.MessageOf(err))
}

func TestAreRoommates(t *testing.T) {
	env := newTestEnv(t)
	env.setupRoommates(t)
	env.registerUsers(t, "carol")

	roommates, err := env.userSvc.AreRoommates(env.ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, roommates)

	roommates, err = env.userSvc.AreRoommates(env.ctx, "alice", "carol")
	require.NoError(t, err)
	assert.False(t, roommates)

	// A user is always their own roommate.
	roommates, err = env.userSvc.AreRoommates(env.ctx, "carol", "carol")
	require.NoError(t, err)
	assert.True(t, roommates)

	// A user without a room has no roommates.
	roommates, err = env.userSvc.AreRoommates(env.ctx, "carol", "alice")
	require.NoError(t, err)
	assert.False(t, roommates)
}

func TestHasRoommate(t *testing.T) {
	env := newTestEnv(t)
	env.registerUsers(t, "alice")
	_, err := env.roomSvc.CreateRoom(env.ctx, "alice", "The Loft")
	require.NoError(t, err)

	alone, err := env.userSvc.HasRoommate(env.ctx, "alice")
	require.NoError(t, err)
	assert.False(t, alone)

	env.registerUsers(t, "bob")
	require.NoError(t, env.roomSvc.AddRoommate(env.ctx, "alice", "bob"))

	shared, err := env.userSvc.HasRoommate(env.ctx, "alice")
	require.NoError(t, err)
	assert.True(t, shared)
}
