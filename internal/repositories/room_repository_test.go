package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/store"
)

func TestRoomCreateAndGet(t *testing.T) {
	ctx := context.Background()
	rooms := NewRoomRepository(store.NewMemoryStore())

	require.NoError(t, rooms.Create(ctx, "room-1", "The Loft", "alice"))

	room, err := rooms.Get(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, "The Loft", room.Name)
	assert.Equal(t, []string{"alice"}, room.Users)
	assert.Empty(t, room.Tasks)

	err = rooms.Create(ctx, "room-1", "Other", "bob")
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Room already exists", apperrors.MessageOf(err))
}

func TestRoomNameIntegrity(t *testing.T) {
	ctx := context.Background()
	rooms := NewRoomRepository(store.NewMemoryStore())
	require.NoError(t, rooms.Create(ctx, "room-1", "", "alice"))

	_, err := rooms.Name(ctx, "room-1")
	assert.Equal(t, apperrors.KindIntegrity, apperrors.KindOf(err))
	assert.Equal(t, "Room doesn't have a name--Service Unavailable", apperrors.MessageOf(err))
}

func TestRoomMembersIntegrity(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	rooms := NewRoomRepository(st)

	// A room record with an empty member set should never exist; write one
	// directly to exercise the integrity check.
	require.NoError(t, st.Put(ctx, store.TableRooms, "room-1", models.Room{
		ID:    "room-1",
		Name:  "The Loft",
		Users: []string{},
		Tasks: []string{},
	}, true))

	_, err := rooms.Members(ctx, "room-1")
	assert.Equal(t, apperrors.KindIntegrity, apperrors.KindOf(err))
	assert.Equal(t, "Room doesn't have an user--Service Unavailable", apperrors.MessageOf(err))
}

func TestRoomMemberSet(t *testing.T) {
	ctx := context.Background()
	rooms := NewRoomRepository(store.NewMemoryStore())
	require.NoError(t, rooms.Create(ctx, "room-1", "The Loft", "alice"))

	require.NoError(t, rooms.AddMember(ctx, "room-1", "bob"))
	require.NoError(t, rooms.AddMember(ctx, "room-1", "bob"))

	members, err := rooms.Members(ctx, "room-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, members)

	require.NoError(t, rooms.RemoveMember(ctx, "room-1", "bob"))
	members, err = rooms.Members(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, members)

	// Guarded mutations on a missing room surface as NotFound.
	assert.True(t, apperrors.IsNotFound(rooms.AddMember(ctx, "ghost", "bob")))
	assert.True(t, apperrors.IsNotFound(rooms.RemoveMember(ctx, "ghost", "bob")))
}

func TestRoomTaskList(t *testing.T) {
	ctx := context.Background()
	rooms := NewRoomRepository(store.NewMemoryStore())
	require.NoError(t, rooms.Create(ctx, "room-1", "The Loft", "alice"))

	require.NoError(t, rooms.AppendTask(ctx, "room-1", "t1"))
	require.NoError(t, rooms.AppendTask(ctx, "room-1", "t2"))

	taskIDs, err := rooms.TaskIDs(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, taskIDs)

	require.NoError(t, rooms.RemoveTask(ctx, "room-1", "t1"))
	// Removing an id that is not listed is a silent no-op.
	require.NoError(t, rooms.RemoveTask(ctx, "room-1", "t1"))

	taskIDs, err = rooms.TaskIDs(ctx, "room-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, taskIDs)

	assert.True(t, apperrors.IsNotFound(rooms.RemoveTask(ctx, "ghost", "t1")))
}

func TestRoomDelete(t *testing.T) {
	ctx := context.Background()
	rooms := NewRoomRepository(store.NewMemoryStore())
	require.NoError(t, rooms.Create(ctx, "room-1", "The Loft", "alice"))

	require.NoError(t, rooms.Delete(ctx, "room-1"))

	_, err := rooms.Get(ctx, "room-1")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Room not found", apperrors.MessageOf(err))
}
