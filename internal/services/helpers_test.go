package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roomly-app/backend/internal/repositories"
	"github.com/roomly-app/backend/internal/store"
	"github.com/roomly-app/backend/pkg/logger"
)

// testEnv wires every service over a fresh in-memory store with
// deterministic ids and a frozen clock.
type testEnv struct {
	ctx           context.Context
	store         store.Store
	users         repositories.UserRepository
	rooms         repositories.RoomRepository
	tasks         repositories.TaskRepository
	notifications repositories.NotificationRepository
	userSvc       *UserService
	roomSvc       *RoomService
	taskSvc       *TaskService
	notifSvc      *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewMemoryStore()
	log := logger.NewNop()

	users := repositories.NewUserRepository(st)
	rooms := repositories.NewRoomRepository(st)
	tasks := repositories.NewTaskRepository(st)
	notifications := repositories.NewNotificationRepository(st)

	userSvc := NewUserService(users, rooms, log)
	roomSvc := NewRoomService(users, rooms, log)
	taskSvc := NewTaskService(users, rooms, tasks, userSvc, log)
	notifSvc := NewNotificationService(users, notifications, userSvc, log)

	roomSvc.newID = sequentialIDs("room")
	taskSvc.newID = sequentialIDs("task")
	taskSvc.now = func() time.Time {
		return time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	}
	notifSvc.newID = sequentialIDs("notif")

	return &testEnv{
		ctx:           context.Background(),
		store:         st,
		users:         users,
		rooms:         rooms,
		tasks:         tasks,
		notifications: notifications,
		userSvc:       userSvc,
		roomSvc:       roomSvc,
		taskSvc:       taskSvc,
		notifSvc:      notifSvc,
	}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// registerUsers creates the given users.
func (env *testEnv) registerUsers(t *testing.T, userIDs ...string) {
	t.Helper()
	for _, userID := range userIDs {
		require.NoError(t, env.userSvc.Register(env.ctx, userID))
	}
}

// setupRoommates registers alice and bob sharing one room and returns its id.
func (env *testEnv) setupRoommates(t *testing.T) string {
	t.Helper()
	env.registerUsers(t, "alice", "bob")
	roomID, err := env.roomSvc.CreateRoom(env.ctx, "alice", "The Loft")
	require.NoError(t, err)
	require.NoError(t, env.roomSvc.AddRoommate(env.ctx, "alice", "bob"))
	return roomID
}
