package repositories

import (
	"context"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/store"
)

// RoomRepository owns the room aggregate: the member set and the ordered
// task id list. Member and task mutations are guarded by room existence so
// a race against concurrent deletion surfaces as NotFound instead of
// silently re-creating the room. Deleting an empty room is the
// orchestrator's job, never this repository's.
type RoomRepository interface {
	Create(ctx context.Context, roomID, name, foundingUserID string) error
	Get(ctx context.Context, roomID string) (*models.Room, error)
	Name(ctx context.Context, roomID string) (string, error)
	Members(ctx context.Context, roomID string) ([]string, error)
	AddMember(ctx context.Context, roomID, userID string) error
	RemoveMember(ctx context.Context, roomID, userID string) error
	AppendTask(ctx context.Context, roomID, taskID string) error
	RemoveTask(ctx context.Context, roomID, taskID string) error
	TaskIDs(ctx context.Context, roomID string) ([]string, error)
	Delete(ctx context.Context, roomID string) error
}

type roomRepository struct {
	store store.Store
}

func NewRoomRepository(s store.Store) RoomRepository {
	return &roomRepository{store: s}
}

func (r *roomRepository) Create(ctx context.Context, roomID, name, foundingUserID string) error {
	room := models.Room{
		ID:    roomID,
		Name:  name,
		Users: []string{foundingUserID},
		Tasks: []string{},
	}
	err := r.store.Put(ctx, store.TableRooms, roomID, room, true)
	if apperrors.IsConflict(err) {
		return apperrors.Conflict("Room already exists")
	}
	return err
}

func (r *roomRepository) Get(ctx context.Context, roomID string) (*models.Room, error) {
	var room models.Room
	if err := r.store.Get(ctx, store.TableRooms, roomID, &room); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound("Room not found")
		}
		return nil, err
	}
	return &room, nil
}

// Name returns the room's name. A room record without a name violates the
// data model and is reported as an integrity failure, not a normal error.
func (r *roomRepository) Name(ctx context.Context, roomID string) (string, error) {
	room, err := r.Get(ctx, roomID)
	if err != nil {
		return "", err
	}
	if room.Name == "" {
		return "", apperrors.Integrity("Room doesn't have a name--Service Unavailable")
	}
	return room.Name, nil
}

// Members returns the room's member set. An existing room with no members
// violates the non-empty invariant and is an integrity failure.
func (r *roomRepository) Members(ctx context.Context, roomID string) ([]string, error) {
	room, err := r.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if len(room.Users) == 0 {
		return nil, apperrors.Integrity("Room doesn't have an user--Service Unavailable")
	}
	return room.Users, nil
}

func (r *roomRepository) AddMember(ctx context.Context, roomID, userID string) error {
	return r.notFoundAsRoom(r.store.Update(ctx, store.TableRooms, roomID, store.Mutation{
		Add: map[string]string{"users": userID},
	}, true))
}

func (r *roomRepository) RemoveMember(ctx context.Context, roomID, userID string) error {
	return r.notFoundAsRoom(r.store.Update(ctx, store.TableRooms, roomID, store.Mutation{
		Remove: map[string]string{"users": userID},
	}, true))
}

func (r *roomRepository) AppendTask(ctx context.Context, roomID, taskID string) error {
	return r.notFoundAsRoom(r.store.Update(ctx, store.TableRooms, roomID, store.Mutation{
		Push: map[string]string{"tasks": taskID},
	}, true))
}

// RemoveTask pulls taskID from the room's list. The guard only checks that
// the tasks attribute exists; removing an id that is not a member is a
// silent no-op of the underlying set-delta operator.
func (r *roomRepository) RemoveTask(ctx context.Context, roomID, taskID string) error {
	return r.notFoundAsRoom(r.store.Update(ctx, store.TableRooms, roomID, store.Mutation{
		Remove:  map[string]string{"tasks": taskID},
		Require: "tasks",
	}, false))
}

func (r *roomRepository) TaskIDs(ctx context.Context, roomID string) ([]string, error) {
	room, err := r.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return room.Tasks, nil
}

func (r *roomRepository) Delete(ctx context.Context, roomID string) error {
	return r.store.Delete(ctx, store.TableRooms, roomID)
}

func (r *roomRepository) notFoundAsRoom(err error) error {
	if apperrors.IsNotFound(err) {
		return apperrors.NotFound("Room not found")
	}
	return err
}
