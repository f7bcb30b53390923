package repositories

import (
	"context"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/store"
)

// UserRepository owns the user aggregate: the room membership pointer and
// the notification id set.
type UserRepository interface {
	Register(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*models.User, error)
	Exists(ctx context.Context, userID string) (bool, error)
	RoomID(ctx context.Context, userID string) (string, error)
	SetRoomID(ctx context.Context, userID, roomID string) error
	ClearRoomID(ctx context.Context, userID string) error
	AddNotification(ctx context.Context, userID, notifID string) error
	RemoveNotification(ctx context.Context, userID, notifID string) error
	NotificationIDs(ctx context.Context, userID string) ([]string, error)
}

type userRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) Register(ctx context.Context, userID string) error {
	err := r.store.Put(ctx, store.TableUsers, userID, models.User{ID: userID}, true)
	if apperrors.IsConflict(err) {
		return apperrors.Conflict("This username already exists")
	}
	return err
}

func (r *userRepository) Get(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := r.store.Get(ctx, store.TableUsers, userID, &user); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := r.Get(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RoomID returns the user's room id, or "" when the user has none yet.
func (r *userRepository) RoomID(ctx context.Context, userID string) (string, error) {
	user, err := r.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.RoomID, nil
}

func (r *userRepository) SetRoomID(ctx context.Context, userID, roomID string) error {
	return r.notFoundAsUser(r.store.Update(ctx, store.TableUsers, userID, store.Mutation{
		Set: map[string]interface{}{"room_id": roomID},
	}, true))
}

func (r *userRepository) ClearRoomID(ctx context.Context, userID string) error {
	return r.notFoundAsUser(r.store.Update(ctx, store.TableUsers, userID, store.Mutation{
		Unset: []string{"room_id"},
	}, true))
}

func (r *userRepository) AddNotification(ctx context.Context, userID, notifID string) error {
	return r.notFoundAsUser(r.store.Update(ctx, store.TableUsers, userID, store.Mutation{
		Add: map[string]string{"notification_ids": notifID},
	}, true))
}

// RemoveNotification drops notifID from the user's set. Removing an id that
// is not a member is a silent no-op.
func (r *userRepository) RemoveNotification(ctx context.Context, userID, notifID string) error {
	return r.notFoundAsUser(r.store.Update(ctx, store.TableUsers, userID, store.Mutation{
		Remove: map[string]string{"notification_ids": notifID},
	}, true))
}

func (r *userRepository) NotificationIDs(ctx context.Context, userID string) ([]string, error) {
	user, err := r.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.NotificationIDs, nil
}

func (r *userRepository) notFoundAsUser(err error) error {
	if apperrors.IsNotFound(err) {
		return apperrors.NotFound("User not found")
	}
	return err
}
