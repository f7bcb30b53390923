package repositories

import (
	"context"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/store"
)

// NotificationRepository owns notification records. The owning user's id
// set is the user aggregate's business; composing the two writes is left to
// the orchestrating service.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	Get(ctx context.Context, notifID string) (*models.Notification, error)
	Rendered(ctx context.Context, notifID string) (*models.RenderedNotification, error)
	MarkRead(ctx context.Context, notifID string) error
	Delete(ctx context.Context, notifID string) error
}

type notificationRepository struct {
	store store.Store
}

func NewNotificationRepository(s store.Store) NotificationRepository {
	return &notificationRepository{store: s}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	err := r.store.Put(ctx, store.TableNotifications, notification.ID, notification, true)
	if apperrors.IsConflict(err) {
		return apperrors.Conflict("Notification already exists")
	}
	return err
}

func (r *notificationRepository) Get(ctx context.Context, notifID string) (*models.Notification, error) {
	var notification models.Notification
	if err := r.store.Get(ctx, store.TableNotifications, notifID, &notification); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound("Notification not found")
		}
		return nil, err
	}
	return &notification, nil
}

// Rendered returns the {from, msg, type} projection used for list display.
func (r *notificationRepository) Rendered(ctx context.Context, notifID string) (*models.RenderedNotification, error) {
	notification, err := r.Get(ctx, notifID)
	if err != nil {
		return nil, err
	}
	return &models.RenderedNotification{
		ID:      notification.ID,
		From:    notification.From,
		Message: notification.Message,
		Type:    notification.Type,
	}, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, notifID string) error {
	err := r.store.Update(ctx, store.TableNotifications, notifID, store.Mutation{
		Set: map[string]interface{}{"read": true},
	}, true)
	if apperrors.IsNotFound(err) {
		return apperrors.NotFound("Notification not found")
	}
	return err
}

func (r *notificationRepository) Delete(ctx context.Context, notifID string) error {
	return r.store.Delete(ctx, store.TableNotifications, notifID)
}
