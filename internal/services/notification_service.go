package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/repositories"
	"github.com/roomly-app/backend/pkg/logger"
)

// NotificationService sequences notification lifecycle operations across
// the notification and user aggregates.
type NotificationService struct {
	users         repositories.UserRepository
	notifications repositories.NotificationRepository
	userSvc       *UserService
	newID         func() string
	log           *logger.Logger
}

func NewNotificationService(users repositories.UserRepository, notifications repositories.NotificationRepository, userSvc *UserService, log *logger.Logger) *NotificationService {
	return &NotificationService{
		users:         users,
		notifications: notifications,
		userSvc:       userSvc,
		newID:         uuid.NewString,
		log:           log,
	}
}

// ListAndMarkRead returns the user's notifications in display form and, as
// a documented side effect, transitions each one unread->read before it is
// fetched. This is a read-with-side-effect operation, not a pure query.
// Dangling ids left by an interrupted delete are skipped.
func (s *NotificationService) ListAndMarkRead(ctx context.Context, userID string) ([]models.RenderedNotification, error) {
	notifIDs, err := s.users.NotificationIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	rendered := make([]models.RenderedNotification, 0, len(notifIDs))
	for _, notifID := range notifIDs {
		if err := s.notifications.MarkRead(ctx, notifID); err != nil {
			if apperrors.IsNotFound(err) {
				s.log.Warn("dangling notification id in user set", "user_id", userID, "notification_id", notifID)
				continue
			}
			return nil, err
		}
		item, err := s.notifications.Rendered(ctx, notifID)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, *item)
	}
	return rendered, nil
}

// Unread returns the user's not-yet-read notifications without mutating
// anything.
func (s *NotificationService) Unread(ctx context.Context, userID string) ([]models.RenderedNotification, error) {
	notifIDs, err := s.users.NotificationIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	rendered := make([]models.RenderedNotification, 0, len(notifIDs))
	for _, notifID := range notifIDs {
		notification, err := s.notifications.Get(ctx, notifID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if notification.Read {
			continue
		}
		rendered = append(rendered, models.RenderedNotification{
			ID:      notification.ID,
			From:    notification.From,
			Message: notification.Message,
			Type:    notification.Type,
		})
	}
	return rendered, nil
}

// Delete removes a notification the user owns. Step order:
// Notification.Delete, then User.RemoveNotification; an id not in the
// user's set is NotFound and notifications owned by other users are never
// touched.
func (s *NotificationService) Delete(ctx context.Context, userID, notifID string) error {
	notifIDs, err := s.users.NotificationIDs(ctx, userID)
	if err != nil {
		return err
	}
	if !containsID(notifIDs, notifID) {
		return apperrors.NotFound("Notification not found")
	}

	if err := s.notifications.Delete(ctx, notifID); err != nil {
		return err
	}
	if err := s.users.RemoveNotification(ctx, userID, notifID); err != nil {
		s.log.Error("notification deleted but id not removed from user set", "user_id", userID, "notification_id", notifID, "error", err)
		return err
	}
	return nil
}

// SendJoinRequest creates a join-request notification for `to`. Step
// order: Notification.Create, then User.AddNotification on the recipient.
func (s *NotificationService) SendJoinRequest(ctx context.Context, from, to, notifType string) (string, error) {
	for _, userID := range []string{from, to} {
		valid, err := s.userSvc.IsValidUser(ctx, userID)
		if err != nil {
			return "", err
		}
		if !valid {
			return "", apperrors.NotFound("User not found")
		}
	}

	notifID := s.newID()
	notification := &models.Notification{
		ID:      notifID,
		From:    from,
		Message: fmt.Sprintf("%s requests to join your room", from),
		Type:    notifType,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return "", err
	}
	if err := s.users.AddNotification(ctx, to, notifID); err != nil {
		s.log.Error("notification created but not linked to user", "user_id", to, "notification_id", notifID, "error", err)
		return "", err
	}
	return notifID, nil
}

// SendAnnouncement fans the message out as one notification per roommate
// of the sender. Returns true when the sender has no roommates, in which
// case nothing is sent.
func (s *NotificationService) SendAnnouncement(ctx context.Context, from, message string) (bool, error) {
	valid, err := s.userSvc.IsValidUser(ctx, from)
	if err != nil {
		return false, err
	}
	if !valid {
		return false, apperrors.NotFound("Error Sending Announcement - User not found")
	}

	roommates, err := s.userSvc.Roommates(ctx, from, false)
	if err != nil {
		return false, err
	}
	if len(roommates) == 0 {
		return true, nil
	}

	for _, roommate := range roommates {
		notifID := s.newID()
		notification := &models.Notification{
			ID:      notifID,
			From:    from,
			Message: message,
			Type:    "announcement",
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			return false, err
		}
		if err := s.users.AddNotification(ctx, roommate, notifID); err != nil {
			s.log.Error("announcement created but not linked to user", "user_id", roommate, "notification_id", notifID, "error", err)
			return false, err
		}
	}
	return false, nil
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
