package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/repositories"
	"github.com/roomly-app/backend/pkg/logger"
)

// RoomService sequences the membership operations that touch both the room
// and user aggregates. The store offers no cross-item transactions, so each
// composite operation is an ordered pair of single-item writes; when the
// second write fails the first is NOT rolled back and the error propagates
// with the partial state left in place.
type RoomService struct {
	users repositories.UserRepository
	rooms repositories.RoomRepository
	newID func() string
	log   *logger.Logger
}

func NewRoomService(users repositories.UserRepository, rooms repositories.RoomRepository, log *logger.Logger) *RoomService {
	return &RoomService{
		users: users,
		rooms: rooms,
		newID: uuid.NewString,
		log:   log,
	}
}

// CreateRoom creates a room with userID as the founding (sole) member.
// Step order: Room.Create, then User.SetRoomID.
func (s *RoomService) CreateRoom(ctx context.Context, userID, name string) (string, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.RoomID != "" {
		return "", apperrors.Conflict("User already has a room")
	}

	roomID := s.newID()
	if err := s.rooms.Create(ctx, roomID, name, userID); err != nil {
		return "", err
	}
	if err := s.users.SetRoomID(ctx, userID, roomID); err != nil {
		s.log.Error("room created but user pointer not set", "room_id", roomID, "user_id", userID, "error", err)
		return "", err
	}
	return roomID, nil
}

// AddRoommate puts `to` into the room of `from`. Step order:
// Room.AddMember, then User.SetRoomID. Concurrent adds of the same user are
// commutative and idempotent at the member set.
func (s *RoomService) AddRoommate(ctx context.Context, from, to string) error {
	fromUser, err := s.users.Get(ctx, from)
	if err != nil {
		return err
	}
	if fromUser.RoomID == "" {
		return apperrors.NotFound("Room not found")
	}
	toUser, err := s.users.Get(ctx, to)
	if err != nil {
		return err
	}
	if toUser.RoomID != "" {
		return apperrors.Conflict("User already has a room")
	}

	if err := s.rooms.AddMember(ctx, fromUser.RoomID, to); err != nil {
		return err
	}
	if err := s.users.SetRoomID(ctx, to, fromUser.RoomID); err != nil {
		s.log.Error("member added but user pointer not set", "room_id", fromUser.RoomID, "user_id", to, "error", err)
		return err
	}
	return nil
}

// LeaveRoom removes the user from their room. When the user is the last
// member the room itself is deleted first (a room never persists with an
// empty member set); otherwise the member is removed from the set. Either
// way the user's room pointer is cleared last. Returns whether the room was
// deleted.
func (s *RoomService) LeaveRoom(ctx context.Context, userID string) (bool, error) {
	roomID, members, err := s.roomMembership(ctx, userID)
	if err != nil {
		return false, err
	}

	if len(members) == 1 {
		if err := s.rooms.Delete(ctx, roomID); err != nil {
			return false, err
		}
		if err := s.users.ClearRoomID(ctx, userID); err != nil {
			s.log.Error("room deleted but user pointer not cleared", "room_id", roomID, "user_id", userID, "error", err)
			return false, err
		}
		return true, nil
	}

	if err := s.rooms.RemoveMember(ctx, roomID, userID); err != nil {
		return false, err
	}
	if err := s.users.ClearRoomID(ctx, userID); err != nil {
		s.log.Error("member removed but user pointer not cleared", "room_id", roomID, "user_id", userID, "error", err)
		return false, err
	}
	return false, nil
}

// LastMember reports whether the user is the only member of their room,
// which is what the leave warning hinges on.
func (s *RoomService) LastMember(ctx context.Context, userID string) (bool, error) {
	_, members, err := s.roomMembership(ctx, userID)
	if err != nil {
		return false, err
	}
	return len(members) == 1, nil
}

func (s *RoomService) roomMembership(ctx context.Context, userID string) (string, []string, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if user.RoomID == "" {
		return "", nil, apperrors.NotFound("Room not found")
	}
	members, err := s.rooms.Members(ctx, user.RoomID)
	if err != nil {
		return "", nil, err
	}
	return user.RoomID, members, nil
}
