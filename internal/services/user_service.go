package services

import (
	"context"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/repositories"
	"github.com/roomly-app/backend/pkg/logger"
)

// UserService answers user-centric questions that span the user and room
// aggregates: which room a user is in and who they share it with.
type UserService struct {
	users repositories.UserRepository
	rooms repositories.RoomRepository
	log   *logger.Logger
}

func NewUserService(users repositories.UserRepository, rooms repositories.RoomRepository, log *logger.Logger) *UserService {
	return &UserService{users: users, rooms: rooms, log: log}
}

// Register creates the user with an empty room pointer and notification
// set. A duplicate id surfaces as Conflict.
func (s *UserService) Register(ctx context.Context, userID string) error {
	return s.users.Register(ctx, userID)
}

// RoomName resolves the name of the user's room, or "NA" when the user has
// not joined one yet.
func (s *UserService) RoomName(ctx context.Context, userID string) (string, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.RoomID == "" {
		return "NA", nil
	}
	return s.rooms.Name(ctx, user.RoomID)
}

// Roommates lists the members of the user's room. Callers state explicitly
// whether the requesting user belongs in the result; there is no implicit
// default shared across endpoints.
func (s *UserService) Roommates(ctx context.Context, userID string, includeSelf bool) ([]string, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RoomID == "" {
		return nil, apperrors.NotFound("Room not found")
	}
	members, err := s.rooms.Members(ctx, user.RoomID)
	if err != nil {
		return nil, err
	}
	if includeSelf {
		return members, nil
	}
	roommates := make([]string, 0, len(members))
	for _, member := range members {
		if member != userID {
			roommates = append(roommates, member)
		}
	}
	return roommates, nil
}

// AreRoommates reports whether both users share a room. A user without a
// room has no roommates.
func (s *UserService) AreRoommates(ctx context.Context, userID, otherID string) (bool, error) {
	if userID == otherID {
		return true, nil
	}
	members, err := s.Roommates(ctx, userID, true)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	for _, member := range members {
		if member == otherID {
			return true, nil
		}
	}
	return false, nil
}

// HasRoommate reports whether the user shares their room with anyone.
func (s *UserService) HasRoommate(ctx context.Context, userID string) (bool, error) {
	members, err := s.Roommates(ctx, userID, true)
	if err != nil {
		return false, err
	}
	return len(members) > 1, nil
}

// IsValidUser reports whether the user id references an existing user.
func (s *UserService) IsValidUser(ctx context.Context, userID string) (bool, error) {
	return s.users.Exists(ctx, userID)
}
