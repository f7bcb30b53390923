package models

// User is the user aggregate. A user belongs to at most one room; RoomID is
// absent until the first join. NotificationIDs is an unordered set of ids
// owned by this user.
type User struct {
	ID              string   `bson:"_id" json:"user_id"`
	RoomID          string   `bson:"room_id,omitempty" json:"room_id,omitempty"`
	NotificationIDs []string `bson:"notification_ids,omitempty" json:"notification_ids,omitempty"`
}

type AddUserRequest struct {
	ID string `json:"id" validate:"required"`
}
