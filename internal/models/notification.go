package models

// Notification is owned by exactly one user through that user's
// notification id set. Read flips to true the first time the owner lists
// their notifications.
type Notification struct {
	ID      string `bson:"_id" json:"notification_id"`
	From    string `bson:"from" json:"from"`
	Message string `bson:"msg" json:"msg"`
	Type    string `bson:"type" json:"type"`
	Read    bool   `bson:"read" json:"read"`
}

// RenderedNotification is the projection used for list display.
type RenderedNotification struct {
	ID      string `bson:"_id" json:"notification_id"`
	From    string `bson:"from" json:"from"`
	Message string `bson:"msg" json:"msg"`
	Type    string `bson:"type" json:"type"`
}

type JoinRequestNotification struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
	Type string `json:"type" validate:"required"`
}

type AnnouncementRequest struct {
	From    string `json:"from" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required"`
}
