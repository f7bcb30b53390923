package models

// Room is the room aggregate. Users has set semantics and is non-empty for
// as long as the room exists; Tasks is an ordered, append-only list of task
// ids and is the single source of truth for task ownership.
type Room struct {
	ID    string   `bson:"_id" json:"room_id"`
	Name  string   `bson:"name" json:"name"`
	Users []string `bson:"users" json:"users"`
	Tasks []string `bson:"tasks" json:"tasks"`
}

type CreateRoomRequest struct {
	From string `json:"frm" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type AddRoommateRequest struct {
	From string `json:"frm" validate:"required"`
	To   string `json:"to" validate:"required"`
}
