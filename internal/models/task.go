package models

// Task is the task aggregate. The record does not know its room; the owning
// room's task list holds that edge. The asignee field name is kept from the
// historical data layout for wire compatibility.
type Task struct {
	ID          string `bson:"_id" json:"task_id"`
	Description string `bson:"task_description" json:"task_description"`
	Assignee    string `bson:"asignee" json:"asignee"`
	DueDate     string `bson:"due_date" json:"due_date"`
	Complete    bool   `bson:"complete" json:"complete"`
}

type CreateTaskRequest struct {
	Name    string `json:"tn" validate:"required"`
	From    string `json:"frm" validate:"required"`
	To      string `json:"to" validate:"required"`
	DueDate string `json:"date" validate:"required"`
}

type EditTaskRequest struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"tn" validate:"required"`
	From    string `json:"frm" validate:"required"`
	To      string `json:"to" validate:"required"`
	DueDate string `json:"date" validate:"required"`
}

type TaskActionRequest struct {
	ID   string `json:"id" validate:"required"`
	From string `json:"frm" validate:"required"`
}
