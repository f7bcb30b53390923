package repositories

import (
	"context"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/store"
)

// TaskRepository owns the task aggregate. Task records never reference
// their room; ownership lives on the room side.
type TaskRepository interface {
	Create(ctx context.Context, taskID, description, assignee, dueDate string) error
	ByID(ctx context.Context, taskID string) (*models.Task, error)
	Update(ctx context.Context, taskID, description, assignee, dueDate string) error
	MarkCompleted(ctx context.Context, taskID string) error
	Delete(ctx context.Context, taskID string) error
}

type taskRepository struct {
	store store.Store
}

func NewTaskRepository(s store.Store) TaskRepository {
	return &taskRepository{store: s}
}

func (r *taskRepository) Create(ctx context.Context, taskID, description, assignee, dueDate string) error {
	task := models.Task{
		ID:          taskID,
		Description: description,
		Assignee:    assignee,
		DueDate:     dueDate,
		Complete:    false,
	}
	err := r.store.Put(ctx, store.TableTasks, taskID, task, true)
	if apperrors.IsConflict(err) {
		return apperrors.Conflict("Task already exists")
	}
	return err
}

func (r *taskRepository) ByID(ctx context.Context, taskID string) (*models.Task, error) {
	var task models.Task
	if err := r.store.Get(ctx, store.TableTasks, taskID, &task); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound("Task not found")
		}
		return nil, err
	}
	return &task, nil
}

// Update overwrites the mutable fields and resets complete to false: an
// edited task always goes back to pending.
func (r *taskRepository) Update(ctx context.Context, taskID, description, assignee, dueDate string) error {
	return r.notFoundAsTask(r.store.Update(ctx, store.TableTasks, taskID, store.Mutation{
		Set: map[string]interface{}{
			"task_description": description,
			"asignee":          assignee,
			"due_date":         dueDate,
			"complete":         false,
		},
	}, true))
}

// MarkCompleted flips complete to true. The transition is one-way; there is
// no un-complete operation. Marking an already completed task is a no-op.
func (r *taskRepository) MarkCompleted(ctx context.Context, taskID string) error {
	return r.notFoundAsTask(r.store.Update(ctx, store.TableTasks, taskID, store.Mutation{
		Set: map[string]interface{}{"complete": true},
	}, true))
}

func (r *taskRepository) Delete(ctx context.Context, taskID string) error {
	return r.store.Delete(ctx, store.TableTasks, taskID)
}

func (r *taskRepository) notFoundAsTask(err error) error {
	if apperrors.IsNotFound(err) {
		return apperrors.NotFound("Task not found")
	}
	return err
}
