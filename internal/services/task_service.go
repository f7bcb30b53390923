package services

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/repositories"
	"github.com/roomly-app/backend/pkg/logger"
)

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// TaskService sequences the task lifecycle across the task and room
// aggregates. A task is visible only through its room's task list, so
// create appends to the room and delete removes from the room before the
// task record itself goes away.
type TaskService struct {
	users    repositories.UserRepository
	rooms    repositories.RoomRepository
	tasks    repositories.TaskRepository
	userSvc  *UserService
	newID    func() string
	now      func() time.Time
	log      *logger.Logger
}

func NewTaskService(users repositories.UserRepository, rooms repositories.RoomRepository, tasks repositories.TaskRepository, userSvc *UserService, log *logger.Logger) *TaskService {
	return &TaskService{
		users:   users,
		rooms:   rooms,
		tasks:   tasks,
		userSvc: userSvc,
		newID:   uuid.NewString,
		now:     time.Now,
		log:     log,
	}
}

// Create validates the intent against user/room state, then runs the
// ordered pair Task.Create -> Room.AppendTask. If the append fails the task
// record is left orphaned (invisible to room listings) and the error
// propagates; there is no rollback.
func (s *TaskService) Create(ctx context.Context, req models.CreateTaskRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	from := normalizeID(req.From)
	to := normalizeID(req.To)
	dueDate := strings.TrimSpace(req.DueDate)

	if err := s.checkTaskInput(ctx, name, from, to, dueDate); err != nil {
		return "", err
	}
	roomID, err := s.users.RoomID(ctx, from)
	if err != nil {
		return "", err
	}

	taskID := s.newID()
	if err := s.tasks.Create(ctx, taskID, name, to, dueDate); err != nil {
		return "", err
	}
	if err := s.rooms.AppendTask(ctx, roomID, taskID); err != nil {
		s.log.Error("task created but not appended to room", "task_id", taskID, "room_id", roomID, "error", err)
		return "", err
	}
	return taskID, nil
}

// Edit overwrites the task's mutable fields after a single existence check
// and resets it to pending.
func (s *TaskService) Edit(ctx context.Context, req models.EditTaskRequest) error {
	taskID := normalizeID(req.ID)
	name := strings.TrimSpace(req.Name)
	from := normalizeID(req.From)
	to := normalizeID(req.To)
	dueDate := strings.TrimSpace(req.DueDate)

	if err := s.checkTaskInput(ctx, name, from, to, dueDate); err != nil {
		return err
	}
	if _, err := s.tasks.ByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.Update(ctx, taskID, name, to, dueDate)
}

// Delete removes a task that appears in the room's completed list. Step
// order: Room.RemoveTask, then Task.Delete. If the second step fails the
// record is orphaned but already invisible to the room.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	userID = normalizeID(userID)
	taskID = normalizeID(taskID)

	valid, err := s.userSvc.IsValidUser(ctx, userID)
	if err != nil {
		return err
	}
	if !valid {
		return apperrors.Forbidden("Invalid user")
	}

	roomID, err := s.users.RoomID(ctx, userID)
	if err != nil {
		return err
	}
	completed, err := s.listByComplete(ctx, roomID, true)
	if err != nil {
		return err
	}
	if !containsTask(completed, taskID) {
		return apperrors.NotFound("Task not found")
	}

	if err := s.rooms.RemoveTask(ctx, roomID, taskID); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		s.log.Error("task unlinked from room but record not deleted", "task_id", taskID, "room_id", roomID, "error", err)
		return err
	}
	return nil
}

// MarkCompleted flips a task from the room's pending list to completed. The
// transition is one-way and idempotent at the record level, but is only
// reachable for tasks currently listed as pending.
func (s *TaskService) MarkCompleted(ctx context.Context, userID, taskID string) error {
	userID = normalizeID(userID)
	taskID = normalizeID(taskID)

	valid, err := s.userSvc.IsValidUser(ctx, userID)
	if err != nil {
		return err
	}
	if !valid {
		return apperrors.Forbidden("Invalid user")
	}

	roomID, err := s.users.RoomID(ctx, userID)
	if err != nil {
		return err
	}
	pending, err := s.listByComplete(ctx, roomID, false)
	if err != nil {
		return err
	}
	if !containsTask(pending, taskID) {
		return apperrors.NotFound("Task not found")
	}
	return s.tasks.MarkCompleted(ctx, taskID)
}

// Pending lists the incomplete tasks of the user's room, ascending by due
// date.
func (s *TaskService) Pending(ctx context.Context, userID string) ([]models.Task, error) {
	return s.listForUser(ctx, normalizeID(userID), false)
}

// Completed lists the completed tasks of the user's room, ascending by due
// date.
func (s *TaskService) Completed(ctx context.Context, userID string) ([]models.Task, error) {
	return s.listForUser(ctx, normalizeID(userID), true)
}

func (s *TaskService) listForUser(ctx context.Context, userID string, complete bool) ([]models.Task, error) {
	valid, err := s.userSvc.IsValidUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, apperrors.Forbidden("Invalid user")
	}
	roomID, err := s.users.RoomID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.listByComplete(ctx, roomID, complete)
}

// listByComplete resolves the room's task list and fetches every task
// record individually. Ids whose record is missing (the documented
// create/delete partial-failure window) are skipped rather than failing the
// whole listing. ISO yyyy-MM-dd dates sort chronologically as plain
// strings.
func (s *TaskService) listByComplete(ctx context.Context, roomID string, complete bool) ([]models.Task, error) {
	taskIDs, err := s.rooms.TaskIDs(ctx, roomID)
	if err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(taskIDs))
	for _, taskID := range taskIDs {
		task, err := s.tasks.ByID(ctx, taskID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if task.Complete == complete {
			tasks = append(tasks, *task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].DueDate < tasks[j].DueDate
	})
	return tasks, nil
}

func (s *TaskService) checkTaskInput(ctx context.Context, name, from, to, dueDate string) error {
	fromValid, err := s.userSvc.IsValidUser(ctx, from)
	if err != nil {
		return err
	}
	toValid, err := s.userSvc.IsValidUser(ctx, to)
	if err != nil {
		return err
	}
	if !fromValid || !toValid {
		return apperrors.Forbidden("Invalid users involved")
	}

	roommates, err := s.userSvc.AreRoommates(ctx, from, to)
	if err != nil {
		return err
	}
	if !roommates {
		return apperrors.Forbidden("Users are not roommates")
	}

	if name == "" || !s.isValidDueDate(dueDate) {
		return apperrors.Forbidden("Invalid task name or due date")
	}
	return nil
}

// isValidDueDate accepts yyyy-MM-dd dates that are today or later.
func (s *TaskService) isValidDueDate(dueDate string) bool {
	if !dueDatePattern.MatchString(dueDate) {
		return false
	}
	parsed, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return false
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !parsed.Before(today)
}

func containsTask(tasks []models.Task, taskID string) bool {
	for _, task := range tasks {
		if task.ID == taskID {
			return true
		}
	}
	return false
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
