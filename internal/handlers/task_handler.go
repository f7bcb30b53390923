package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/services"
	"github.com/roomly-app/backend/pkg/logger"
)

// TaskHandler handles HTTP requests for the task lifecycle.
type TaskHandler struct {
	taskService *services.TaskService
	log         *logger.Logger
}

func NewTaskHandler(taskService *services.TaskService, log *logger.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, log: log}
}

// RegisterTaskRoutes registers the task routes
func (h *TaskHandler) RegisterTaskRoutes(g *echo.Group) {
	g.POST("/create-task", h.CreateTask)
	g.PATCH("/edit-task", h.EditTask)
	g.PATCH("/mark-completed", h.MarkCompleted)
	g.DELETE("/delete-task", h.DeleteTask)
}

// CreateTask creates a task in the requesting user's room, assigned to a
// roommate.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req models.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.taskService.Create(c.Request().Context(), req); err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("create task failed", "from", req.From, "error", err)
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task created successfully"})
}

// EditTask overwrites a task's fields and resets it to pending.
func (h *TaskHandler) EditTask(c echo.Context) error {
	var req models.EditTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.taskService.Edit(c.Request().Context(), req); err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("edit task failed", "task_id", req.ID, "error", err)
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task updated successfully"})
}

// MarkCompleted completes a task currently listed as pending in the
// requesting user's room.
func (h *TaskHandler) MarkCompleted(c echo.Context) error {
	var req models.TaskActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.taskService.MarkCompleted(c.Request().Context(), req.From, req.ID); err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("mark completed failed", "task_id", req.ID, "error", err)
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task marked as completed"})
}

// DeleteTask removes a task listed as completed in the requesting user's
// room.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	var req models.TaskActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.taskService.Delete(c.Request().Context(), req.From, req.ID); err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("delete task failed", "task_id", req.ID, "error", err)
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}
