package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/services"
	"github.com/roomly-app/backend/pkg/logger"
)

// RoomHandler handles HTTP requests on the room surface: creation,
// membership and the room's task listings.
type RoomHandler struct {
	roomService *services.RoomService
	taskService *services.TaskService
	log         *logger.Logger
}

func NewRoomHandler(roomService *services.RoomService, taskService *services.TaskService, log *logger.Logger) *RoomHandler {
	return &RoomHandler{roomService: roomService, taskService: taskService, log: log}
}

// RegisterRoomRoutes registers the room routes
func (h *RoomHandler) RegisterRoomRoutes(g *echo.Group) {
	g.POST("/create-room", h.CreateRoom)
	g.POST("/add-roommate", h.AddRoommate)
	g.GET("/get-pending-tasks", h.GetPendingTasks)
	g.GET("/get-completed-tasks", h.GetCompletedTasks)
}

// CreateRoom creates a new room with the requesting user as its founding
// member.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req models.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	roomID, err := h.roomService.CreateRoom(c.Request().Context(), sanitizeID(req.From), req.Name)
	if err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("create room failed", "user_id", req.From, "error", err)
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Successfully Created the new room",
		"room_id": roomID,
	})
}

// AddRoommate adds the `to` user to the room of the `frm` user.
func (h *RoomHandler) AddRoommate(c echo.Context) error {
	var req models.AddRoommateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.roomService.AddRoommate(c.Request().Context(), sanitizeID(req.From), sanitizeID(req.To))
	if err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("add roommate failed", "from", req.From, "to", req.To, "error", err)
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "New roommate added successfully"})
}

// GetPendingTasks lists the incomplete tasks of the requesting user's
// room, ascending by due date.
func (h *RoomHandler) GetPendingTasks(c echo.Context) error {
	from := sanitizeID(c.QueryParam("frm"))
	if from == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}

	tasks, err := h.taskService.Pending(c.Request().Context(), from)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"pending_tasks": tasks})
}

// GetCompletedTasks lists the completed tasks of the requesting user's
// room, ascending by due date.
func (h *RoomHandler) GetCompletedTasks(c echo.Context) error {
	from := sanitizeID(c.QueryParam("frm"))
	if from == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}

	tasks, err := h.taskService.Completed(c.Request().Context(), from)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"completed_tasks": tasks})
}
