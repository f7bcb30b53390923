package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/roomly-app/backend/internal/apperrors"
	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/services"
	"github.com/roomly-app/backend/pkg/logger"
)

// UserHandler handles HTTP requests on the user surface: registration,
// room lookups and the notification views hanging off a user.
type UserHandler struct {
	userService         *services.UserService
	roomService         *services.RoomService
	notificationService *services.NotificationService
	log                 *logger.Logger
}

func NewUserHandler(userService *services.UserService, roomService *services.RoomService, notificationService *services.NotificationService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService:         userService,
		roomService:         roomService,
		notificationService: notificationService,
		log:                 log,
	}
}

// RegisterUserRoutes registers the user routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.POST("/add-user", h.AddUser)
	g.GET("/:id/get-room", h.GetRoom)
	g.GET("/:id/get-user-roommates", h.GetRoommates)
	g.GET("/:id/get-roommate", h.GetRoommateStatus)
	g.GET("/:id/leave-warning", h.LeaveWarning)
	g.GET("/:id/leave-room", h.LeaveRoom)
	g.GET("/:id/get-notification", h.GetNotifications)
	g.GET("/:id/get-unread-notification", h.GetUnreadNotifications)
	g.DELETE("/:id/notification/:notif_id", h.DeleteNotification)
}

// AddUser registers a new user. Registering an id that already exists is
// reported as a 200 with its own message, matching the historical contract
// of this endpoint.
func (h *UserHandler) AddUser(c echo.Context) error {
	var req models.AddUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID := sanitizeID(req.ID)
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error Creating User- User id is invalid"})
	}

	if err := h.userService.Register(c.Request().Context(), userID); err != nil {
		if apperrors.IsConflict(err) {
			return c.JSON(http.StatusOK, echo.Map{"message": "This username already exists"})
		}
		h.log.Error("add user failed", "user_id", userID, "error", err)
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User Successfully created"})
}

// GetRoom returns the name of the user's room, or "NA" when they have none.
func (h *UserHandler) GetRoom(c echo.Context) error {
	userID := sanitizeID(c.Param("id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"room_name": "This username is invalid"})
	}

	roomName, err := h.userService.RoomName(c.Request().Context(), userID)
	if err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("get room failed", "user_id", userID, "error", err)
		}
		return c.JSON(statusOf(err), echo.Map{"room_name": apperrors.MessageOf(err)})
	}
	return c.JSON(http.StatusOK, echo.Map{"room_name": roomName})
}

// GetRoommates lists the members of the user's room. The include_self query
// parameter decides whether the requesting user appears in the result;
// callers must pick, there is no hidden default behavior difference
// between endpoints.
func (h *UserHandler) GetRoommates(c echo.Context) error {
	userID := sanitizeID(c.Param("id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}
	includeSelf := c.QueryParam("include_self") != "false"

	roommates, err := h.userService.Roommates(c.Request().Context(), userID, includeSelf)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"roommates": roommates})
}

// GetRoommateStatus answers whether the user has any roommate at all.
func (h *UserHandler) GetRoommateStatus(c echo.Context) error {
	userID := sanitizeID(c.Param("id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}

	hasRoommate, err := h.userService.HasRoommate(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	if !hasRoommate {
		return c.JSON(http.StatusOK, echo.Map{"message": "You have no roommate"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "You have at least one roommate"})
}

// LeaveWarning previews what leaving the room would do.
func (h *UserHandler) LeaveWarning(c echo.Context) error {
	userID := sanitizeID(c.Param("id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}

	lastMember, err := h.roomService.LastMember(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	if lastMember {
		return c.JSON(http.StatusOK, echo.Map{"message": "Warning: If you leave, the room will be deleted!"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Warning: Are you sure want to leave this room!"})
}

// LeaveRoom removes the user from their room, deleting the room when they
// were its last member.
func (h *UserHandler) LeaveRoom(c echo.Context) error {
	userID := sanitizeID(c.Param("id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}

	deleted, err := h.roomService.LeaveRoom(c.Request().Context(), userID)
	if err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("leave room failed", "user_id", userID, "error", err)
		}
		return fail(c, err)
	}
	if deleted {
		return c.JSON(http.StatusOK, echo.Map{"message": "The room is being deleted and user leave the room successfully"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User leave the room successfully"})
}

// GetNotifications lists the user's notifications. Listing marks every
// returned notification as read; this endpoint mutates state.
func (h *UserHandler) GetNotifications(c echo.Context) error {
	userID := sanitizeID(c.Param("id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}

	notifications, err := h.notificationService.ListAndMarkRead(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"All_Notifications": notifications})
}

// GetUnreadNotifications lists only unread notifications, without the
// read-on-view side effect.
func (h *UserHandler) GetUnreadNotifications(c echo.Context) error {
	userID := sanitizeID(c.Param("id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}

	notifications, err := h.notificationService.Unread(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"Unread_Notification": notifications})
}

// DeleteNotification removes one notification owned by the user.
func (h *UserHandler) DeleteNotification(c echo.Context) error {
	userID := sanitizeID(c.Param("id"))
	notifID := sanitizeID(c.Param("notif_id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This username is invalid"})
	}
	if notifID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "This notification id is invalid"})
	}

	if err := h.notificationService.Delete(c.Request().Context(), userID, notifID); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Notification deleted successfully"})
}
