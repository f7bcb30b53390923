package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/roomly-app/backend/internal/models"
	"github.com/roomly-app/backend/internal/services"
	"github.com/roomly-app/backend/pkg/logger"
)

// NotificationHandler handles the notification producer endpoints.
type NotificationHandler struct {
	notificationService *services.NotificationService
	log                 *logger.Logger
}

func NewNotificationHandler(notificationService *services.NotificationService, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, log: log}
}

// RegisterNotificationRoutes registers the notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.POST("/join-room-request", h.SendJoinRequest)
	g.POST("/send-announcement", h.SendAnnouncement)
}

// SendJoinRequest creates a join-request notification for the `to` user.
func (h *NotificationHandler) SendJoinRequest(c echo.Context) error {
	var req models.JoinRequestNotification
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.notificationService.SendJoinRequest(c.Request().Context(), sanitizeID(req.From), sanitizeID(req.To), req.Type)
	if err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("join request failed", "from", req.From, "to", req.To, "error", err)
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully Created the new notification"})
}

// SendAnnouncement fans an announcement out to every roommate of the
// sender.
func (h *NotificationHandler) SendAnnouncement(c echo.Context) error {
	var req models.AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error Sending Announcement - Message is empty"})
	}

	alone, err := h.notificationService.SendAnnouncement(c.Request().Context(), sanitizeID(req.From), req.Message)
	if err != nil {
		if statusOf(err) == http.StatusInternalServerError {
			h.log.Error("send announcement failed", "from", req.From, "error", err)
		}
		return fail(c, err)
	}
	if alone {
		return c.JSON(http.StatusOK, echo.Map{"message": "Notify you are the only person in this room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Send announcement successfully"})
}
