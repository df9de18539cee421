package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/httpx"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/service"
	"github.com/Fidelis-Mayaba-II-Cheelo/Lodge-Accommodation-Management-REST-API-with-JWT-Authentication/internal/validation"
)

type NotificationHandler struct {
	broadcastService *service.BroadcastService
	sentService      *service.SentNotificationService
	inboxService     *service.InboxService
}

func NewNotificationHandler(
	broadcastService *service.BroadcastService,
	sentService *service.SentNotificationService,
	inboxService *service.InboxService,
) *NotificationHandler {
	return &NotificationHandler{
		broadcastService: broadcastService,
		sentService:      sentService,
		inboxService:     inboxService,
	}
}

type messageInput struct {
	Message string `json:"message"`
}

type sendToStudentInput struct {
	StudentID uint   `json:"student_id"`
	Message   string `json:"message"`
}

func (h *NotificationHandler) adminID(c *fiber.Ctx) (uint, error) {
	return httpx.LocalUint(c, "userID")
}

func parseMessage(c *fiber.Ctx, raw string) (string, error) {
	msg, ok := validation.NormalizeNotificationMessage(raw)
	if !ok {
		return "", httpx.BadRequest(c, "invalid_message",
			fmt.Sprintf("Message must be between %d and %d characters", validation.MinNotificationLength, validation.MaxNotificationLength()))
	}
	return msg, nil
}

// Broadcast sends one message to every registered student.
// POST /api/notifications
func (h *NotificationHandler) Broadcast(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	var input messageInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	msg, errResp := parseMessage(c, input.Message)
	if errResp != nil {
		return errResp
	}

	studentIDs, err := h.broadcastService.ResolveAllStudents()
	if err != nil {
		return httpx.FromError(c, err)
	}

	result, err := h.broadcastService.Broadcast(adminID, msg, studentIDs)
	if err != nil {
		return httpx.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      fmt.Sprintf("Notifications sent to %d students", result.Delivered),
		"broadcast_id": result.BroadcastID,
		"delivered":    result.Delivered,
	})
}

// SendToStudent delivers one message to one student.
// POST /api/notifications/recipient
func (h *NotificationHandler) SendToStudent(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	var input sendToStudentInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if input.StudentID == 0 {
		return httpx.BadRequest(c, "missing_student", "student_id is required")
	}
	msg, errResp := parseMessage(c, input.Message)
	if errResp != nil {
		return errResp
	}

	n, err := h.broadcastService.SendToStudent(adminID, input.StudentID, msg)
	if err != nil {
		return httpx.FromError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(n.ToResponse())
}

// ListInbound returns every notification students sent to the admin.
// GET /api/notifications
func (h *NotificationHandler) ListInbound(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	ns, err := h.inboxService.ListInbound(adminID)
	if err != nil {
		return httpx.FromError(c, err)
	}

	responses := make([]interface{}, len(ns))
	for i, n := range ns {
		responses[i] = n.ToResponse()
	}
	return c.JSON(fiber.Map{"notifications": responses, "count": len(ns)})
}

// UnreadCount reports how many inbound notifications are still unread.
// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	count, err := h.inboxService.UnreadCount(adminID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"unread": count})
}

// ListSent returns every notification the admin has sent.
// GET /api/notifications/sent
func (h *NotificationHandler) ListSent(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	ns, err := h.sentService.ListSent(adminID)
	if err != nil {
		return httpx.FromError(c, err)
	}

	responses := make([]interface{}, len(ns))
	for i, n := range ns {
		responses[i] = n.ToResponse()
	}
	return c.JSON(fiber.Map{"sent_notifications": responses, "count": len(ns)})
}

// ListSentToStudent returns the admin's notifications to one student.
// GET /api/notifications/sent/:student_id
func (h *NotificationHandler) ListSentToStudent(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	studentID, ok := validation.ParseID(c.Params("student_id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_student_id", "Invalid student id")
	}

	ns, err := h.sentService.ListSentToStudent(adminID, studentID)
	if err != nil {
		return httpx.FromError(c, err)
	}

	responses := make([]interface{}, len(ns))
	for i, n := range ns {
		responses[i] = n.ToResponse()
	}
	return c.JSON(fiber.Map{"notifications": responses, "count": len(ns)})
}

// DeleteSent removes one sent notification.
// DELETE /api/notifications/sent/:id
func (h *NotificationHandler) DeleteSent(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_id", "Invalid notification id")
	}

	if err := h.sentService.DeleteOne(adminID, id); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification deleted successfully"})
}

// DeleteAllSent removes every notification the admin has sent.
// DELETE /api/notifications/sent
func (h *NotificationHandler) DeleteAllSent(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	deleted, err := h.sentService.DeleteAll(adminID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%d sent notifications have been deleted", deleted),
		"deleted": deleted,
	})
}

// EditSent rewrites one sent notification's message.
// PUT /api/notifications/sent/:id/:student_id
func (h *NotificationHandler) EditSent(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_id", "Invalid notification id")
	}
	studentID, ok := validation.ParseID(c.Params("student_id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_student_id", "Invalid student id")
	}

	var input messageInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	msg, errResp := parseMessage(c, input.Message)
	if errResp != nil {
		return errResp
	}

	if err := h.sentService.EditOne(adminID, id, studentID, msg); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification edited successfully"})
}

// EditBroadcast rewrites every notification of one broadcast group.
// PUT /api/notifications/broadcast/:broadcast_id
func (h *NotificationHandler) EditBroadcast(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	broadcastID := c.Params("broadcast_id")
	if !validation.ValidateUUID(broadcastID) {
		return httpx.BadRequest(c, "invalid_broadcast_id", "Broadcast id must be a UUID")
	}

	var input messageInput
	if err := c.BodyParser(&input); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	msg, errResp := parseMessage(c, input.Message)
	if errResp != nil {
		return errResp
	}

	updated, err := h.sentService.EditBroadcast(adminID, broadcastID, msg)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Updated %d broadcast notifications", updated),
		"updated": updated,
	})
}

// MarkRead marks one inbound notification as read.
// PUT /api/notifications/:id
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_id", "Invalid notification id")
	}

	if err := h.inboxService.MarkRead(adminID, id); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// MarkAllRead marks every unread inbound notification as read.
// PUT /api/notifications
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	if err := h.inboxService.MarkAllRead(adminID); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}

// DeleteInbound removes one inbound notification.
// DELETE /api/notifications/:id/:student_id
func (h *NotificationHandler) DeleteInbound(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_id", "Invalid notification id")
	}
	studentID, ok := validation.ParseID(c.Params("student_id"))
	if !ok {
		return httpx.BadRequest(c, "invalid_student_id", "Invalid student id")
	}

	if err := h.inboxService.DeleteOne(adminID, id, studentID); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification deleted successfully"})
}

// DeleteAllInbound clears the admin's inbound mailbox.
// DELETE /api/notifications
func (h *NotificationHandler) DeleteAllInbound(c *fiber.Ctx) error {
	adminID, err := h.adminID(c)
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Unauthorized")
	}

	deleted, err := h.inboxService.DeleteAll(adminID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%d notifications have been deleted", deleted),
		"deleted": deleted,
	})
}
