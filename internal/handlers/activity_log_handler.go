package handlers

import (
	"admin-api/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// ActivityLogHandler handles audit log HTTP requests
type ActivityLogHandler struct {
	store *store.Store
}

// NewActivityLogHandler creates a new activity log handler
func NewActivityLogHandler(st *store.Store) *ActivityLogHandler {
	return &ActivityLogHandler{store: st}
}

// GetActivityLogs lists audit entries, newest first
func (h *ActivityLogHandler) GetActivityLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", store.DefaultActivityLogLimit)

	entries, err := h.store.GetActivityLogs(limit)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch activity logs", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Activity logs retrieved successfully", entries)
	return httpx.SendResponse(c, response)
}
