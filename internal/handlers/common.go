package handlers

import (
	"fmt"
	"log"

	"admin-api/internal/models"
	"admin-api/internal/store"

	"github.com/gofiber/fiber/v2"
)

// recordActivity appends an audit entry for an auditable action. Audit
// failures are logged, never surfaced to the originating request.
func recordActivity(st *store.Store, c *fiber.Ctx, userID *uint, action, details string) {
	ip := c.IP()
	entry := &models.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   &details,
		IPAddress: &ip,
	}
	if _, err := st.CreateActivityLog(entry); err != nil {
		log.Printf("Failed to record activity %q: %v", action, err)
	}
}

// parseID parses the numeric :id route parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Params("id"))
	}
	return uint(id), nil
}
