package handlers

import (
	"fmt"

	"admin-api/internal/requests"
	"admin-api/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// SettingHandler handles settings-related HTTP requests
type SettingHandler struct {
	store *store.Store
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(st *store.Store) *SettingHandler {
	return &SettingHandler{store: st}
}

// GetSettings returns the full key/value mapping
func (h *SettingHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.store.GetAllSettings()
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch settings", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Settings retrieved successfully", settings)
	return httpx.SendResponse(c, response)
}

// GetSetting retrieves a single setting value
func (h *SettingHandler) GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	value, err := h.store.GetSetting(key)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch setting", err)
		return httpx.SendResponse(c, response)
	}
	if value == nil {
		response := httpx.NotFound("Setting not found")
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Setting retrieved successfully", fiber.Map{
		"key":   key,
		"value": *value,
	})
	return httpx.SendResponse(c, response)
}

// UpdateSetting upserts a setting value
func (h *SettingHandler) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var input requests.UpdateSettingRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	if err := h.store.SetSetting(key, input.Value); err != nil {
		response := httpx.InternalServerError("Failed to update setting", err)
		return httpx.SendResponse(c, response)
	}

	recordActivity(h.store, c, nil, "setting.update", fmt.Sprintf("Updated setting %s", key))

	response := httpx.OK("Setting updated successfully", fiber.Map{
		"key":   key,
		"value": input.Value,
	})
	return httpx.SendResponse(c, response)
}
