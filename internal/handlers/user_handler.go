package handlers

import (
	"fmt"

	"admin-api/internal/models"
	"admin-api/internal/requests"
	"admin-api/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// CreateUser provisions a new user
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input requests.CreateUserRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Validate request
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	user, err := h.store.CreateUser(&models.User{
		GoogleID: input.GoogleID,
		Email:    input.Email,
		Name:     input.Name,
		Picture:  input.Picture,
		IsAdmin:  input.IsAdmin,
		IsActive: true,
	})
	if err != nil {
		response := httpx.InternalServerError("Failed to create user", err)
		return httpx.SendResponse(c, response)
	}

	recordActivity(h.store, c, &user.ID, "user.create", fmt.Sprintf("Created user %s", user.Email))

	response := httpx.Created("User created successfully", user)
	return httpx.SendResponse(c, response)
}

// GetUsers lists all users, newest first
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.store.GetAllUsers()
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch users", err)
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("Users retrieved successfully", users)
	return httpx.SendResponse(c, response)
}

// LookupUser retrieves a single user by email or Google account id
func (h *UserHandler) LookupUser(c *fiber.Ctx) error {
	email := c.Query("email")
	googleID := c.Query("googleId")

	var (
		user *models.User
		err  error
	)
	switch {
	case email != "":
		user, err = h.store.GetUserByEmail(email)
	case googleID != "":
		user, err = h.store.GetUserByGoogleID(googleID)
	default:
		response := httpx.BadRequest("Either email or googleId query parameter is required", nil)
		return httpx.SendResponse(c, response)
	}
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch user", err)
		return httpx.SendResponse(c, response)
	}
	if user == nil {
		response := httpx.NotFound("User not found")
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("User retrieved successfully", user)
	return httpx.SendResponse(c, response)
}

// GetUser retrieves a single user by id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid user ID", err)
		return httpx.SendResponse(c, response)
	}

	user, err := h.store.GetUserByID(id)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch user", err)
		return httpx.SendResponse(c, response)
	}
	if user == nil {
		response := httpx.NotFound("User not found")
		return httpx.SendResponse(c, response)
	}

	response := httpx.OK("User retrieved successfully", user)
	return httpx.SendResponse(c, response)
}

// UpdateUser applies a partial update to a user
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid user ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Validate request
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	user, err := h.store.UpdateUser(id, store.UserPatch{
		GoogleID: input.GoogleID,
		Email:    input.Email,
		Name:     input.Name,
		Picture:  input.Picture,
		IsAdmin:  input.IsAdmin,
		IsActive: input.IsActive,
	})
	if err != nil {
		response := httpx.InternalServerError("Failed to update user", err)
		return httpx.SendResponse(c, response)
	}
	if user == nil {
		response := httpx.NotFound("User not found")
		return httpx.SendResponse(c, response)
	}

	recordActivity(h.store, c, &user.ID, "user.update", fmt.Sprintf("Updated user %s", user.Email))

	response := httpx.OK("User updated successfully", user)
	return httpx.SendResponse(c, response)
}

// DeleteUser removes a user. Files, comments and activity logs created by
// the user are kept.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid user ID", err)
		return httpx.SendResponse(c, response)
	}

	user, err := h.store.GetUserByID(id)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch user", err)
		return httpx.SendResponse(c, response)
	}
	if user == nil {
		response := httpx.NotFound("User not found")
		return httpx.SendResponse(c, response)
	}

	if err := h.store.DeleteUser(id); err != nil {
		response := httpx.InternalServerError("Failed to delete user", err)
		return httpx.SendResponse(c, response)
	}

	recordActivity(h.store, c, nil, "user.delete", fmt.Sprintf("Deleted user %s", user.Email))

	response := httpx.OK("User deleted successfully", nil)
	return httpx.SendResponse(c, response)
}
