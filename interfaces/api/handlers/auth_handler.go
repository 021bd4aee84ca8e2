package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/middleware"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/logger"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
	store       *session.Store
}

func NewAuthHandler(userService services.UserService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		store:       store,
	}
}

// currentUsername returns the logged-in username, or "" when anonymous.
func (h *AuthHandler) currentUsername(c *fiber.Ctx) string {
	sess, err := h.store.Get(c)
	if err != nil {
		return ""
	}
	id, _ := sess.Get(middleware.SessionUserIDKey).(string)
	if id == "" {
		return ""
	}
	username, _ := sess.Get(middleware.SessionUsernameKey).(string)
	return username
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if username := h.currentUsername(c); username != "" {
		return utils.SuccessResponse(c, dto.SessionResponse{
			Message:         "Already logged in",
			IsAuthenticated: true,
			Username:        username,
		})
	}

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Registration attempt", "username", req.Username, "email", req.Email)

	user, err := h.userService.Register(ctx, &req)
	switch {
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		return utils.ConflictResponse(c, err.Error())
	case err != nil:
		logger.ErrorContext(ctx, "Registration failed", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if username := h.currentUsername(c); username != "" {
		return utils.SuccessResponse(c, dto.SessionResponse{
			Message:         "Already logged in",
			IsAuthenticated: true,
			Username:        username,
		})
	}

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid username or password")
	}

	sess, err := h.store.Get(c)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open session", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	sess.Set(middleware.SessionUserIDKey, user.ID.String())
	sess.Set(middleware.SessionUsernameKey, user.Username)
	sess.Set(middleware.SessionEmailKey, user.Email)

	if err := sess.Save(); err != nil {
		logger.ErrorContext(ctx, "Failed to save session", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Session established", "user_id", user.ID)

	return utils.SuccessResponse(c, dto.SessionResponse{
		Message:         "Login successful",
		IsAuthenticated: true,
		Username:        user.Username,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sess, err := h.store.Get(c)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	if err := sess.Destroy(); err != nil {
		logger.ErrorContext(ctx, "Failed to destroy session", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Session destroyed")

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Logged out"})
}

// Status reports identity without requiring authentication.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	resp := dto.AuthStatusResponse{}
	if username := h.currentUsername(c); username != "" {
		resp.IsAuthenticated = true
		resp.Username = &username
	}
	return utils.SuccessResponse(c, resp)
}
