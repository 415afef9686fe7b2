package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/timetrackpro/internal/models"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(credentials.Username, credentials.Password)
	if err != nil {
		return respondServiceError(c, err, "failed to create account")
	}
	return handler.respondWithSession(c, &user, fiber.StatusCreated)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var credentials credentialsInput
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	key := loginLimiterKey(c, credentials.Username)
	now := handler.now()
	if handler.loginLimiter.blocked(key, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.authService.Authenticate(credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.recordFailure(key, now, loginAttemptWindow)
		}
		return respondServiceError(c, err, "failed to sign in")
	}
	handler.loginLimiter.reset(key)

	return handler.respondWithSession(c, &user, fiber.StatusOK)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) respondWithSession(c *fiber.Ctx, user *models.User, status int) error {
	token, err := handler.buildToken(user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setAuthCookie(c, token)
	return c.Status(status).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
