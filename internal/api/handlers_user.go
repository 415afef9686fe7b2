package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload userSettingsPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.settingsService.Update(user.ID, services.UserSettingsPatch{
		FullName:        payload.FullName,
		Email:           payload.Email,
		Phone:           payload.Phone,
		Position:        payload.Position,
		WorkHoursPerDay: payload.WorkHoursPerDay,
		WorkDays:        payload.WorkDays,
		BreakMinutes:    payload.BreakMinutes,
		AutoBreak:       payload.AutoBreak,
	})
	if err != nil {
		return respondServiceError(c, err, "failed to update settings")
	}
	return c.JSON(updated)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.settingsService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return respondServiceError(c, err, "failed to change password")
	}

	token, err := handler.buildToken(user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setAuthCookie(c, token)
	return c.JSON(fiber.Map{"ok": true})
}
