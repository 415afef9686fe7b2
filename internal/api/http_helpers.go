package api

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service errors to HTTP statuses. Anything
// unrecognised is logged and reported as a 500 with a fixed message.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validation.Err.Error(),
			"field": validation.Field,
		})
	}

	switch {
	case errors.Is(err, services.ErrInvalidMonth),
		errors.Is(err, services.ErrInvalidCurrentPassword),
		errors.Is(err, services.ErrNewPasswordMustDiffer),
		errors.Is(err, services.ErrPasswordChangeInvalidData):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrEntryForbidden), errors.Is(err, services.ErrReportForbidden):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrEntryNotFound), errors.Is(err, services.ErrReportNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrUsernameTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	}

	log.Printf("%s %s: %s: %v", c.Method(), c.Path(), fallback, err)
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

func parseIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseYearMonthParams reads :year and :month. Range checks are left to
// services.ValidateYearMonth.
func parseYearMonthParams(c *fiber.Ctx) (int, int, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return 0, 0, services.ErrInvalidMonth
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil {
		return 0, 0, services.ErrInvalidMonth
	}
	if err := services.ValidateYearMonth(year, month); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
