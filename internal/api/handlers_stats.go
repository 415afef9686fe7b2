package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func (handler *Handler) GetMonthStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	year, month, err := parseYearMonthParams(c)
	if err != nil {
		return respondServiceError(c, err, "failed to load stats")
	}

	today := services.TodayIn(handler.now(), handler.location)
	overview, err := handler.statsService.MonthOverview(user, year, month, today)
	if err != nil {
		return respondServiceError(c, err, "failed to load stats")
	}
	return c.JSON(overview)
}
