package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func (handler *Handler) ListReports(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	reports, err := handler.reportService.ListForUser(user.ID)
	if err != nil {
		return respondServiceError(c, err, "failed to load reports")
	}
	return c.JSON(reports)
}

// GetMonthlyReport reconciles the month before returning it, so the first
// read of a month also creates its report.
func (handler *Handler) GetMonthlyReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	year, month, err := parseYearMonthParams(c)
	if err != nil {
		return respondServiceError(c, err, "failed to load report")
	}
	report, err := handler.reportService.GetOrReconcile(user.ID, year, month)
	if err != nil {
		return respondServiceError(c, err, "failed to load report")
	}
	return c.JSON(report)
}

func (handler *Handler) AdjustReport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	reportID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload reportAdjustmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	report, err := handler.reportService.Adjust(user.ID, reportID, services.ReportAdjustmentPatch{
		VacationDays:       payload.VacationDays,
		CarriedFromMinutes: payload.CarriedFromMinutes,
		CarriedToMinutes:   payload.CarriedToMinutes,
	})
	if err != nil {
		return respondServiceError(c, err, "failed to update report")
	}
	return c.JSON(report)
}
