package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func (handler *Handler) ListAllEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entries, err := handler.entryService.ListAll(user.ID)
	if err != nil {
		return respondServiceError(c, err, "failed to load entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) ListMonthEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	year, month, err := parseYearMonthParams(c)
	if err != nil {
		return respondServiceError(c, err, "failed to load entries")
	}
	entries, err := handler.entryService.ListForMonth(user.ID, year, month)
	if err != nil {
		return respondServiceError(c, err, "failed to load entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entryID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	entry, err := handler.entryService.Get(user.ID, entryID)
	if err != nil {
		return respondServiceError(c, err, "failed to load entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload timeEntryPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	entry, err := handler.entryService.Create(user.ID, services.TimeEntryInput{
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		HourlyRate:  payload.HourlyRate,
		Notes:       payload.Notes,
		MoodRating:  payload.MoodRating,
		EnergyLevel: payload.EnergyLevel,
	})
	if err != nil {
		return respondServiceError(c, err, "failed to create entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entryID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload timeEntryPatchPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	entry, err := handler.entryService.Update(user.ID, entryID, services.TimeEntryPatch{
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		HourlyRate:  payload.HourlyRate,
		Notes:       payload.Notes,
		MoodRating:  payload.MoodRating,
		EnergyLevel: payload.EnergyLevel,
	})
	if err != nil {
		return respondServiceError(c, err, "failed to update entry")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entryID, ok := parseIDParam(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := handler.entryService.Delete(user.ID, entryID); err != nil {
		return respondServiceError(c, err, "failed to delete entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
