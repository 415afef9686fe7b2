package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/timetrackpro/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	document, year, month, err := handler.buildExport(c)
	if err != nil {
		return respondServiceError(c, err, "failed to build export")
	}

	var output bytes.Buffer
	if err := services.WriteExportCSV(&output, document); err != nil {
		return respondServiceError(c, err, "failed to build export")
	}
	setExportAttachmentHeaders(c, exportCSVType, services.ExportFilename(year, month, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	document, year, month, err := handler.buildExport(c)
	if err != nil {
		return respondServiceError(c, err, "failed to build export")
	}

	payload, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return respondServiceError(c, err, "failed to build export")
	}
	setExportAttachmentHeaders(c, exportJSONType, services.ExportFilename(year, month, "json"))
	return c.Send(payload)
}

func (handler *Handler) buildExport(c *fiber.Ctx) (services.ExportDocument, int, int, error) {
	user, ok := currentUser(c)
	if !ok {
		return services.ExportDocument{}, 0, 0, services.ErrAuthCredentialsInvalid
	}
	year, month, err := parseYearMonthParams(c)
	if err != nil {
		return services.ExportDocument{}, 0, 0, err
	}

	entries, report, err := handler.exportService.LoadMonth(user.ID, year, month)
	if err != nil {
		return services.ExportDocument{}, 0, 0, err
	}
	options := services.ExportOptions{
		IncludeNotes:  c.QueryBool("notes", true),
		IncludeSalary: c.QueryBool("salary", true),
	}
	document, err := services.BuildExportDocument(*user, entries, report, options, handler.now().In(handler.location))
	if err != nil {
		return services.ExportDocument{}, 0, 0, err
	}
	return document, year, month, nil
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
