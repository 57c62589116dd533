package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Anishkumar-1804/resume-analyzer/internal/models"
)

const reportFileName = "resume_analysis_report.md"

type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// HandleDownload handles POST /api/v1/report. It echoes the rendered analysis
// back verbatim as a markdown attachment.
func (h *ReportHandler) HandleDownload(c *fiber.Ctx) error {
	var req models.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Analysis == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "analysis is required",
		})
	}

	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reportFileName+`"`)
	return c.SendString(req.Analysis)
}
