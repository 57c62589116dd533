package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Anishkumar-1804/resume-analyzer/internal/web"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// HandleIndex serves the embedded single-page UI.
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(web.IndexHTML)
}
