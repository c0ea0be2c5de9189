package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/service"
)

// Preview godoc
// @Summary Printable HTML preview of the active draft
// @Tags preview
// @Produce html
// @Success 200 {string} string
// @Router /preview [get]
func Preview(ed EditorService, exports service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		html, err := exports.RenderHTML(c.UserContext(), ed.Active())
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Type("html", "utf-8")
		return c.Send(html)
	}
}

// PreviewPDF godoc
// @Summary Export the preview of the active draft as PDF
// @Tags preview
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 422 {object} errorPayload
// @Router /preview/pdf [post]
func PreviewPDF(ed EditorService, exports service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exp, err := exports.RenderPDF(c.UserContext(), ed.Active())
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendAttachment(c, exp.Filename, exp.ContentType, exp.Body)
	}
}

// PublishPreview godoc
// @Summary Upload the PDF export and return a shareable link
// @Tags preview
// @Produce json
// @Success 201 {object} service.Published
// @Failure 422 {object} errorPayload
// @Failure 501 {object} errorPayload
// @Router /preview/publish [post]
func PublishPreview(sess SessionService, ed EditorService, exports service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := ""
		if u := sess.Snapshot().User; u != nil {
			owner = u.ID
		}
		pub, err := exports.Publish(c.UserContext(), owner, ed.Active())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(pub)
	}
}
