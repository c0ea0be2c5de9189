package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/model"
)

type resumeListResponse struct {
	Items []model.ResumeDocument `json:"items"`
	Total int                    `json:"total"`
}

// ListResumes godoc
// @Summary Saved resumes of the current user
// @Tags resumes
// @Produce json
// @Success 200 {object} resumeListResponse
// @Failure 401 {object} errorPayload
// @Router /resumes [get]
func ListResumes(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Refresh(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		saved := svc.Snapshot().Saved
		return c.JSON(resumeListResponse{Items: saved, Total: len(saved)})
	}
}

// DeleteResume godoc
// @Summary Delete a saved resume
// @Tags resumes
// @Param id path string true "resume id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /resumes/{id} [delete]
func DeleteResume(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteDocument(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadResume godoc
// @Summary Download the backend export of a saved resume
// @Tags resumes
// @Produce application/pdf
// @Param id path string true "resume id"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /resumes/{id}/download [get]
func DownloadResume(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Download(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendAttachment(c, d.Filename, d.ContentType, d.Body)
	}
}

func sendAttachment(c *fiber.Ctx, filename, contentType string, body []byte) error {
	c.Attachment(filename)
	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	return c.Send(body)
}
