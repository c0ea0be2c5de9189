package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/document"
	"resumebuilder/internal/model"
)

type editorResponse struct {
	Document     model.ResumeDocument `json:"document"`
	Completeness int                  `json:"completeness"`
	Saving       bool                 `json:"saving"`
}

func newEditorResponse(doc model.ResumeDocument, saving bool) editorResponse {
	return editorResponse{Document: doc, Completeness: document.Completeness(doc), Saving: saving}
}

// GetEditor godoc
// @Summary Active draft
// @Tags editor
// @Produce json
// @Success 200 {object} editorResponse
// @Router /editor [get]
func GetEditor(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := svc.Snapshot()
		return c.JSON(newEditorResponse(st.Active, st.Saving))
	}
}

// UpdatePersonalInfo godoc
// @Summary Replace the header of the active draft
// @Tags editor
// @Accept json
// @Produce json
// @Param body body model.PersonalInfo true "personal info"
// @Success 200 {object} editorResponse
// @Router /editor/personal-info [put]
func UpdatePersonalInfo(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var info model.PersonalInfo
		if err := c.BodyParser(&info); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		doc, err := svc.Edit(func(d model.ResumeDocument) (model.ResumeDocument, error) {
			return document.ReplacePersonalInfo(d, info), nil
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newEditorResponse(doc, false))
	}
}

func sectionParam(c *fiber.Ctx) (document.Section, error) {
	return document.ParseSection(c.Params("section"))
}

func indexParam(c *fiber.Ctx) (int, bool) {
	i, err := strconv.Atoi(c.Params("index"))
	return i, err == nil
}

// AppendSectionItem godoc
// @Summary Append a record to a section
// @Tags editor
// @Accept json
// @Produce json
// @Param section path string true "section"
// @Success 200 {object} editorResponse
// @Router /editor/sections/{section} [post]
func AppendSectionItem(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		section, err := sectionParam(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		raw := json.RawMessage(c.Body())
		doc, err := svc.Edit(func(d model.ResumeDocument) (model.ResumeDocument, error) {
			return document.AppendItem(d, section, raw)
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newEditorResponse(doc, false))
	}
}

// UpdateSectionItem godoc
// @Summary Replace a record of a section
// @Tags editor
// @Accept json
// @Produce json
// @Param section path string true "section"
// @Param index path int true "index"
// @Success 200 {object} editorResponse
// @Router /editor/sections/{section}/{index} [put]
func UpdateSectionItem(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		section, err := sectionParam(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		i, ok := indexParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INDEX", "invalid index")
		}
		raw := json.RawMessage(c.Body())
		doc, err := svc.Edit(func(d model.ResumeDocument) (model.ResumeDocument, error) {
			return document.UpdateItem(d, section, i, raw)
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newEditorResponse(doc, false))
	}
}

// RemoveSectionItem godoc
// @Summary Remove a record from a section
// @Tags editor
// @Produce json
// @Param section path string true "section"
// @Param index path int true "index"
// @Success 200 {object} editorResponse
// @Router /editor/sections/{section}/{index} [delete]
func RemoveSectionItem(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		section, err := sectionParam(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		i, ok := indexParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INDEX", "invalid index")
		}
		doc, err := svc.Edit(func(d model.ResumeDocument) (model.ResumeDocument, error) {
			return document.RemoveItem(d, section, i)
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newEditorResponse(doc, false))
	}
}

// SaveEditor godoc
// @Summary Save the active draft
// @Tags editor
// @Produce json
// @Success 200 {object} editorResponse
// @Failure 401 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /editor/save [post]
func SaveEditor(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Save(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newEditorResponse(doc, false))
	}
}

// NewEditorDocument godoc
// @Summary Start a fresh draft
// @Tags editor
// @Produce json
// @Success 200 {object} editorResponse
// @Router /editor/new [post]
func NewEditorDocument(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.NewDocument(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newEditorResponse(doc, false))
	}
}

// LoadEditorDocument godoc
// @Summary Make a saved resume the active draft
// @Tags editor
// @Produce json
// @Param id path string true "resume id"
// @Success 200 {object} editorResponse
// @Failure 404 {object} errorPayload
// @Router /editor/load/{id} [post]
func LoadEditorDocument(svc EditorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.LoadDocument(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newEditorResponse(doc, false))
	}
}
