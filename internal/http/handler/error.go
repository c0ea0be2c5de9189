package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/apiclient"
	"resumebuilder/internal/document"
	"resumebuilder/internal/editor"
	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/logger"
	"resumebuilder/internal/preview"
	"resumebuilder/internal/service"
	"resumebuilder/internal/session"
)

type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes the error envelope. message must be safe to show.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError maps errors from the workspace components onto the
// envelope. Backend rejections keep the backend's message; anything
// unrecognized is logged and reported as an internal error.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials), errors.Is(err, session.ErrInvalidRegistration):
		return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, editor.ErrAuthRequired):
		return writeError(c, fiber.StatusUnauthorized, "AUTH_REQUIRED", "please log in to continue")
	case errors.Is(err, editor.ErrSaveInProgress):
		return writeError(c, fiber.StatusConflict, "SAVE_IN_PROGRESS", err.Error())
	case errors.Is(err, editor.ErrNotSaved):
		return writeError(c, fiber.StatusConflict, "NOT_SAVED", err.Error())
	case errors.Is(err, editor.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, editor.ErrClosed):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "workspace is shutting down")
	case errors.Is(err, document.ErrInvalidDocument):
		return writeError(c, fiber.StatusUnprocessableEntity, "INVALID_DOCUMENT", err.Error())
	case errors.Is(err, document.ErrUnknownSection), errors.Is(err, document.ErrUnknownField),
		errors.Is(err, document.ErrIndexOutOfRange), errors.Is(err, document.ErrBlankSkill):
		return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, preview.ErrEmptyDocument):
		return writeError(c, fiber.StatusUnprocessableEntity, "EMPTY_DOCUMENT", err.Error())
	case errors.Is(err, service.ErrPublishingDisabled):
		return writeError(c, fiber.StatusNotImplemented, "PUBLISHING_DISABLED", err.Error())
	}

	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == fiber.StatusUnauthorized:
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", apiErr.Message)
		case apiErr.StatusCode == fiber.StatusNotFound:
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", apiErr.Message)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return writeError(c, apiErr.StatusCode, "BACKEND_REJECTED", apiErr.Message)
		default:
			return writeError(c, fiber.StatusBadGateway, "BACKEND_ERROR", apiErr.Message)
		}
	}

	log := logger.Component("http")
	log.Error().Err(err).
		Str("request_id", requestIDFromCtx(c)).
		Str("path", c.Path()).
		Msg("unhandled error")
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler renders errors that escaped the handlers, including
// middleware failures and unknown routes.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusServiceUnavailable:
			return writeError(c, status, "SERVICE_UNAVAILABLE", fe.Message)
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
