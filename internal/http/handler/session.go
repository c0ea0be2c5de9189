package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/model"
	"resumebuilder/internal/session"
)

type sessionResponse struct {
	State string      `json:"state"`
	User  *model.User `json:"user,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type registerResponse struct {
	User          *model.User `json:"user"`
	LoginRequired bool        `json:"login_required"`
}

// GetSession godoc
// @Summary Current session
// @Tags session
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /session [get]
func GetSession(svc SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := svc.Snapshot()
		return c.JSON(sessionResponse{State: snap.State.String(), User: snap.User})
	}
}

// Login godoc
// @Summary Log in
// @Tags session
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} sessionResponse
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /session/login [post]
func Login(svc SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		user, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sessionResponse{State: session.StateAuthenticated.String(), User: user})
	}
}

// Register godoc
// @Summary Create an account and log in
// @Tags session
// @Accept json
// @Produce json
// @Param body body registerRequest true "registration"
// @Success 201 {object} registerResponse
// @Failure 400 {object} errorPayload
// @Router /session/register [post]
func Register(svc SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		user, err := svc.Register(c.UserContext(), model.Registration{
			FullName:        req.FullName,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if errors.Is(err, session.ErrRegisteredNotLoggedIn) {
			return c.Status(fiber.StatusCreated).JSON(registerResponse{User: user, LoginRequired: true})
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(registerResponse{User: user})
	}
}

// Logout godoc
// @Summary Log out
// @Tags session
// @Success 204
// @Router /session/logout [post]
func Logout(svc Logouter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Logout(c.UserContext()); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// RequireAuth rejects requests while the session is anonymous.
func RequireAuth(svc SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !svc.Snapshot().Authenticated() {
			return writeError(c, fiber.StatusUnauthorized, "AUTH_REQUIRED", "please log in to continue")
		}
		return c.Next()
	}
}
