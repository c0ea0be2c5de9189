package handler

import "github.com/gofiber/fiber/v2"

// Dashboard godoc
// @Summary Saved resumes, completeness and recent activity
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Overview
// @Failure 401 {object} errorPayload
// @Router /dashboard [get]
func Dashboard(svc DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ov, err := svc.Overview(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ov)
	}
}
