package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionWaiter blocks until the session has resolved its stored credential.
type SessionWaiter interface {
	Wait(ctx context.Context) error
}

// WaitForSession holds requests while the session is still checking, so
// protected handlers never observe the transient state. Requests that wait
// longer than timeout fail with 503.
func WaitForSession(s SessionWaiter, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		if err := s.Wait(ctx); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "session is still initializing")
		}
		return c.Next()
	}
}
