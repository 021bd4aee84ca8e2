package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/malikdawood-collab/collaborative-task-manager/pkg/logger"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/utils"
)

// Session value keys written at login.
const (
	SessionUserIDKey   = "user_id"
	SessionUsernameKey = "username"
	SessionEmailKey    = "email"
)

// Protected rejects requests without a valid server-side session and places
// the authenticated identity in fiber locals.
func Protected(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Session lookup failed", "error", err)
			return utils.UnauthorizedResponse(c, "")
		}

		idStr, _ := sess.Get(SessionUserIDKey).(string)
		if idStr == "" {
			return utils.UnauthorizedResponse(c, "")
		}

		userID, err := uuid.Parse(idStr)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}

		username, _ := sess.Get(SessionUsernameKey).(string)
		email, _ := sess.Get(SessionEmailKey).(string)

		c.Locals("user", &utils.UserContext{
			ID:       userID,
			Username: username,
			Email:    email,
		})

		return c.Next()
	}
}
