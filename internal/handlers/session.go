package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/recruitment-assistant/internal/models"
	"alfredoptarigan/recruitment-assistant/internal/repositories"
)

const sessionLocalsKey = "session"

// SessionMiddleware loads the caller's session from the cookie, creating a
// new one when the id is missing or unknown, and saves it after the
// handler runs.
func SessionMiddleware(repo repositories.SessionRepository, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		session, err := repositories.GetOrCreate(repo, id)
		if err != nil {
			log.Printf("❌ Failed to load session %s: %v", id, err)
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load session")
		}

		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    session.ID,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(sessionLocalsKey, session)

		handlerErr := c.Next()

		if err := repo.Save(session); err != nil {
			log.Printf("❌ Failed to save session %s: %v", session.ID, err)
			if handlerErr == nil {
				return fiber.NewError(fiber.StatusInternalServerError, "failed to save session")
			}
		}

		return handlerErr
	}
}

func currentSession(c *fiber.Ctx) *models.Session {
	session, _ := c.Locals(sessionLocalsKey).(*models.Session)
	return session
}
