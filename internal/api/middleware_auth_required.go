package api

import (
	"errors"
	"strings"

	"github.com/akulinich/gaintrack/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// authenticateRequest accepts the session cookie or a bearer token; both
// carry the same HS256 claims.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	rawToken := c.Cookies(authCookieName)
	if rawToken == "" {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if after, found := strings.CutPrefix(header, "Bearer "); found {
			rawToken = strings.TrimSpace(after)
		}
	}
	if rawToken == "" {
		return nil, errors.New("missing auth token")
	}

	claims := authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid auth token")
	}

	user, found, err := handler.repositories.Users.FindByID(claims.UserID)
	if err != nil || !found {
		return nil, errors.New("unknown user")
	}
	return &user, nil
}
