package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/akulinich/gaintrack/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := validatePasswordStrength(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	if _, exists, err := handler.repositories.Users.FindByEmail(credentials.Email); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check email")
	} else if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        credentials.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	token, err := handler.setAuthCookie(c, &user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, found, err := handler.repositories.Users.FindByEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	if !found {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.setAuthCookie(c, &user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)

	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return credentialsInput{}, errors.New("invalid email")
	}
	return credentials, nil
}

func validatePasswordStrength(password string) error {
	if !passwordLengthRegex.MatchString(password) {
		return errors.New("password too short")
	}
	if passwordUpperRegex.MatchString(password) &&
		passwordLowerRegex.MatchString(password) &&
		passwordDigitRegex.MatchString(password) {
		return nil
	}
	return errors.New("weak password")
}
