package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/odyssey-travel/backend/internal/auth"
	"example.com/odyssey-travel/backend/internal/mailer"
	"example.com/odyssey-travel/backend/internal/models"
	"example.com/odyssey-travel/backend/internal/repository"
)

type AuthHandler struct {
	Users        *repository.UserRepository
	TokenManager *auth.TokenManager
	Mailer       *mailer.Dispatcher
}

// NewAuthHandler создает обработчик авторизации.
func NewAuthHandler(users *repository.UserRepository, manager *auth.TokenManager, dispatcher *mailer.Dispatcher) *AuthHandler {
	return &AuthHandler{
		Users:        users,
		TokenManager: manager,
		Mailer:       dispatcher,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type TokenResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// Register регистрирует пользователя и выдает токен.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return serverError(c)
	}

	user, err := h.Users.Create(c.Request().Context(), email, name, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return badRequest(c, "Email already registered")
		}
		return serverError(c)
	}

	token, _, err := h.TokenManager.NewToken(user.ID, user.Email)
	if err != nil {
		return serverError(c)
	}

	h.Mailer.Enqueue(mailer.Email{
		To:      user.Email,
		Subject: "Welcome to Odyssey",
		Body:    fmt.Sprintf("Hi %s,\n\nYour Odyssey account is ready. Start planning your next trip!\n", user.Name),
	})

	return c.JSON(http.StatusOK, TokenResponse{
		Token: token,
		User:  toAuthUser(user),
	})
}

// Login выполняет вход и выдает токен.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.Users.GetByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c, "Invalid email or password")
		}
		return serverError(c)
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return unauthorized(c, "Invalid email or password")
	}

	token, _, err := h.TokenManager.NewToken(user.ID, user.Email)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Token: token,
		User:  toAuthUser(user),
	})
}

// Me возвращает данные текущего пользователя.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "invalid token")
	}

	user, err := h.Users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c, "User not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toAuthUser(user))
}

func toAuthUser(user models.User) AuthUser {
	return AuthUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
