package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/odyssey-travel/backend/internal/mailer"
	"example.com/odyssey-travel/backend/internal/repository"
)

type ContactHandler struct {
	Contacts *repository.ContactRepository
	Mailer   *mailer.Dispatcher
}

// NewContactHandler создает обработчик обратной связи и рассылки.
func NewContactHandler(contacts *repository.ContactRepository, dispatcher *mailer.Dispatcher) *ContactHandler {
	return &ContactHandler{
		Contacts: contacts,
		Mailer:   dispatcher,
	}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Submit сохраняет сообщение и ставит подтверждение в очередь почты.
// Ошибки отправки письма никогда не влияют на ответ.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.Contacts.SaveMessage(c.Request().Context(), req.Name, email, req.Subject, req.Message); err != nil {
		return serverError(c)
	}

	h.Mailer.Enqueue(mailer.Email{
		To:      email,
		Subject: "We received your message",
		Body:    fmt.Sprintf("Hi %s,\n\nThanks for reaching out about %q. We will get back to you soon.\n", req.Name, req.Subject),
	})

	return c.JSON(http.StatusOK, map[string]string{"message": "Thank you for contacting us. We will reply shortly."})
}

// Subscribe добавляет email в рассылку. Повторная подписка не считается
// ошибкой для клиента.
func (h *ContactHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.Contacts.Subscribe(c.Request().Context(), email); err != nil {
		if !errors.Is(err, repository.ErrConflict) {
			return serverError(c)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "You are already subscribed."})
	}

	h.Mailer.Enqueue(mailer.Email{
		To:      email,
		Subject: "Welcome to the Odyssey newsletter",
		Body:    "You are in! Expect travel inspiration and deals in your inbox.\n",
	})

	return c.JSON(http.StatusOK, map[string]string{"message": "Subscribed successfully."})
}
