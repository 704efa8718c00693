package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"lendapi/internal/service"
)

type chatRequest struct {
	SessionID     string  `json:"session_id"`
	Message       string  `json:"message"`
	ApplicationID *string `json:"application_id"`
}

// Chat runs one conversational turn against the assistant.
//
//	@Summary      Send a chat message
//	@Tags         chat
//	@Accept       json
//	@Produce      json
//	@Success      200  {object}  service.ChatResult
//	@Failure      400  {object}  errorPayload
//	@Failure      500  {object}  errorPayload
//	@Router       /api/chat [post]
func Chat(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.Chat(c.UserContext(), req.SessionID, req.Message, req.ApplicationID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrSessionIDRequired):
				return writeError(c, fiber.StatusBadRequest, "SESSION_ID_REQUIRED", "session_id is required")
			case errors.Is(err, service.ErrMessageRequired):
				return writeError(c, fiber.StatusBadRequest, "MESSAGE_REQUIRED", "message is required")
			case errors.Is(err, service.ErrProvider):
				// The cause stays in the log; clients get a stable code.
				log.Printf("chat provider error: %v", err)
				return writeError(c, fiber.StatusInternalServerError, "PROVIDER_ERROR", "chat provider unavailable")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(res)
	}
}

// ChatHistory returns a session's transcript oldest-first.
//
//	@Summary      Get chat history
//	@Tags         chat
//	@Produce      json
//	@Param        session_id  path  string  true  "session id"
//	@Success      200  {array}  model.ChatMessage
//	@Router       /api/chat/{session_id}/history [get]
func ChatHistory(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := svc.History(c.UserContext(), c.Params("session_id"))
		if err != nil {
			if errors.Is(err, service.ErrSessionIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "SESSION_ID_REQUIRED", "session_id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(msgs)
	}
}
