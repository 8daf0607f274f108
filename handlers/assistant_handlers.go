package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"springshop/assistant"
	"springshop/models"
)

// HandleOpenChatSession opens a new assistant chat session seeded with the
// full catalog as context. Fails when the catalog snapshot is empty: a
// context-free session must never be produced silently.
// POST /api/v1/assistant/sessions
func HandleOpenChatSession(c *fiber.Ctx) error {
	if Bridge == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.Failure("Assistant is not configured"))
	}

	// Empty search is the documented full-catalog fetch.
	products, err := Catalog.Search(c.Context(), models.ProductFilter{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}

	sess, err := Bridge.Open(c.Context(), products)
	if errors.Is(err, assistant.ErrEmptyCatalog) {
		return c.Status(fiber.StatusConflict).JSON(models.Failure("Catalog is empty, assistant session unavailable"))
	}
	if err != nil {
		log.Printf("Error opening assistant session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Failed to open assistant session"))
	}

	id := Chats.Add(sess)
	return c.Status(fiber.StatusCreated).JSON(models.Success(models.ChatSessionInfo{
		SessionID: id,
		Messages:  sess.Transcript(),
	}))
}

// HandleSendChatMessage forwards one user turn to the assistant and returns
// its reply. Provider failures surface as the assistant's fixed fallback
// text, never as an error response.
// POST /api/v1/assistant/sessions/:sessionId/messages
func HandleSendChatMessage(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	sess, err := Chats.Get(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Chat session not found"))
	}

	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Failure("Invalid request body"))
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Failure("Message must not be empty"))
	}

	reply := sess.SendTurn(c.Context(), req.Message)
	return c.JSON(models.Success(models.ChatReply{SessionID: sessionID, Reply: reply}))
}

// HandleGetChatTranscript returns a session's append-only transcript.
// GET /api/v1/assistant/sessions/:sessionId/messages
func HandleGetChatTranscript(c *fiber.Ctx) error {
	sess, err := Chats.Get(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Chat session not found"))
	}
	return c.JSON(models.Success(sess.Transcript()))
}
