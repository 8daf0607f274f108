// Package assistant bridges the storefront to the Gemini chat API. It builds a
// catalog context block, opens provider-side chat sessions carrying it as a
// system instruction, and relays user turns, converting every provider failure
// into a fixed user-facing fallback string.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"springshop/models"
)

// ErrEmptyCatalog is returned when a session is requested before the catalog
// snapshot has any products to describe.
var ErrEmptyCatalog = errors.New("assistant: catalog snapshot is empty")

const (
	// WelcomeText seeds every new session's transcript.
	WelcomeText = "Hi! I'm your SpringShop AI assistant. I can help you find products, check prices, or give recommendations. What are you looking for today?"

	// FallbackTransport is returned to the user when the provider call fails.
	FallbackTransport = "I'm having trouble connecting to the server right now. Please try again later."

	// FallbackEmpty is returned when the provider answers with no text.
	FallbackEmpty = "I'm sorry, I couldn't generate a response."
)

const instructionTemplate = `You are a friendly and helpful AI shopping assistant for 'SpringShop', an e-commerce demo store.

Your role is to:
1. Help users find products from our catalog based on their needs or budget.
2. Answer questions about product features and pricing.
3. Suggest popular items (based on 'Sold' count) or new arrivals.

Here is our current Product Catalog:
%s

Guidelines:
- ONLY recommend products listed in the catalog above.
- If a user asks for a product we don't have, politely apologize and suggest the closest alternative from the catalog if one exists.
- Keep your responses concise, professional, and enthusiastic.
- Do not invent products or prices.
- If asked about shipping, returns, or account issues, say that this is a demo application and those features are simulated.
`

// Transport performs one blocking request/response exchange with the model.
type Transport interface {
	Send(ctx context.Context, text string) (string, error)
}

// Bridge owns the Gemini client and opens chat sessions against it.
type Bridge struct {
	client *genai.Client
	model  string
}

// NewBridge creates the Gemini client. The key is read once here; there is no
// retry or reconnect policy.
func NewBridge(ctx context.Context, apiKey, model string) (*Bridge, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Bridge{client: client, model: model}, nil
}

// Close releases the underlying client.
func (b *Bridge) Close() error {
	return b.client.Close()
}

// Open starts a provider-side chat session whose system instruction embeds the
// given catalog snapshot. It fails with ErrEmptyCatalog on an empty snapshot;
// callers must wait for the catalog to load before opening a session.
func (b *Bridge) Open(ctx context.Context, products []models.Product) (*Session, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	gm := b.client.GenerativeModel(b.model)
	gm.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemInstruction(products))},
	}
	return NewSession(&geminiTransport{chat: gm.StartChat()}), nil
}

// SystemInstruction renders the assistant's persistent context for a catalog
// snapshot, one product per line.
func SystemInstruction(products []models.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		price := strconv.FormatFloat(p.Price, 'f', -1, 64)
		lines = append(lines, fmt.Sprintf("- %s ($%s): %s (ID: %d, Sold: %d)",
			p.ProductName, price, p.Description, p.ProductID, p.Sold))
	}
	return fmt.Sprintf(instructionTemplate, strings.Join(lines, "\n"))
}

// geminiTransport adapts a genai chat session to the Transport interface.
type geminiTransport struct {
	chat *genai.ChatSession
}

func (t *geminiTransport) Send(ctx context.Context, text string) (string, error) {
	resp, err := t.chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}
	return responseText(resp), nil
}

// responseText concatenates the text parts of the first candidates.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
	}
	return sb.String()
}
