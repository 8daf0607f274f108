package models

import "time"

// --- API Envelope ---

// Response is the envelope every catalog endpoint replies with.
// The simulated backend always sets Status=true and Message="Success";
// the false path is reserved for a real backend (and malformed requests).
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Body    interface{} `json:"body"`
}

// Success wraps a payload in the standard success envelope.
func Success(body interface{}) Response {
	return Response{Status: true, Message: "Success", Body: body}
}

// Failure wraps an error message in the envelope with Status=false.
func Failure(message string) Response {
	return Response{Status: false, Message: message, Body: nil}
}

// --- Core Models ---

// Category is immutable reference data, loaded once at startup.
type Category struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Icon         string `json:"icon,omitempty"`
}

// Product represents a catalog item. Products never mutate within a session.
type Product struct {
	ProductID   int       `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Sold        int       `json:"sold"`
	CreateDate  time.Time `json:"createDate"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CategoryID  int       `json:"categoryId"`
}

// ProductFilter holds the optional search criteria. A nil field imposes no
// constraint; an all-nil filter matches the entire catalog.
type ProductFilter struct {
	Keyword    *string  `json:"keyword,omitempty"`
	MinPrice   *float64 `json:"minPrice,omitempty"`
	MaxPrice   *float64 `json:"maxPrice,omitempty"`
	DaysAgo    *int     `json:"daysAgo,omitempty"`
	CategoryID *int     `json:"categoryId,omitempty"`
}

// --- Chat Models ---

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one entry in a chat session's append-only transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the body for sending one turn to the assistant.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatReply is the assistant's answer to one turn.
type ChatReply struct {
	SessionID string      `json:"sessionId"`
	Reply     ChatMessage `json:"reply"`
}

// ChatSessionInfo describes a newly opened chat session.
type ChatSessionInfo struct {
	SessionID string        `json:"sessionId"`
	Messages  []ChatMessage `json:"messages"`
}
