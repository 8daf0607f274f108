package handlers

import (
	"github.com/go-playground/validator/v10"

	"springshop/assistant"
	"springshop/browse"
	"springshop/catalog"
)

// Package-level collaborators, wired once at startup. Keeping them global
// mirrors how the rest of the app exposes shared state and keeps the handler
// signatures plain fiber.Handler funcs.
var (
	Catalog *catalog.Service
	Bridge  *assistant.Bridge
	Chats   *assistant.Registry
	Browses *browse.Store
)

var validate = validator.New()

// Setup wires the handlers' collaborators. Bridge may be nil when no Gemini
// API key is configured; the assistant endpoints then answer 503.
func Setup(cat *catalog.Service, bridge *assistant.Bridge) {
	Catalog = cat
	Bridge = bridge
	Chats = assistant.NewRegistry()
	Browses = browse.NewStore()
}
