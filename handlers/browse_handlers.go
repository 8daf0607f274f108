package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"springshop/browse"
	"springshop/models"
)

// BrowseSessionResponse is the body for browse-session endpoints.
type BrowseSessionResponse struct {
	SessionID string       `json:"sessionId"`
	State     browse.State `json:"state"`
	// Applied is false when a finished query was discarded because a newer
	// user action superseded it while the query was in flight.
	Applied *bool `json:"applied,omitempty"`
}

type selectCategoryRequest struct {
	CategoryID int `json:"categoryId" validate:"required"`
}

// HandleCreateBrowseSession opens a browsing session on the dashboard view.
// POST /api/v1/browse/sessions
func HandleCreateBrowseSession(c *fiber.Ctx) error {
	id, state := Browses.Create()
	return c.Status(fiber.StatusCreated).JSON(models.Success(BrowseSessionResponse{
		SessionID: id,
		State:     state,
	}))
}

// HandleGetBrowseSession returns the session's current state snapshot.
// GET /api/v1/browse/sessions/:sessionId
func HandleGetBrowseSession(c *fiber.Ctx) error {
	id := c.Params("sessionId")
	state, err := Browses.Snapshot(id)
	if errors.Is(err, browse.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Browse session not found"))
	}
	return c.JSON(models.Success(BrowseSessionResponse{SessionID: id, State: state}))
}

// HandleSelectCategory switches the session to a category view and runs the
// category-products query under the token issued by the transition. A stale
// result loses to any newer action taken while the query was in flight.
// POST /api/v1/browse/sessions/:sessionId/select-category
func HandleSelectCategory(c *fiber.Ctx) error {
	id := c.Params("sessionId")

	var req selectCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Failure("Invalid request body"))
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Failure("Category id is required"))
	}

	categories, err := Catalog.ListCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}
	var selected *models.Category
	for i := range categories {
		if categories[i].CategoryID == req.CategoryID {
			selected = &categories[i]
			break
		}
	}
	if selected == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Category not found"))
	}

	_, tok, err := Browses.SelectCategory(id, *selected)
	if errors.Is(err, browse.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Browse session not found"))
	}

	products, err := Catalog.ListByCategory(c.Context(), selected.CategoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}

	applied, err := Browses.DeliverCategoryProducts(id, tok, products)
	if errors.Is(err, browse.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Browse session not found"))
	}

	state, err := Browses.Snapshot(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Browse session not found"))
	}
	return c.JSON(models.Success(BrowseSessionResponse{SessionID: id, State: state, Applied: &applied}))
}

// HandleApplyFilters switches the session to the search view and runs the
// filtered search under the issued token. A category selected earlier scopes
// the search unless the filter names its own category.
// POST /api/v1/browse/sessions/:sessionId/apply-filters
func HandleApplyFilters(c *fiber.Ctx) error {
	id := c.Params("sessionId")

	var filter models.ProductFilter
	if err := c.BodyParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Failure("Invalid request body"))
	}

	state, tok, err := Browses.ApplyFilters(id, filter)
	if errors.Is(err, browse.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Browse session not found"))
	}

	products, err := Catalog.Search(c.Context(), state.Filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}

	applied, err := Browses.DeliverSearchResults(id, tok, products)
	if errors.Is(err, browse.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Browse session not found"))
	}

	state, err = Browses.Snapshot(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Browse session not found"))
	}
	return c.JSON(models.Success(BrowseSessionResponse{SessionID: id, State: state, Applied: &applied}))
}

// HandleGoHome returns the session to the dashboard, clearing the selection
// and filters and invalidating any queries still in flight.
// POST /api/v1/browse/sessions/:sessionId/go-home
func HandleGoHome(c *fiber.Ctx) error {
	id := c.Params("sessionId")
	state, err := Browses.GoHome(id)
	if errors.Is(err, browse.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.Failure("Browse session not found"))
	}
	return c.JSON(models.Success(BrowseSessionResponse{SessionID: id, State: state}))
}
