package handlers

import (
	"github.com/gofiber/fiber/v2"

	"springshop/catalog"
	"springshop/models"
	"springshop/utils"
)

// HandleListCategories returns the full ordered category list.
// GET /api/v1/catalog/categories
func HandleListCategories(c *fiber.Ctx) error {
	categories, err := Catalog.ListCategories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}
	return c.JSON(models.Success(categories))
}

// HandleListByCategory returns the products of one category in catalog order.
// An unknown category id yields an empty list, not an error.
// GET /api/v1/catalog/categories/:categoryId/products
func HandleListByCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Failure("Invalid category id"))
	}

	products, err := Catalog.ListByCategory(c.Context(), categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}
	return c.JSON(models.Success(products))
}

// HandleTopSelling returns the best sellers, descending by sold count.
// GET /api/v1/catalog/products/top-selling?limit=
func HandleTopSelling(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", catalog.DefaultTopLimit)

	products, err := Catalog.TopSelling(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}
	return c.JSON(models.Success(products))
}

// HandleNewArrivals returns recently created products, newest first.
// GET /api/v1/catalog/products/new-arrivals?days=&limit=
func HandleNewArrivals(c *fiber.Ctx) error {
	days := c.QueryInt("days", catalog.DefaultWindowDays)
	limit := c.QueryInt("limit", catalog.DefaultArrivalsCap)

	products, err := Catalog.NewArrivals(c.Context(), days, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}
	return c.JSON(models.Success(products))
}

// HandleSearchProducts filters the catalog by the present query params.
// Unparseable numeric params are treated as absent; with no params at all the
// whole catalog comes back, which is the documented way to fetch everything.
// GET /api/v1/catalog/products/search?keyword=&minPrice=&maxPrice=&daysAgo=&categoryId=
func HandleSearchProducts(c *fiber.Ctx) error {
	var filter models.ProductFilter
	if kw := c.Query("keyword"); kw != "" {
		filter.Keyword = &kw
	}
	filter.MinPrice = utils.ParseOptionalFloat(c.Query("minPrice"))
	filter.MaxPrice = utils.ParseOptionalFloat(c.Query("maxPrice"))
	filter.DaysAgo = utils.ParseOptionalInt(c.Query("daysAgo"))
	filter.CategoryID = utils.ParseOptionalInt(c.Query("categoryId"))

	products, err := Catalog.Search(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.Failure("Request cancelled"))
	}
	return c.JSON(models.Success(products))
}
