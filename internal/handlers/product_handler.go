package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"shomee/internal/models"
	"shomee/internal/store"
)

// defaultProductLimit caps an unqualified catalog listing.
const defaultProductLimit = 50

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	store store.Store
	log   zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store store.Store, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		store: store,
		log:   log,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Post("/products", h.HandleCreateProduct)
}

// HandleListProducts returns catalog documents matching the optional
// category, featured and limit query parameters. A limit of 0 lifts the cap.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := store.Filter{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return respondFieldErrors(c, map[string]string{"featured": "must be a boolean"})
		}
		filter["featured"] = featured
	}

	limit := int64(defaultProductLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondFieldErrors(c, map[string]string{"limit": "must be an integer"})
		}
		limit = parsed
	}

	docs, err := h.store.ListDocuments(c.Context(), productCollection, filter, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Could not list products")
		return respondStoreError(c, "Could not retrieve products", err)
	}
	return c.JSON(docs)
}

// HandleCreateProduct validates a product payload and persists it, returning
// the store-assigned identifier.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var payload models.ProductInput
	if err := c.BodyParser(&payload); err != nil {
		h.log.Debug().Err(err).Msg("Could not parse product payload")
		return respondParseError(c, err)
	}

	if err := payload.Validate(); err != nil {
		return respondValidationError(c, err)
	}

	id, err := h.store.CreateDocument(c.Context(), productCollection, payload.Document())
	if err != nil {
		h.log.Error().Err(err).Msg("Could not create product")
		return respondStoreError(c, "Could not create product", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}
