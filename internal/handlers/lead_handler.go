package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"shomee/internal/models"
	"shomee/internal/store"
)

// leadAcknowledgement is the fixed message returned to the form.
const leadAcknowledgement = "Thanks for reaching out!"

// LeadPublisher announces captured leads to interested consumers. Publishing
// is best effort: a failure never fails the request that stored the lead.
type LeadPublisher interface {
	PublishLeadCaptured(leadID string, lead map[string]any) error
}

// LeadHandler handles HTTP requests for the lead-capture form.
type LeadHandler struct {
	store     store.Store
	publisher LeadPublisher
	log       zerolog.Logger
}

// NewLeadHandler creates a new LeadHandler. A nil publisher disables lead
// event publishing.
func NewLeadHandler(store store.Store, publisher LeadPublisher, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		store:     store,
		publisher: publisher,
		log:       log,
	}
}

// RegisterRoutes registers the lead routes with the Fiber app.
func (h *LeadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/lead", h.HandleCreateLead)
}

// HandleCreateLead validates a lead payload, persists it with a defaulted
// source, and acknowledges the submission.
func (h *LeadHandler) HandleCreateLead(c *fiber.Ctx) error {
	var payload models.LeadInput
	if err := c.BodyParser(&payload); err != nil {
		h.log.Debug().Err(err).Msg("Could not parse lead payload")
		return respondParseError(c, err)
	}

	if err := payload.Validate(); err != nil {
		return respondValidationError(c, err)
	}

	doc := payload.Document()
	id, err := h.store.CreateDocument(c.Context(), leadCollection, doc)
	if err != nil {
		h.log.Error().Err(err).Msg("Could not create lead")
		return respondStoreError(c, "Could not create lead", err)
	}

	if h.publisher != nil {
		if err := h.publisher.PublishLeadCaptured(id, doc); err != nil {
			h.log.Warn().Err(err).Str("lead_id", id).Msg("Failed to publish lead captured event")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      id,
		"message": leadAcknowledgement,
	})
}
