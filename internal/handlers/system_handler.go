package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"shomee/internal/schema"
	"shomee/internal/store"
)

const (
	livenessMessage = "Shomee Spices Backend Running"

	// maxProbeCollections caps the collection names listed by the probe.
	maxProbeCollections = 10
	// probeErrorLimit caps failure strings at the length the database
	// viewer displays.
	probeErrorLimit = 50
)

// SystemHandler serves the liveness, schema and diagnostic routes.
type SystemHandler struct {
	store store.Store
	log   zerolog.Logger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(store store.Store, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		store: store,
		log:   log,
	}
}

// RegisterRoutes registers the system routes with the Fiber app.
func (h *SystemHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/schema", h.HandleSchema)
	router.Get("/test", h.HandleTest)
}

// HandleRoot reports liveness.
func (h *SystemHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": livenessMessage})
}

// HandleSchema exposes the entity schemas for the database viewer.
func (h *SystemHandler) HandleSchema(c *fiber.Ctx) error {
	return c.JSON(schema.All())
}

// probeReport is the diagnostic payload served by GET /test. The url and
// name fields are environment-presence flags, never raw values.
type probeReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// HandleTest checks whether the document store is reachable. Every internal
// failure is reported as a status string; the endpoint itself always
// answers 200 so triage works even with the backend down.
func (h *SystemHandler) HandleTest(c *fiber.Ctx) error {
	report := probeReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store != nil {
		if err := h.store.Ping(c.Context()); err != nil {
			report.Database = "❌ Error: " + truncateError(err)
		} else {
			report.Database = "✅ Available"
			report.ConnectionStatus = "Connected"

			names, err := h.store.ListCollectionNames(c.Context())
			if err != nil {
				report.Database = "⚠️  Connected but Error: " + truncateError(err)
			} else {
				if len(names) > maxProbeCollections {
					names = names[:maxProbeCollections]
				}
				if len(names) > 0 {
					report.Collections = names
				}
				report.Database = "✅ Connected & Working"
			}
		}
	}

	report.DatabaseURL = presenceFlag("DATABASE_URL")
	report.DatabaseName = presenceFlag("DATABASE_NAME")

	return c.JSON(report)
}

func presenceFlag(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncateError(err error) string {
	msg := []rune(err.Error())
	if len(msg) > probeErrorLimit {
		msg = msg[:probeErrorLimit]
	}
	return string(msg)
}
