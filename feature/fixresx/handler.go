package fixresx

import (
	"errors"

	"fixresx/core/logger"
	"fixresx/core/reconcile"
	"fixresx/core/workspace"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// defaultRunsLimit caps GET /fix/runs when no limit is given.
const defaultRunsLimit = 50

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the fix routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/fix")
	group.Post("/run", h.HandleRun)
	group.Post("/preview", h.HandlePreview)
	group.Get("/runs", h.HandleRuns)
	group.Get("/archive", h.HandleArchive)
}

// PreviewRequest is the body of POST /fix/preview.
type PreviewRequest struct {
	Designer string `json:"designer"`
	Resx     string `json:"resx"`
	Lenient  bool   `json:"lenient"`
}

// statusFor maps run errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, workspace.ErrInvalidBaseName):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrUnexpectedProperty):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrHistoryDisabled), errors.Is(err, ErrArchiveDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleRun reconciles one form in the configured directories.
// @Summary Reconcile Form
// @Description Rewrites the geometry entries of the localized resx from the canonical designer and installs the result.
// @Tags fix
// @Accept json
// @Produce json
// @Param base query string true "Form path relative to the configured directories, without extension"
// @Param lenient query boolean false "Pass unexpected properties through"
// @Param dry_run query boolean false "Write the .resx.new file without installing it"
// @Success 200 {object} RunReport "Run Report"
// @Failure 400 {object} map[string]string "Missing base"
// @Failure 404 {object} map[string]string "Invalid base name"
// @Failure 422 {object} map[string]string "Unexpected property"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /fix/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	base := c.Query("base")
	if base == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "base is required"})
	}

	opts := RunOptions{
		Lenient: c.QueryBool("lenient"),
		DryRun:  c.QueryBool("dry_run"),
	}
	report, err := h.service.Run(c.UserContext(), base, opts)
	if err != nil {
		l.Error("Run failed", zap.String("base", base), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandlePreview reconciles posted texts without touching the directories.
// @Summary Preview Reconciliation
// @Description Reconciles a posted designer source and resx text in memory and returns the rewritten resx.
// @Tags fix
// @Accept json
// @Produce json
// @Param request body PreviewRequest true "Designer source and resx text"
// @Success 200 {object} Preview "Preview"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Unexpected property"
// @Router /fix/preview [post]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	var req PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Resx == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "resx is required"})
	}

	preview, err := h.service.Preview(req.Designer, req.Resx, RunOptions{Lenient: req.Lenient})
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(preview)
}

// HandleRuns lists recorded runs.
// @Summary List Runs
// @Description Lists recorded runs, newest first.
// @Tags fix
// @Produce json
// @Param base query string false "Only runs of this form"
// @Param limit query int false "Maximum number of runs" default(50)
// @Success 200 {array} RunRecord "Runs"
// @Failure 503 {object} map[string]string "History disabled"
// @Router /fix/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.Runs(c.UserContext(), c.Query("base"), c.QueryInt("limit", defaultRunsLimit))
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleArchive lists archived objects of a form.
// @Summary List Archived Files
// @Description Lists the object keys archived for a form across runs.
// @Tags fix
// @Produce json
// @Param base query string true "Form path"
// @Success 200 {object} map[string]interface{} "Archived keys"
// @Failure 400 {object} map[string]string "Missing base"
// @Failure 503 {object} map[string]string "Archive disabled"
// @Router /fix/archive [get]
func (h *Handler) HandleArchive(c *fiber.Ctx) error {
	base := c.Query("base")
	if base == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "base is required"})
	}

	keys, err := h.service.Archived(c.UserContext(), base)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"base": base, "keys": keys})
}
