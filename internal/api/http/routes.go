package httpapi

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-forecast-api/internal/forecast"
)

var validate = validator.New()

// Handler carries the dependencies of the forecast HTTP endpoints.
type Handler struct {
	service   *forecast.Service
	appName   string
	version   string
	startedAt time.Time
}

func NewHandler(service *forecast.Service, appName, version string) *Handler {
	return &Handler{
		service:   service,
		appName:   appName,
		version:   version,
		startedAt: time.Now().UTC(),
	}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. The static
// segments (info, health, latest) are registered before :id so they are
// never swallowed by the id matcher.
func RegisterRoutes(app *fiber.App, h *Handler) {
	v1 := app.Group("/api/v1/forecast")

	v1.Get("/info", h.handleInfo)
	v1.Get("/health", h.handleHealth)
	v1.Get("/latest", h.handleLatest)
	v1.Get("/", h.handleList)
	v1.Post("/", h.handleCreate)
	v1.Get("/:id", h.handleGet)
	v1.Put("/:id", h.handleReplace)
	v1.Patch("/:id", h.handlePatch)
	v1.Delete("/:id", h.handleDelete)
}

// InfoResponse describes the running application.
type InfoResponse struct {
	Service     string `json:"service" example:"weather-forecast-api"`
	Description string `json:"description" example:"CRUD API over the weather_forecast table"`
	Version     string `json:"version" example:"1.0.0"`
	Hostname    string `json:"hostname" example:"api-1"`
	Runtime     string `json:"runtime" example:"go1.25.5"`
	StartedAt   string `json:"started_at" example:"2025-09-19T10:00:00Z"`
}

// handleInfo godoc
//
//	@Summary	Application description
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	InfoResponse
//	@Router		/api/v1/forecast/info [get]
func (h *Handler) handleInfo(c *fiber.Ctx) error {
	hostname, _ := os.Hostname()
	return c.JSON(InfoResponse{
		Service:     h.appName,
		Description: "CRUD API over the weather_forecast table",
		Version:     h.version,
		Hostname:    hostname,
		Runtime:     runtime.Version(),
		StartedAt:   h.startedAt.Format(time.RFC3339),
	})
}

// handleHealth godoc
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]interface{}
//	@Router		/api/v1/forecast/health [get]
func (h *Handler) handleHealth(c *fiber.Ctx) error {
	if err := h.service.Ping(c.Context()); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "database unreachable")
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": h.appName,
	})
}

// listQuery holds pagination parameters for the list endpoint.
type listQuery struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1,max=100"`
}

// handleList godoc
//
//	@Summary	List forecast records
//	@Tags		forecast
//	@Produce	json
//	@Param		page	query		int	false	"Page number"		default(1)	minimum(1)
//	@Param		limit	query		int	false	"Records per page"	default(10)	minimum(1)	maximum(100)
//	@Success	200		{array}		forecast.Forecast
//	@Failure	400		{object}	map[string]interface{}
//	@Router		/api/v1/forecast [get]
func (h *Handler) handleList(c *fiber.Ctx) error {
	q := listQuery{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 10),
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	recs, err := h.service.List(c.Context(), q.Page, q.Limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list forecast records")
	}
	return c.JSON(recs)
}

// handleLatest godoc
//
//	@Summary		Latest collected forecast batch
//	@Description	Returns every record sharing the most recent collection_time, ordered by forecast_date.
//	@Tags			forecast
//	@Produce		json
//	@Success		200	{array}	forecast.Forecast
//	@Router			/api/v1/forecast/latest [get]
func (h *Handler) handleLatest(c *fiber.Ctx) error {
	recs, err := h.service.Latest(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch latest forecast batch")
	}
	return c.JSON(recs)
}

// handleGet godoc
//
//	@Summary	Fetch one forecast record
//	@Tags		forecast
//	@Produce	json
//	@Param		id	path		int	true	"Record id"
//	@Success	200	{object}	forecast.Forecast
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/v1/forecast/{id} [get]
func (h *Handler) handleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rec, err := h.service.Get(c.Context(), id)
	if err != nil {
		return storageError(err, id)
	}
	return c.JSON(rec)
}

// handleCreate godoc
//
//	@Summary	Create a forecast record
//	@Tags		forecast
//	@Accept		json
//	@Produce	json
//	@Param		record	body		forecast.WriteInput	true	"Record to create"
//	@Success	201		{object}	forecast.Forecast
//	@Failure	400		{object}	map[string]interface{}
//	@Router		/api/v1/forecast [post]
func (h *Handler) handleCreate(c *fiber.Ctx) error {
	var in forecast.WriteInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rec, err := h.service.Create(c.Context(), in)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create forecast record")
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// handleReplace godoc
//
//	@Summary	Fully update a forecast record
//	@Tags		forecast
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Record id"
//	@Param		record	body		forecast.WriteInput	true	"Replacement record"
//	@Success	200		{object}	forecast.Forecast
//	@Failure	400		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/v1/forecast/{id} [put]
func (h *Handler) handleReplace(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in forecast.WriteInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rec, err := h.service.Replace(c.Context(), id, in)
	if err != nil {
		return storageError(err, id)
	}
	return c.JSON(rec)
}

// handlePatch godoc
//
//	@Summary		Partially update a forecast record
//	@Description	Only fields present in the body are updated; absent fields keep their stored values.
//	@Tags			forecast
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Record id"
//	@Param			record	body		forecast.PatchInput	true	"Fields to update"
//	@Success		200		{object}	forecast.Forecast
//	@Failure		400		{object}	map[string]interface{}
//	@Failure		404		{object}	map[string]interface{}
//	@Router			/api/v1/forecast/{id} [patch]
func (h *Handler) handlePatch(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var in forecast.PatchInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := validate.Struct(in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rec, err := h.service.Patch(c.Context(), id, in)
	if err != nil {
		return storageError(err, id)
	}
	return c.JSON(rec)
}

// handleDelete godoc
//
//	@Summary	Delete a forecast record
//	@Tags		forecast
//	@Produce	json
//	@Param		id	path		int	true	"Record id"
//	@Success	200	{object}	map[string]string
//	@Failure	404	{object}	map[string]interface{}
//	@Router		/api/v1/forecast/{id} [delete]
func (h *Handler) handleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return storageError(err, id)
	}
	return c.JSON(fiber.Map{
		"detail": fmt.Sprintf("Forecast with id %d deleted successfully", id),
	})
}

// parseID reserves 400 for non-numeric input; numeric ids that cannot match
// any record fall through to the not-found path like any other lookup miss.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id must be an integer")
	}
	if id < 0 {
		return 0, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Forecast with id %d not found", id))
	}
	return uint(id), nil
}

// storageError maps repository failures onto HTTP statuses.
func storageError(err error, id uint) error {
	if errors.Is(err, forecast.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Forecast with id %d not found", id))
	}
	return fiber.NewError(fiber.StatusInternalServerError, "storage operation failed")
}
