package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/diary_app/internal/apperrors"
	portssvc "github.com/SscSPs/diary_app/internal/core/ports/services"
	"github.com/SscSPs/diary_app/internal/dto"
	"github.com/SscSPs/diary_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to diary entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{
		entryService: es,
	}
}

// RegisterEntryRoutes registers the JSON routes for diary entries.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.GET("/stats", h.getStats)
		entries.GET("/export", h.exportEntries)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// respondValidationError writes a 400 with per-field detail when err carries it.
func respondValidationError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing or invalid required fields", Details: verr.Details()})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing or invalid required fields"})
}

// listEntries godoc
// @Summary List diary entries
// @Description Returns every entry, newest date first
// @Tags entries
// @Produce  json
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list entries, or timed out"
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrTimeout) {
			logger.Error("Timed out listing entries", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Timed out listing entries"})
			return
		}
		logger.Error("Failed to list entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list entries"})
		return
	}

	logger.Info("Entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// createEntry godoc
// @Summary Create a diary entry
// @Description Validates the payload and stores a new entry
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.EntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or missing fields"
// @Failure 500 {object} dto.ErrorResponse "Failed to create entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format", Details: err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating entry", slog.String("error", err.Error()))
			respondValidationError(c, err)
			return
		}
		logger.Error("Failed to create entry in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create entry"})
		return
	}

	logger.Info("Entry created successfully", slog.String("entry_id", entry.ID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a diary entry by ID
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve entry"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", c.Param("id")))

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found")
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Entry not found"})
			return
		}
		logger.Error("Failed to get entry from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a diary entry
// @Description Replaces every mutable field of an existing entry
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.EntryRequest true "Entry details"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or missing fields"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update entry"
// @Security BearerAuth
// @Router /entries/{id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	entryID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	var req dto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format", Details: err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Entry not found for update")
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Entry not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating entry", slog.String("error", err.Error()))
			respondValidationError(c, err)
		default:
			logger.Error("Failed to update entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update entry"})
		}
		return
	}

	logger.Info("Entry updated successfully")
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a diary entry
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete entry"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	entryID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found for delete")
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Entry not found"})
			return
		}
		logger.Error("Failed to delete entry in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete entry"})
		return
	}

	logger.Info("Entry deleted successfully")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Entry deleted"})
}

// getStats godoc
// @Summary Mood statistics
// @Description Count, average, range and current streak across all entries
// @Tags entries
// @Produce  json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to compute statistics"
// @Security BearerAuth
// @Router /entries/stats [get]
func (h *entryHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.entryService.GetStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute entry statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// exportEntries godoc
// @Summary Export diary entries
// @Description Downloads every entry in chronological order
// @Tags entries
// @Produce  json
// @Produce  text/csv
// @Param   format query string false "csv or json" default(json)
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Unsupported format"
// @Failure 500 {object} dto.ErrorResponse "Failed to export entries"
// @Security BearerAuth
// @Router /entries/export [get]
func (h *entryHandler) exportEntries(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("format", format))

	file, err := h.entryService.ExportEntries(c.Request.Context(), format)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Unsupported export format", Details: verr.Details()})
			return
		}
		logger.Error("Failed to export entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to export entries"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
