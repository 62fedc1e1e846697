package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"herbtrack/internal/logging"
	"herbtrack/internal/server/models"
	"herbtrack/internal/server/services"
	"herbtrack/internal/shared"
)

// EntryHandler serves the per-user entry collection and its summary.
type EntryHandler struct {
	entries *services.EntryService
	logger  logging.Logger
}

// NewEntryHandler constructs an EntryHandler.
func NewEntryHandler(entries *services.EntryService, logger logging.Logger) *EntryHandler {
	return &EntryHandler{entries: entries, logger: logger}
}

type createEntryRequest struct {
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	Method     string   `json:"method" binding:"required"`
	Amount     string   `json:"amount"`
	Puffs      string   `json:"puffs"`
	THCPercent float64  `json:"thc_percent"`
	Strain     string   `json:"strain"`
	Mood       int      `json:"mood"`
	Energy     int      `json:"energy"`
	Focus      int      `json:"focus"`
	Creativity int      `json:"creativity"`
	Anxiety    int      `json:"anxiety"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
}

func (h *EntryHandler) List(c *gin.Context) {
	result, err := h.entries.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.Error(c.Request.Context(), "listing entries failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load entries"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EntryHandler) Stats(c *gin.Context) {
	stats, err := h.entries.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logger.Error(c.Request.Context(), "stats computation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *EntryHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry := &models.Entry{
		UserID:     currentUserID(c),
		Date:       req.Date,
		Time:       req.Time,
		Method:     req.Method,
		Amount:     req.Amount,
		Puffs:      req.Puffs,
		THCPercent: req.THCPercent,
		Strain:     req.Strain,
		Mood:       req.Mood,
		Energy:     req.Energy,
		Focus:      req.Focus,
		Creativity: req.Creativity,
		Anxiety:    req.Anxiety,
		Activities: req.Activities,
		Notes:      req.Notes,
	}

	created, err := h.entries.Create(c.Request.Context(), entry)
	if err != nil {
		h.logger.Error(c.Request.Context(), "entry creation failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create entry"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.entries.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		if errors.Is(err, shared.ErrorEntryDoesNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "entry deletion failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}
