package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/journal_posting/internal/apperrors"
	portssvc "github.com/SscSPs/journal_posting/internal/core/ports/services"
	"github.com/SscSPs/journal_posting/internal/dto"
	"github.com/SscSPs/journal_posting/internal/loader"
	"github.com/SscSPs/journal_posting/internal/middleware"
)

// maxRequestBodyBytes caps the size of a posted journal entry document.
const maxRequestBodyBytes = 1 << 20

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	now            func() time.Time
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
		now:            time.Now,
	}
}

// postJournalEntry godoc
// @Summary Post a journal entry
// @Description Validates the entry and writes it with its lines and ledger postings in one transaction
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.PostJournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Entry or identifier already exists"
// @Failure 413 {object} map[string]string "Request body too large"
// @Failure 422 {object} map[string]string "Store constraint violation"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /journal-entries [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, err := loader.Decode(http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("Journal entry request body too large", slog.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		logger.Warn("Invalid journal entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, lines, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posted, err := h.journalService.PostJournalEntry(c.Request.Context(), entry, lines, actor, h.now())
	if err != nil {
		status, msg := statusFor(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostJournalEntryResponse(posted))
}

// getJournalEntry godoc
// @Summary Get a posted journal entry
// @Description Retrieves a journal entry with its account lines and ledger postings
// @Tags journal-entries
// @Produce  json
// @Param   name path string true "Journal entry name"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to get journal entry"
// @Router /journal-entries/{name} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Param("name")

	agg, err := h.journalService.GetJournalEntry(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
			return
		}
		logger.Error("Failed to get journal entry", slog.String("name", name), slog.String("error", err.Error()))
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			msg = "Failed to get journal entry"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(agg))
}

// statusFor maps a posting error onto an HTTP status and client message.
// The engine already logged the failure.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrConstraintViolation):
		return http.StatusUnprocessableEntity, "Journal entry violates a store constraint"
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Store unavailable, retry later"
	default:
		return http.StatusInternalServerError, "Failed to post journal entry"
	}
}

// registerJournalRoutes registers the journal entry routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	entries.POST("", h.postJournalEntry)
	entries.GET("/:name", h.getJournalEntry)
}
