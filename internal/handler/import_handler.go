package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dashboard-user-import/internal/logger"
	"dashboard-user-import/internal/middleware"
	"dashboard-user-import/internal/session"
)

// ImportHandler handles import-session HTTP requests.
type ImportHandler struct {
	sessions session.ServiceInterface
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(sessions session.ServiceInterface) *ImportHandler {
	return &ImportHandler{sessions: sessions}
}

// CreateImport handles POST /api/v1/imports. The import file is uploaded
// as multipart form data under the `file` field.
func (h *ImportHandler) CreateImport(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImportFileSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	if len(data) > MaxImportFileSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "import file too large"})
		return
	}

	view, err := h.sessions.Create(c.Request.Context(), data)
	if err != nil {
		var invalid *session.InvalidFileError
		var dup *session.DuplicateUserError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		case errors.As(err, &dup):
			c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
		case errors.Is(err, session.ErrBatchTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create import session",
				"request_id", middleware.GetRequestID(c),
				"error", err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to reach the dashboard backend"})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetImport handles GET /api/v1/imports/:id
func (h *ImportHandler) GetImport(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessions.Get(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Next handles POST /api/v1/imports/:id/next. The request body carries
// the operator-entered values for the current step and may be empty.
func (h *ImportHandler) Next(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input session.StepInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.sessions.Next(c.Request.Context(), id, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Skip handles POST /api/v1/imports/:id/skip
func (h *ImportHandler) Skip(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessions.Skip(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Back handles POST /api/v1/imports/:id/back
func (h *ImportHandler) Back(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessions.Back(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RegenerateToken handles POST /api/v1/imports/:id/verification/regenerate
func (h *ImportHandler) RegenerateToken(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	view, err := h.sessions.RegenerateToken(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteImport handles DELETE /api/v1/imports/:id
func (h *ImportHandler) DeleteImport(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.sessions.Cancel(id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// sessionID validates the :id path parameter. It writes the error
// response itself and reports whether the caller should continue.
func sessionID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return "", false
	}
	return id, true
}

// renderError maps session errors to HTTP statuses.
func (h *ImportHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "import session not found"})
	case errors.Is(err, session.ErrCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrStepNotSkippable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNotVerificationStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Import session action failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
