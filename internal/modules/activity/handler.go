package activity

import (
	"context"
	"net/http"
	"strconv"

	"portfolio/internal/domain"
	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxRecentLimit = 500

type recentReader interface {
	Recent(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

type Handler struct {
	store recentReader
}

func NewHandler(store recentReader) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/activity", h.Recent)
}

// Recent lists the latest audit entries. ?limit= caps the count.
func (h *Handler) Recent(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxRecentLimit {
			response.Error(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	entries, err := h.store.Recent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ACTIVITY_FAILED", "Failed to load activity")
		return
	}
	response.Success(c, http.StatusOK, entries)
}
