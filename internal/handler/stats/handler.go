package stats

import (
	"github.com/gin-gonic/gin"

	"github.com/mkadiri/dentassist-api/internal/service/stats"
	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

type Handler struct {
	service *stats.Service
}

func NewHandler(service *stats.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.GetStats)
}

func (h *Handler) GetStats(c *gin.Context) {
	result, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, result)
}
