package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/service/settings"
	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

type Handler struct {
	service *settings.Service
}

func NewHandler(service *settings.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/settings", h.GetSettings)
	r.POST("/settings", h.UpdateSettings)
}

func (h *Handler) GetSettings(c *gin.Context) {
	current, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, current)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid settings payload", httputil.BindingErrorFields(err))
		return
	}

	updated, err := h.service.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, updated)
}
