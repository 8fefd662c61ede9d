package medication

import (
	"github.com/gin-gonic/gin"

	"github.com/mkadiri/dentassist-api/internal/handler"
	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/service/medication"
	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

type Handler struct {
	service *medication.Service
}

func NewHandler(service *medication.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	medications := r.Group("/medications")
	{
		medications.GET("", h.ListMedications)
		medications.POST("", h.CreateMedication)
		medications.GET("/low-stock", h.ListLowStock)
		medications.GET("/:id", h.GetMedication)
		medications.PATCH("/:id", h.UpdateMedication)
		medications.DELETE("/:id", h.DeleteMedication)

		medications.POST("/:id/movements", h.RecordMovement)
		medications.GET("/:id/movements", h.ListMovements)
	}
}

func (h *Handler) CreateMedication(c *gin.Context) {
	var req model.CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid medication payload", httputil.BindingErrorFields(err))
		return
	}

	created, err := h.service.CreateMedication(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, created)
}

func (h *Handler) GetMedication(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	found, err := h.service.GetMedication(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, found)
}

func (h *Handler) UpdateMedication(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid medication payload", httputil.BindingErrorFields(err))
		return
	}

	updated, err := h.service.UpdateMedication(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) DeleteMedication(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMedication(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithNoContent(c)
}

func (h *Handler) ListMedications(c *gin.Context) {
	medications, err := h.service.ListMedications(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, medications)
}

func (h *Handler) ListLowStock(c *gin.Context) {
	medications, err := h.service.ListLowStock(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, medications)
}

func (h *Handler) RecordMovement(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var req model.CreateStockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid movement payload", httputil.BindingErrorFields(err))
		return
	}

	movement, err := h.service.RecordMovement(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, movement)
}

func (h *Handler) ListMovements(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	movements, err := h.service.ListMovements(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, movements)
}
