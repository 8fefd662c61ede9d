package treatment

import (
	"github.com/gin-gonic/gin"

	"github.com/mkadiri/dentassist-api/internal/handler"
	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/service/treatment"
	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

type Handler struct {
	service *treatment.Service
}

func NewHandler(service *treatment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	treatments := r.Group("/treatments")
	{
		treatments.POST("", h.CreateTreatment)
		treatments.GET("/:id", h.GetTreatment)
		treatments.PATCH("/:id", h.UpdateTreatment)
		treatments.DELETE("/:id", h.DeleteTreatment)
	}

	r.GET("/patients/:id/treatments", h.ListPatientTreatments)
}

func (h *Handler) CreateTreatment(c *gin.Context) {
	var req model.CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid treatment payload", httputil.BindingErrorFields(err))
		return
	}

	created, err := h.service.CreateTreatment(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, created)
}

func (h *Handler) GetTreatment(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	found, err := h.service.GetTreatment(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, found)
}

func (h *Handler) UpdateTreatment(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid treatment payload", httputil.BindingErrorFields(err))
		return
	}

	updated, err := h.service.UpdateTreatment(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) DeleteTreatment(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTreatment(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithNoContent(c)
}

func (h *Handler) ListPatientTreatments(c *gin.Context) {
	patientID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	treatments, err := h.service.ListTreatmentsByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, treatments)
}
