package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/mkadiri/dentassist-api/internal/handler"
	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/service/payment"
	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

type Handler struct {
	service *payment.Service
}

func NewHandler(service *payment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	{
		payments.POST("", h.CreatePayment)
		payments.PATCH("/:id", h.UpdatePayment)
	}

	r.GET("/patients/:id/payments", h.ListPatientPayments)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid payment payload", httputil.BindingErrorFields(err))
		return
	}

	created, err := h.service.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, created)
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid payment payload", httputil.BindingErrorFields(err))
		return
	}

	updated, err := h.service.UpdatePayment(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) ListPatientPayments(c *gin.Context) {
	patientID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	payments, err := h.service.ListPaymentsByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, payments)
}
