package appointment

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkadiri/dentassist-api/internal/handler"
	"github.com/mkadiri/dentassist-api/internal/middleware"
	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/service/appointment"
	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PATCH("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)

		appointments.POST("/:id/call", h.CallPatient)
		appointments.POST("/:id/finish", h.FinishConsultation)
	}

	// The waiting-room board is polled; a short client-side cache is enough.
	r.GET("/waiting-room", middleware.Cache(middleware.CacheConfig{MaxAge: 5 * time.Second}), h.WaitingRoom)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid appointment payload", httputil.BindingErrorFields(err))
		return
	}

	created, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, created)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	found, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, found)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid appointment payload", httputil.BindingErrorFields(err))
		return
	}

	updated, err := h.service.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithNoContent(c)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.ListAppointments(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, appointments)
}

func (h *Handler) CallPatient(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	updated, err := h.service.CallPatient(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) FinishConsultation(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	updated, err := h.service.FinishConsultation(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, updated)
}

func (h *Handler) WaitingRoom(c *gin.Context) {
	queue, err := h.service.WaitingRoom(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, queue)
}
