package document

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkadiri/dentassist-api/internal/handler"
	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/service/document"
	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

type Handler struct {
	service *document.Service
}

func NewHandler(service *document.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	documents := r.Group("/documents")
	{
		documents.POST("", h.CreateDocument)
		documents.GET("/:id", h.GetDocument)
		documents.PATCH("/:id/status", h.UpdateStatus)
		documents.GET("/:id/pdf", h.DownloadPDF)
	}

	r.GET("/patients/:id/documents", h.ListPatientDocuments)
}

// createDocumentResponse pairs the stored record with the rendered HTML
// the client hands to the print pipeline.
type createDocumentResponse struct {
	Document *model.Document `json:"document"`
	HTML     string          `json:"html"`
}

func (h *Handler) CreateDocument(c *gin.Context) {
	var req model.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid document payload", httputil.BindingErrorFields(err))
		return
	}

	doc, html, err := h.service.CreateDocument(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, createDocumentResponse{Document: doc, HTML: html})
}

func (h *Handler) GetDocument(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, doc)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateDocumentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithValidationError(c, "invalid status payload", httputil.BindingErrorFields(err))
		return
	}

	doc, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, doc)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	id, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	pdf, err := h.service.RenderPDF(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=document.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) ListPatientDocuments(c *gin.Context) {
	patientID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	documents, err := h.service.ListDocumentsByPatient(c.Request.Context(), patientID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, documents)
}
