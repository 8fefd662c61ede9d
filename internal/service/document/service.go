package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mkadiri/dentassist-api/internal/billing"
	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/render"
	"github.com/mkadiri/dentassist-api/internal/repository"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

var generatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dentassist_documents_generated_total",
	Help: "Billing documents generated, by type",
}, []string{"type"})

type Service struct {
	repo          repository.DocumentRepository
	patientRepo   repository.PatientRepository
	treatmentRepo repository.TreatmentRepository
	settingsRepo  repository.SettingsRepository
	renderer      *render.Renderer
	pdf           *render.PDFRenderer
	now           func() time.Time
}

func NewService(
	repo repository.DocumentRepository,
	patientRepo repository.PatientRepository,
	treatmentRepo repository.TreatmentRepository,
	settingsRepo repository.SettingsRepository,
	renderer *render.Renderer,
	pdf *render.PDFRenderer,
) *Service {
	return &Service{
		repo:          repo,
		patientRepo:   patientRepo,
		treatmentRepo: treatmentRepo,
		settingsRepo:  settingsRepo,
		renderer:      renderer,
		pdf:           pdf,
		now:           time.Now,
	}
}

// CreateDocument aggregates the selected treatments into a billing
// document: computes the total (default consultation fee when nothing is
// selected), renders the HTML template, and only then persists the
// record. A rendering failure leaves no partial document behind.
func (s *Service) CreateDocument(ctx context.Context, req *model.CreateDocumentRequest) (*model.Document, string, error) {
	patient, err := s.patientRepo.Get(ctx, req.PatientID)
	if err != nil {
		return nil, "", errors.BadRequest("patient does not exist", err)
	}

	items, treatments, err := s.resolveItems(ctx, req)
	if err != nil {
		return nil, "", err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, "", errors.Internal(err)
	}

	now := s.now()
	total := billing.Total(treatments)
	number := s.nextNumber(ctx, req.Type, settings, now)

	fields := map[string]string{
		"document_number":   number,
		"patient_name":      patient.FullName(),
		"date":              now.Format("02/01/2006"),
		"treatments":        describeItems(items),
		"total_amount":      fmt.Sprintf("%d", total),
		"amount_in_words":   billing.AmountInWords(total),
		"amount_in_figures": billing.AmountInFigures(total, settings.CurrencySymbol),
		"company_name":      settings.CompanyInfo.Name,
		"company_address":   settings.CompanyInfo.Address,
		"company_phone":     settings.CompanyInfo.Phone,
		"company_email":     settings.CompanyInfo.Email,
	}

	// Render before persisting: a template failure must not leave a
	// document record behind.
	html, err := s.renderer.Render(string(req.Type), fields)
	if err != nil {
		return nil, "", err
	}

	doc := &model.Document{
		PatientID: req.PatientID,
		Type:      req.Type,
		Number:    number,
		Data:      fields,
		Items:     items,
		Total:     total,
		Date:      now,
		Notes:     req.Notes,
		Status:    model.DocumentStatusDraft,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, "", errors.Internal(err)
	}

	generatedTotal.WithLabelValues(string(req.Type)).Inc()
	return doc, html, nil
}

func (s *Service) resolveItems(ctx context.Context, req *model.CreateDocumentRequest) ([]model.DocumentItem, []*model.Treatment, error) {
	items := make([]model.DocumentItem, 0, len(req.TreatmentIDs))
	treatments := make([]*model.Treatment, 0, len(req.TreatmentIDs))

	for _, id := range req.TreatmentIDs {
		treatment, err := s.treatmentRepo.Get(ctx, id)
		if err != nil {
			return nil, nil, errors.BadRequest(fmt.Sprintf("treatment %d does not exist", id), err)
		}
		if treatment.PatientID != req.PatientID {
			return nil, nil, errors.BadRequest(fmt.Sprintf("treatment %d belongs to another patient", id), nil)
		}
		treatments = append(treatments, treatment)
		items = append(items, model.DocumentItem{
			TreatmentID: treatment.ID,
			Description: treatment.Description,
			Cost:        treatment.Cost,
		})
	}
	return items, treatments, nil
}

// nextNumber builds FAC-2026-001 style numbers: configured prefix per
// type, then a per-year sequence over existing documents of that type.
func (s *Service) nextNumber(ctx context.Context, docType model.DocumentType, settings *model.Settings, now time.Time) string {
	prefix := "NH"
	switch docType {
	case model.DocumentTypeFacture:
		prefix = settings.DocumentPrefix.Invoice
	case model.DocumentTypeDevis:
		prefix = settings.DocumentPrefix.Quote
	}

	seq := 1
	if existing, err := s.repo.List(ctx); err == nil {
		for _, d := range existing {
			if d.Type == docType && d.Date.Year() == now.Year() {
				seq++
			}
		}
	}

	return fmt.Sprintf("%s-%d-%03d", prefix, now.Year(), seq)
}

func describeItems(items []model.DocumentItem) string {
	if len(items) == 0 {
		return "Consultation dentaire"
	}
	descriptions := make([]string, 0, len(items))
	for _, item := range items {
		descriptions = append(descriptions, item.Description)
	}
	return strings.Join(descriptions, ", ")
}

func (s *Service) GetDocument(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("document", err)
	}
	return doc, nil
}

func (s *Service) ListDocumentsByPatient(ctx context.Context, patientID int64) ([]*model.Document, error) {
	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		return nil, errors.NotFound("patient", err)
	}

	documents, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return documents, nil
}

// UpdateStatus is the only mutation a document accepts after creation.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.DocumentStatus) (*model.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("document", err)
	}

	doc.Status = status
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, errors.NotFound("document", err)
	}
	return doc, nil
}

// RenderPDF produces the printable PDF for a stored document.
func (s *Service) RenderPDF(ctx context.Context, id int64) ([]byte, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, errors.NotFound("document", err)
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return s.pdf.Render(doc, settings)
}
