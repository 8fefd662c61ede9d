package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mkadiri/dentassist-api/pkg/errors"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/render"
	"github.com/mkadiri/dentassist-api/internal/repository/memory"
)

type fixture struct {
	svc           *Service
	documentRepo  *memory.DocumentRepository
	treatmentRepo *memory.TreatmentRepository
	patient       *model.Patient
}

func newFixture(t *testing.T, templates map[string]string) *fixture {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	for name, body := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".html"), []byte(body), 0o644))
	}

	patientRepo := memory.NewPatientRepository()
	patient := &model.Patient{FirstName: "Yassine", LastName: "Tazi", CIN: "YT1"}
	require.NoError(t, patientRepo.Create(ctx, patient))

	documentRepo := memory.NewDocumentRepository()
	treatmentRepo := memory.NewTreatmentRepository()
	settingsRepo := memory.NewSettingsRepository(model.Settings{
		Currency:       "EUR",
		CurrencySymbol: "€",
		DocumentPrefix: model.DocumentPrefix{Invoice: "FAC", Quote: "DEV"},
		CompanyInfo:    model.CompanyInfo{Name: "Cabinet Dentaire Atlas"},
	})

	renderer := render.NewRenderer(render.Config{TemplateDir: dir, CacheTTL: time.Minute})
	svc := NewService(documentRepo, patientRepo, treatmentRepo, settingsRepo, renderer, render.NewPDFRenderer(nil))
	svc.now = func() time.Time { return time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC) }

	return &fixture{
		svc:           svc,
		documentRepo:  documentRepo,
		treatmentRepo: treatmentRepo,
		patient:       patient,
	}
}

func TestCreateDocumentWithoutTreatmentsUsesConsultationFee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]string{
		"facture": "<p>{{document_number}} {{patient_name}} {{total_amount}} {{amount_in_words}}</p>",
	})

	doc, html, err := f.svc.CreateDocument(ctx, &model.CreateDocumentRequest{
		PatientID: f.patient.ID,
		Type:      model.DocumentTypeFacture,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), doc.Total)
	assert.Equal(t, "FAC-2026-001", doc.Number)
	assert.Equal(t, model.DocumentStatusDraft, doc.Status)
	assert.Equal(t, "Consultation dentaire", doc.Data["treatments"])
	assert.Contains(t, html, "FAC-2026-001")
	assert.Contains(t, html, "Yassine Tazi")
	assert.Contains(t, html, "Cent euros")
}

func TestCreateDocumentSumsSelectedTreatments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]string{
		"devis": "{{treatments}} / {{total_amount}}",
	})

	t1 := &model.Treatment{PatientID: f.patient.ID, Description: "Implant", Cost: 800}
	t2 := &model.Treatment{PatientID: f.patient.ID, Description: "Détartrage", Cost: 50}
	require.NoError(t, f.treatmentRepo.Create(ctx, t1))
	require.NoError(t, f.treatmentRepo.Create(ctx, t2))

	doc, html, err := f.svc.CreateDocument(ctx, &model.CreateDocumentRequest{
		PatientID:    f.patient.ID,
		Type:         model.DocumentTypeDevis,
		TreatmentIDs: []int64{t1.ID, t2.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(850), doc.Total)
	assert.Equal(t, "DEV-2026-001", doc.Number)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Implant, Détartrage / 850", html)
}

func TestDocumentNumbersSequencePerType(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]string{
		"facture": "x",
		"devis":   "y",
	})

	first, _, err := f.svc.CreateDocument(ctx, &model.CreateDocumentRequest{
		PatientID: f.patient.ID, Type: model.DocumentTypeFacture,
	})
	require.NoError(t, err)
	second, _, err := f.svc.CreateDocument(ctx, &model.CreateDocumentRequest{
		PatientID: f.patient.ID, Type: model.DocumentTypeFacture,
	})
	require.NoError(t, err)
	quote, _, err := f.svc.CreateDocument(ctx, &model.CreateDocumentRequest{
		PatientID: f.patient.ID, Type: model.DocumentTypeDevis,
	})
	require.NoError(t, err)

	assert.Equal(t, "FAC-2026-001", first.Number)
	assert.Equal(t, "FAC-2026-002", second.Number)
	assert.Equal(t, "DEV-2026-001", quote.Number)
}

func TestRenderFailurePersistsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil) // no templates on disk

	_, _, err := f.svc.CreateDocument(ctx, &model.CreateDocumentRequest{
		PatientID: f.patient.ID,
		Type:      model.DocumentTypeFacture,
	})
	require.Error(t, err)

	docs, err := f.documentRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCreateDocumentRejectsForeignTreatment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]string{"facture": "x"})

	other := &model.Treatment{PatientID: f.patient.ID + 100, Description: "Couronne", Cost: 400}
	require.NoError(t, f.treatmentRepo.Create(ctx, other))

	_, _, err := f.svc.CreateDocument(ctx, &model.CreateDocumentRequest{
		PatientID:    f.patient.ID,
		Type:         model.DocumentTypeFacture,
		TreatmentIDs: []int64{other.ID},
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[string]string{"facture": "x"})

	doc, _, err := f.svc.CreateDocument(ctx, &model.CreateDocumentRequest{
		PatientID: f.patient.ID,
		Type:      model.DocumentTypeFacture,
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(ctx, doc.ID, model.DocumentStatusFinal)
	require.NoError(t, err)
	assert.Equal(t, model.DocumentStatusFinal, updated.Status)

	_, err = f.svc.UpdateStatus(ctx, doc.ID+100, model.DocumentStatusFinal)
	assert.True(t, apperrors.IsNotFound(err))
}
