package render

import (
	"bytes"
	"fmt"

	"github.com/signintech/gopdf"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/pkg/errors"
)

var documentTitles = map[model.DocumentType]string{
	model.DocumentTypeFacture:       "Facture",
	model.DocumentTypeDevis:         "Devis",
	model.DocumentTypeNoteHonoraire: "Note d'honoraire",
}

// PDFRenderer writes stored billing documents as printable PDFs.
type PDFRenderer struct {
	fontPaths []string
}

func NewPDFRenderer(fontPaths []string) *PDFRenderer {
	return &PDFRenderer{fontPaths: fontPaths}
}

// Render lays out the document on an A4 page: clinic header, document
// number and date, billed items, then the total in figures and words.
func (r *PDFRenderer) Render(doc *model.Document, settings *model.Settings) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := r.loadFont(&pdf); err != nil {
		return nil, errors.Rendering(err)
	}

	title := documentTitles[doc.Type]
	if title == "" {
		title = string(doc.Type)
	}

	if err := pdf.SetFont("document", "", 20); err != nil {
		return nil, errors.Rendering(err)
	}
	pdf.Cell(nil, fmt.Sprintf("%s %s", title, doc.Number))
	pdf.Br(28)

	if err := pdf.SetFont("document", "", 11); err != nil {
		return nil, errors.Rendering(err)
	}
	if settings.CompanyInfo.Name != "" {
		pdf.Cell(nil, settings.CompanyInfo.Name)
		pdf.Br(14)
	}
	if settings.CompanyInfo.Address != "" {
		pdf.Cell(nil, settings.CompanyInfo.Address)
		pdf.Br(14)
	}
	pdf.Br(8)

	pdf.Cell(nil, fmt.Sprintf("Date : %s", doc.Date.Format("02/01/2006")))
	pdf.Br(14)
	if name := doc.Data["patient_name"]; name != "" {
		pdf.Cell(nil, fmt.Sprintf("Patient : %s", name))
		pdf.Br(20)
	}

	if err := pdf.SetFont("document", "", 13); err != nil {
		return nil, errors.Rendering(err)
	}
	pdf.Cell(nil, "Soins")
	pdf.Br(16)

	if err := pdf.SetFont("document", "", 11); err != nil {
		return nil, errors.Rendering(err)
	}
	if len(doc.Items) == 0 {
		pdf.Cell(nil, fmt.Sprintf("- Consultation dentaire : %d,00 %s", doc.Total, settings.CurrencySymbol))
		pdf.Br(14)
	}
	for _, item := range doc.Items {
		line := fmt.Sprintf("- %s : %d,00 %s", item.Description, item.Cost, settings.CurrencySymbol)
		lines, _ := pdf.SplitText(line, 500)
		for _, l := range lines {
			pdf.Cell(nil, l)
			pdf.Br(13)
		}
	}
	pdf.Br(12)

	if err := pdf.SetFont("document", "", 12); err != nil {
		return nil, errors.Rendering(err)
	}
	pdf.Cell(nil, fmt.Sprintf("Total : %s", doc.Data["amount_in_figures"]))
	pdf.Br(15)
	if words := doc.Data["amount_in_words"]; words != "" {
		pdf.Cell(nil, fmt.Sprintf("Arrêté la présente à la somme de : %s", words))
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, errors.Rendering(fmt.Errorf("failed to write PDF: %w", err))
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) loadFont(pdf *gopdf.GoPdf) error {
	var lastErr error
	for _, path := range r.fontPaths {
		err := pdf.AddTTFFont("document", path)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return fmt.Errorf("no font paths configured")
	}
	return fmt.Errorf("no usable TTF font found in configured paths: %w", lastErr)
}
