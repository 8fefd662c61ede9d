package memory

import (
	"context"

	"github.com/mkadiri/dentassist-api/internal/model"
	"github.com/mkadiri/dentassist-api/internal/repository"
)

type DocumentRepository struct {
	rows *table[model.Document]
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{rows: newTable[model.Document]()}
}

func (r *DocumentRepository) Create(_ context.Context, document *model.Document) error {
	*document = r.rows.create(func(id int64) model.Document {
		document.ID = id
		return *document
	})
	return nil
}

func (r *DocumentRepository) Get(_ context.Context, id int64) (*model.Document, error) {
	row, ok := r.rows.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (r *DocumentRepository) Update(_ context.Context, document *model.Document) error {
	if !r.rows.update(document.ID, *document) {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) List(_ context.Context) ([]*model.Document, error) {
	rows := r.rows.list()
	documents := make([]*model.Document, len(rows))
	for i := range rows {
		documents[i] = &rows[i]
	}
	return documents, nil
}

func (r *DocumentRepository) ListByPatient(_ context.Context, patientID int64) ([]*model.Document, error) {
	var documents []*model.Document
	for _, row := range r.rows.list() {
		row := row
		if row.PatientID == patientID {
			documents = append(documents, &row)
		}
	}
	return documents, nil
}
