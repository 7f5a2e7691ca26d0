package repository

import (
	"github.com/aduportal/portal-go/internal/domain/document"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	Create(doc *document.Document) error
	FindByID(id uuid.UUID) (document.Document, error)
	Save(doc *document.Document) error
	ListByRequest(requestID uuid.UUID) ([]document.Document, error)
	ListRejected(limit int) ([]document.Document, error)

	// CountByRequestIDs returns document counts keyed by request id, one
	// grouped query instead of a count per request.
	CountByRequestIDs(requestIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	DeleteByRequestIDs(requestIDs []uuid.UUID) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{db: db}
}

func (r *DBDocumentRepo) Create(doc *document.Document) error {
	return r.db.Create(doc).Error
}

func (r *DBDocumentRepo) FindByID(id uuid.UUID) (document.Document, error) {
	var doc document.Document
	err := r.db.First(&doc, "id = ?", id).Error
	return doc, err
}

func (r *DBDocumentRepo) Save(doc *document.Document) error {
	return r.db.Save(doc).Error
}

func (r *DBDocumentRepo) ListByRequest(requestID uuid.UUID) ([]document.Document, error) {
	var docs []document.Document
	err := r.db.Where("request_id = ?", requestID).Order("uploaded_at ASC").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) ListRejected(limit int) ([]document.Document, error) {
	var docs []document.Document
	err := r.db.
		Where("validation_status = ?", document.ValidationRejected).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) CountByRequestIDs(requestIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(requestIDs))
	if len(requestIDs) == 0 {
		return counts, nil
	}

	type row struct {
		RequestID uuid.UUID
		Total     int64
	}
	var rows []row
	err := r.db.Model(&document.Document{}).
		Select("request_id, COUNT(*) AS total").
		Where("request_id IN ?", requestIDs).
		Group("request_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rec := range rows {
		counts[rec.RequestID] = rec.Total
	}
	return counts, nil
}

func (r *DBDocumentRepo) DeleteByRequestIDs(requestIDs []uuid.UUID) error {
	if len(requestIDs) == 0 {
		return nil
	}
	return r.db.Where("request_id IN ?", requestIDs).Delete(&document.Document{}).Error
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{db: tx}
}
