package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aduportal/portal-go/internal/domain/activity"
	"github.com/aduportal/portal-go/internal/domain/document"
	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/aduportal/portal-go/internal/storage"
	"github.com/aduportal/portal-go/pkg/utils"
	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("document not found")

const approvedByAdminMessage = "Approved manually by administrator"

type DocumentService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
}

func NewDocumentService(repos *repository.Repos, store storage.ObjectStore) *DocumentService {
	return &DocumentService{Repos: repos, Store: store}
}

// Upload stores the file bytes in object storage and records the document
// row in pending validation state.
func (s *DocumentService) Upload(ctx context.Context, requestID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*document.Document, error) {
	if _, err := s.Repos.Request.FindByID(requestID); err != nil {
		return nil, ErrRequestNotFound
	}

	objectName := path.Join(requestID.String(), fmt.Sprintf("%s-%s", uuid.New().String(), fileName))
	storagePath, err := s.Store.Put(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store document file: %w", err)
	}

	doc := &document.Document{
		RequestID:        requestID,
		FileName:         fileName,
		StoragePath:      storagePath,
		ContentType:      contentType,
		SizeBytes:        size,
		ValidationStatus: document.ValidationPending,
	}
	if err := s.Repos.Document.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Approve marks a document as manually approved by an administrator. The
// activity log insert is best-effort: its failure never rolls back the
// decision.
func (s *DocumentService) Approve(docID, adminID uuid.UUID) (*document.Document, error) {
	doc, err := s.Repos.Document.FindByID(docID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	doc.ValidationStatus = document.ValidationApproved
	doc.ValidationMessage = approvedByAdminMessage
	if err := s.Repos.Document.Save(&doc); err != nil {
		return nil, err
	}

	utils.LogActivity(adminID, activity.ActionDocumentApprove, doc.ID.String(), map[string]interface{}{
		"document_type":  doc.DocumentTypeAI,
		"file_name":      doc.FileName,
		"admin_override": true,
	}, s.Repos.Activity)

	return &doc, nil
}

// Reject marks a document as rejected with a mandatory reason.
func (s *DocumentService) Reject(docID, adminID uuid.UUID, reason string) (*document.Document, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	doc, err := s.Repos.Document.FindByID(docID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}

	doc.ValidationStatus = document.ValidationRejected
	doc.ValidationMessage = reason
	if err := s.Repos.Document.Save(&doc); err != nil {
		return nil, err
	}

	utils.LogActivity(adminID, activity.ActionDocumentReject, doc.ID.String(), map[string]interface{}{
		"document_type":    doc.DocumentTypeAI,
		"file_name":        doc.FileName,
		"rejection_reason": reason,
		"admin_override":   true,
	}, s.Repos.Activity)

	return &doc, nil
}

// ListByRequest returns a request's documents in upload order.
func (s *DocumentService) ListByRequest(requestID uuid.UUID) ([]document.Document, error) {
	return s.Repos.Document.ListByRequest(requestID)
}

// RejectedDocuments lists the latest rejected documents joined with their
// request and requester. A missing requester degrades to the "unknown"
// placeholder; a missing request leaves the join null.
func (s *DocumentService) RejectedDocuments(limit int) ([]document.Enriched, error) {
	docs, err := s.Repos.Document.ListRejected(limit)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return []document.Enriched{}, nil
	}

	requestIDs := make([]uuid.UUID, 0, len(docs))
	seenReq := make(map[uuid.UUID]bool)
	for _, doc := range docs {
		if !seenReq[doc.RequestID] {
			seenReq[doc.RequestID] = true
			requestIDs = append(requestIDs, doc.RequestID)
		}
	}

	reqs, err := s.Repos.Request.FindByIDs(requestIDs)
	if err != nil {
		return nil, err
	}
	reqMap := make(map[uuid.UUID]request.Request, len(reqs))
	userIDs := make([]uuid.UUID, 0, len(reqs))
	for _, req := range reqs {
		reqMap[req.ID] = req
		if req.UserID != nil {
			userIDs = append(userIDs, *req.UserID)
		}
	}

	profiles, err := s.Repos.Profile.FindByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	profileMap := make(map[uuid.UUID]*profile.Ref, len(profiles))
	for i := range profiles {
		profileMap[profiles[i].ID] = profiles[i].ToRef()
	}

	enriched := make([]document.Enriched, 0, len(docs))
	for _, doc := range docs {
		item := document.Enriched{Document: doc}
		if req, ok := reqMap[doc.RequestID]; ok {
			ref := &document.RequestRef{
				ID:          req.ID,
				RequestType: string(req.RequestType),
				User:        profile.UnknownRef(),
			}
			if req.UserID != nil {
				if userRef, found := profileMap[*req.UserID]; found {
					ref.User = userRef
				}
			}
			item.Request = ref
		}
		enriched = append(enriched, item)
	}
	return enriched, nil
}
