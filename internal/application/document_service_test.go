package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aduportal/portal-go/internal/domain/document"
	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/aduportal/portal-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type fakeStore struct {
	lastObject string
	putErr     error
}

func (f *fakeStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	f.lastObject = objectName
	if f.putErr != nil {
		return "", f.putErr
	}
	return "bucket/" + objectName, nil
}

func (f *fakeStore) Remove(ctx context.Context, objectName string) error {
	return nil
}

func setupDocumentMocks(t *testing.T) (*DocumentService, *mock.MockDocumentRepo, *mock.MockRequestRepo, *mock.MockProfileRepo, *mock.MockActivityRepo, *fakeStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockDocument := mock.NewMockDocumentRepo(ctrl)
	mockRequest := mock.NewMockRequestRepo(ctrl)
	mockProfile := mock.NewMockProfileRepo(ctrl)
	mockActivity := mock.NewMockActivityRepo(ctrl)
	repos := &repository.Repos{
		Document: mockDocument,
		Request:  mockRequest,
		Profile:  mockProfile,
		Activity: mockActivity,
	}
	store := &fakeStore{}
	svc := NewDocumentService(repos, store)
	return svc, mockDocument, mockRequest, mockProfile, mockActivity, store
}

// --------------------- Upload ---------------------
func TestUpload_RequestMustExist(t *testing.T) {
	svc, _, mockRequest, _, _, _ := setupDocumentMocks(t)

	requestID := uuid.New()
	mockRequest.EXPECT().FindByID(requestID).Return(request.Request{}, gorm.ErrRecordNotFound)

	_, err := svc.Upload(context.Background(), requestID, "plan.pdf", "application/pdf", 10, strings.NewReader("0123456789"))
	assert.Equal(t, ErrRequestNotFound, err)
}

func TestUpload_StoresUnderRequestPrefix(t *testing.T) {
	svc, mockDocument, mockRequest, _, _, store := setupDocumentMocks(t)

	requestID := uuid.New()
	mockRequest.EXPECT().FindByID(requestID).Return(request.Request{ID: requestID}, nil)
	mockDocument.EXPECT().Create(gomock.Any()).Return(nil)

	doc, err := svc.Upload(context.Background(), requestID, "plan.pdf", "application/pdf", 10, strings.NewReader("0123456789"))
	assert.NoError(t, err)
	assert.Equal(t, document.ValidationPending, doc.ValidationStatus)
	assert.Equal(t, "plan.pdf", doc.FileName)
	assert.True(t, strings.HasPrefix(store.lastObject, requestID.String()+"/"))
	assert.True(t, strings.HasSuffix(store.lastObject, "-plan.pdf"))
}

// --------------------- Approve / Reject ---------------------
func TestApproveDocument_RecordsOverride(t *testing.T) {
	svc, mockDocument, _, _, mockActivity, _ := setupDocumentMocks(t)

	docID := uuid.New()
	adminID := uuid.New()
	doc := document.Document{ID: docID, FileName: "plan.pdf", ValidationStatus: document.ValidationPending}

	mockDocument.EXPECT().FindByID(docID).Return(doc, nil)
	mockDocument.EXPECT().Save(gomock.Any()).Return(nil)
	mockActivity.EXPECT().CreateLog(gomock.Any()).Return(nil)

	updated, err := svc.Approve(docID, adminID)
	assert.NoError(t, err)
	assert.Equal(t, document.ValidationApproved, updated.ValidationStatus)
	assert.Equal(t, "Approved manually by administrator", updated.ValidationMessage)
}

func TestApproveDocument_LogFailureDoesNotFailDecision(t *testing.T) {
	svc, mockDocument, _, _, mockActivity, _ := setupDocumentMocks(t)

	docID := uuid.New()
	doc := document.Document{ID: docID, ValidationStatus: document.ValidationPending}

	mockDocument.EXPECT().FindByID(docID).Return(doc, nil)
	mockDocument.EXPECT().Save(gomock.Any()).Return(nil)
	mockActivity.EXPECT().CreateLog(gomock.Any()).Return(errors.New("activity store down"))

	updated, err := svc.Approve(docID, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, document.ValidationApproved, updated.ValidationStatus)
}

func TestRejectDocument_RequiresReason(t *testing.T) {
	svc, _, _, _, _, _ := setupDocumentMocks(t)

	_, err := svc.Reject(uuid.New(), uuid.New(), "")
	assert.Equal(t, ErrReasonRequired, err)
}

func TestRejectDocument_RecordsReason(t *testing.T) {
	svc, mockDocument, _, _, mockActivity, _ := setupDocumentMocks(t)

	docID := uuid.New()
	doc := document.Document{ID: docID, ValidationStatus: document.ValidationPending}

	mockDocument.EXPECT().FindByID(docID).Return(doc, nil)
	mockDocument.EXPECT().Save(gomock.Any()).Return(nil)
	mockActivity.EXPECT().CreateLog(gomock.Any()).Return(nil)

	updated, err := svc.Reject(docID, uuid.New(), "illegible scan")
	assert.NoError(t, err)
	assert.Equal(t, document.ValidationRejected, updated.ValidationStatus)
	assert.Equal(t, "illegible scan", updated.ValidationMessage)
}

// --------------------- RejectedDocuments ---------------------
func TestRejectedDocuments_JoinsRequestAndRequester(t *testing.T) {
	svc, mockDocument, mockRequest, mockProfile, _, _ := setupDocumentMocks(t)

	userID := uuid.New()
	req := request.Request{ID: uuid.New(), UserID: &userID, RequestType: request.TypeBuildingPermit}
	doc := document.Document{ID: uuid.New(), RequestID: req.ID, ValidationStatus: document.ValidationRejected}
	requester := profile.Profile{ID: userID, Email: "citizen@example.com"}

	mockDocument.EXPECT().ListRejected(20).Return([]document.Document{doc}, nil)
	mockRequest.EXPECT().FindByIDs([]uuid.UUID{req.ID}).Return([]request.Request{req}, nil)
	mockProfile.EXPECT().FindByIDs([]uuid.UUID{userID}).Return([]profile.Profile{requester}, nil)

	enriched, err := svc.RejectedDocuments(20)
	assert.NoError(t, err)
	assert.Len(t, enriched, 1)
	assert.Equal(t, "building_permit", enriched[0].Request.RequestType)
	assert.Equal(t, "citizen@example.com", enriched[0].Request.User.Email)
}

func TestRejectedDocuments_MissingRequesterBecomesUnknown(t *testing.T) {
	svc, mockDocument, mockRequest, mockProfile, _, _ := setupDocumentMocks(t)

	goneUserID := uuid.New()
	req := request.Request{ID: uuid.New(), UserID: &goneUserID}
	doc := document.Document{ID: uuid.New(), RequestID: req.ID, ValidationStatus: document.ValidationRejected}

	mockDocument.EXPECT().ListRejected(10).Return([]document.Document{doc}, nil)
	mockRequest.EXPECT().FindByIDs([]uuid.UUID{req.ID}).Return([]request.Request{req}, nil)
	mockProfile.EXPECT().FindByIDs([]uuid.UUID{goneUserID}).Return(nil, nil)

	enriched, err := svc.RejectedDocuments(10)
	assert.NoError(t, err)
	assert.Equal(t, "unknown", enriched[0].Request.User.Email)
}
