package application

import (
	"testing"
	"time"

	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/aduportal/portal-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupRequestMocks(t *testing.T) (*RequestService, *mock.MockRequestRepo, *mock.MockProfileRepo, *mock.MockDocumentRepo, *mock.MockChatRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock.NewMockRequestRepo(ctrl)
	mockProfile := mock.NewMockProfileRepo(ctrl)
	mockDocument := mock.NewMockDocumentRepo(ctrl)
	mockChat := mock.NewMockChatRepo(ctrl)
	repos := &repository.Repos{
		Request:  mockRequest,
		Profile:  mockProfile,
		Document: mockDocument,
		Chat:     mockChat,
	}
	svc := NewRequestService(repos)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, mockRequest, mockProfile, mockDocument, mockChat
}

// --------------------- Statistics ---------------------
func TestStatistics_ApprovalRate(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	reqs := []request.Request{
		{Status: request.StatusApproved, RequestType: request.TypeBuildingPermit},
		{Status: request.StatusApproved, RequestType: request.TypeBuildingPermit},
		{Status: request.StatusRejected, RequestType: request.TypeUrbanismCert},
		{Status: request.StatusPendingValidation, RequestType: request.TypeOther},
	}
	mockRequest.EXPECT().ListCreatedSince(gomock.Any()).Return(reqs, nil)

	stats, err := svc.Statistics("30d")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.Approved)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, 50.0, stats.ApprovalRate)
	assert.Equal(t, int64(2), stats.ByType["building_permit"])
	assert.Equal(t, int64(1), stats.ByType["urbanism_certificate"])
}

func TestStatistics_RateRoundsToOneDecimal(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	reqs := []request.Request{
		{Status: request.StatusApproved, RequestType: request.TypeOther},
		{Status: request.StatusRejected, RequestType: request.TypeOther},
		{Status: request.StatusRejected, RequestType: request.TypeOther},
	}
	mockRequest.EXPECT().ListCreatedSince(gomock.Any()).Return(reqs, nil)

	stats, err := svc.Statistics("7d")
	assert.NoError(t, err)
	assert.Equal(t, 33.3, stats.ApprovalRate)
}

func TestStatistics_EmptyWindow(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	mockRequest.EXPECT().ListCreatedSince(gomock.Any()).Return(nil, nil)

	stats, err := svc.Statistics("90d")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, 0.0, stats.ApprovalRate)
}

func TestStatistics_UnknownTimeframeFallsBackTo30d(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	want := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -30)
	mockRequest.EXPECT().ListCreatedSince(want).Return(nil, nil)

	_, err := svc.Statistics("whatever")
	assert.NoError(t, err)
}

// --------------------- Get ---------------------
func TestGet_CitizenCannotSeeOthersRequest(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	ownerID := uuid.New()
	req := request.Request{ID: uuid.New(), UserID: &ownerID}
	mockRequest.EXPECT().FindByID(req.ID).Return(req, nil)

	_, err := svc.Get(req.ID, uuid.New(), false)
	assert.Equal(t, ErrForbidden, err)
}

func TestGet_StaffSeesAnyRequest(t *testing.T) {
	svc, mockRequest, mockProfile, mockDocument, _ := setupRequestMocks(t)

	ownerID := uuid.New()
	req := request.Request{ID: uuid.New(), UserID: &ownerID}
	owner := profile.Profile{ID: ownerID, Email: "owner@example.com"}

	mockRequest.EXPECT().FindByID(req.ID).Return(req, nil)
	mockProfile.EXPECT().FindByIDs([]uuid.UUID{ownerID}).Return([]profile.Profile{owner}, nil)
	mockDocument.EXPECT().CountByRequestIDs([]uuid.UUID{req.ID}).Return(map[uuid.UUID]int64{}, nil)

	enriched, err := svc.Get(req.ID, uuid.New(), true)
	assert.NoError(t, err)
	assert.Equal(t, "owner@example.com", enriched.User.Email)
}

// --------------------- List / enrichment ---------------------
func TestList_MissingRequesterBecomesUnknown(t *testing.T) {
	svc, mockRequest, mockProfile, mockDocument, _ := setupRequestMocks(t)

	goneUserID := uuid.New()
	req := request.Request{ID: uuid.New(), UserID: &goneUserID}

	mockRequest.EXPECT().ListFiltered(gomock.Any()).Return([]request.Request{req}, nil)
	mockProfile.EXPECT().FindByIDs([]uuid.UUID{goneUserID}).Return(nil, nil)
	mockDocument.EXPECT().CountByRequestIDs([]uuid.UUID{req.ID}).Return(map[uuid.UUID]int64{req.ID: 1}, nil)

	enriched, err := svc.List(request.ListFilter{})
	assert.NoError(t, err)
	assert.Len(t, enriched, 1)
	assert.Equal(t, "unknown", enriched[0].User.Email)
	assert.Nil(t, enriched[0].User.FullName)
	assert.Nil(t, enriched[0].AssignedClerk)
	assert.Equal(t, int64(1), enriched[0].DocumentsCount)
}

func TestList_EmptyResult(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	mockRequest.EXPECT().ListFiltered(gomock.Any()).Return(nil, nil)

	enriched, err := svc.List(request.ListFilter{})
	assert.NoError(t, err)
	assert.Empty(t, enriched)
}

// --------------------- Create ---------------------
func TestCreate_DraftByDefault(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	mockRequest.EXPECT().Create(gomock.Any()).Return(nil)

	req, err := svc.Create(uuid.New(), request.CreateRequestDTO{RequestType: "building_permit"})
	assert.NoError(t, err)
	assert.Equal(t, request.StatusDraft, req.Status)
}

func TestCreate_SubmitGoesToPending(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	mockRequest.EXPECT().Create(gomock.Any()).Return(nil)

	req, err := svc.Create(uuid.New(), request.CreateRequestDTO{RequestType: "building_permit", Submit: true})
	assert.NoError(t, err)
	assert.Equal(t, request.StatusPendingValidation, req.Status)
}

// --------------------- Cancel ---------------------
func TestCancel_NotOwner(t *testing.T) {
	svc, mockRequest, _, _, _ := setupRequestMocks(t)

	ownerID := uuid.New()
	req := request.Request{ID: uuid.New(), UserID: &ownerID}
	mockRequest.EXPECT().FindByID(req.ID).Return(req, nil)

	err := svc.Cancel(req.ID, uuid.New())
	assert.Equal(t, ErrNotRequestOwner, err)
}

func TestCancel_DeletesDependentsFirst(t *testing.T) {
	svc, mockRequest, _, mockDocument, mockChat := setupRequestMocks(t)

	ownerID := uuid.New()
	req := request.Request{ID: uuid.New(), UserID: &ownerID}
	ids := []uuid.UUID{req.ID}

	mockRequest.EXPECT().FindByID(req.ID).Return(req, nil)
	mockDocument.EXPECT().DeleteByRequestIDs(ids).Return(nil)
	mockChat.EXPECT().DeleteByRequestIDs(ids).Return(nil)
	mockRequest.EXPECT().Delete(req.ID).Return(nil)

	err := svc.Cancel(req.ID, ownerID)
	assert.NoError(t, err)
}
