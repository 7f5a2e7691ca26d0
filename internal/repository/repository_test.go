package repository

import (
	"testing"
	"time"

	"github.com/aduportal/portal-go/internal/domain/activity"
	"github.com/aduportal/portal-go/internal/domain/chat"
	"github.com/aduportal/portal-go/internal/domain/document"
	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepos(t *testing.T) *Repos {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&profile.Profile{},
		&request.Request{},
		&document.Document{},
		&chat.Message{},
		&activity.Log{},
	))
	return NewRepositories(db)
}

func seedRequest(t *testing.T, repos *Repos, status request.Status) *request.Request {
	req := &request.Request{Status: status, RequestType: request.TypeBuildingPermit}
	require.NoError(t, repos.Request.Create(req))
	return req
}

func seedClerk(t *testing.T, repos *Repos, active bool) *profile.Profile {
	p := &profile.Profile{
		Email:        uuid.New().String() + "@example.com",
		Role:         profile.RoleClerk,
		IsActive:     active,
		PasswordHash: "x",
	}
	require.NoError(t, repos.Profile.Create(p))
	return p
}

// --------------------- conditional updates ---------------------
func TestClaimIfPending_SingleWinner(t *testing.T) {
	repos := newTestRepos(t)
	req := seedRequest(t, repos, request.StatusPendingValidation)

	first, err := repos.Request.ClaimIfPending(req.ID, uuid.New())
	require.NoError(t, err)
	assert.True(t, first)

	second, err := repos.Request.ClaimIfPending(req.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, second)

	got, err := repos.Request.FindByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusInReview, got.Status)
	assert.NotNil(t, got.AssignedClerkID)
}

func TestClaimIfPending_RefusesNonPending(t *testing.T) {
	repos := newTestRepos(t)
	req := seedRequest(t, repos, request.StatusDraft)

	ok, err := repos.Request.ClaimIfPending(req.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAssignIfUnassigned_KeepsStatusPending(t *testing.T) {
	repos := newTestRepos(t)
	req := seedRequest(t, repos, request.StatusPendingValidation)
	clerkID := uuid.New()

	ok, err := repos.Request.AssignIfUnassigned(req.ID, clerkID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repos.Request.FindByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPendingValidation, got.Status)
	assert.Equal(t, clerkID, *got.AssignedClerkID)

	again, err := repos.Request.AssignIfUnassigned(req.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, again)
}

// --------------------- queries ---------------------
func TestFindUnassignedPending_OldestFirst(t *testing.T) {
	repos := newTestRepos(t)

	old := &request.Request{Status: request.StatusPendingValidation, RequestType: request.TypeOther, CreatedAt: time.Now().Add(-2 * time.Hour)}
	newer := &request.Request{Status: request.StatusPendingValidation, RequestType: request.TypeOther, CreatedAt: time.Now().Add(-1 * time.Hour)}
	require.NoError(t, repos.Request.Create(newer))
	require.NoError(t, repos.Request.Create(old))

	assigned := seedRequest(t, repos, request.StatusPendingValidation)
	_, err := repos.Request.AssignIfUnassigned(assigned.ID, uuid.New())
	require.NoError(t, err)
	seedRequest(t, repos, request.StatusDraft)

	pending, err := repos.Request.FindUnassignedPending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, old.ID, pending[0].ID)
	assert.Equal(t, newer.ID, pending[1].ID)
}

func TestCountOpenByClerk_ExcludesClosed(t *testing.T) {
	repos := newTestRepos(t)
	clerkID := uuid.New()

	for _, status := range []request.Status{
		request.StatusPendingValidation,
		request.StatusInReview,
		request.StatusApproved,
		request.StatusRejected,
	} {
		req := &request.Request{Status: status, RequestType: request.TypeOther, AssignedClerkID: &clerkID}
		require.NoError(t, repos.Request.Create(req))
	}

	count, err := repos.Request.CountOpenByClerk(clerkID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestListUrgent_FiltersAndOrders(t *testing.T) {
	repos := newTestRepos(t)
	now := time.Now()

	soon := now.Add(24 * time.Hour)
	sooner := now.Add(2 * time.Hour)
	far := now.Add(30 * 24 * time.Hour)

	inWindow := &request.Request{Status: request.StatusPendingValidation, RequestType: request.TypeOther, LegalDeadline: &soon}
	mostUrgent := &request.Request{Status: request.StatusInReview, RequestType: request.TypeOther, LegalDeadline: &sooner}
	outOfWindow := &request.Request{Status: request.StatusPendingValidation, RequestType: request.TypeOther, LegalDeadline: &far}
	closed := &request.Request{Status: request.StatusApproved, RequestType: request.TypeOther, LegalDeadline: &sooner}
	noDeadline := &request.Request{Status: request.StatusPendingValidation, RequestType: request.TypeOther}
	for _, req := range []*request.Request{inWindow, mostUrgent, outOfWindow, closed, noDeadline} {
		require.NoError(t, repos.Request.Create(req))
	}

	urgent, err := repos.Request.ListUrgent(now.Add(3 * 24 * time.Hour))
	require.NoError(t, err)
	require.Len(t, urgent, 2)
	assert.Equal(t, mostUrgent.ID, urgent[0].ID)
	assert.Equal(t, inWindow.ID, urgent[1].ID)
}

func TestListFiltered_SearchMatchesType(t *testing.T) {
	repos := newTestRepos(t)

	permit := &request.Request{Status: request.StatusDraft, RequestType: request.TypeBuildingPermit}
	cert := &request.Request{Status: request.StatusDraft, RequestType: request.TypeUrbanismCert}
	require.NoError(t, repos.Request.Create(permit))
	require.NoError(t, repos.Request.Create(cert))

	found, err := repos.Request.ListFiltered(request.ListFilter{Search: "PERMIT"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, permit.ID, found[0].ID)
}

func TestListActiveClerks_SkipsInactiveAndCitizens(t *testing.T) {
	repos := newTestRepos(t)

	active := seedClerk(t, repos, true)
	seedClerk(t, repos, false)
	citizen := &profile.Profile{Email: "c@example.com", Role: profile.RoleCitizen, IsActive: true, PasswordHash: "x"}
	require.NoError(t, repos.Profile.Create(citizen))

	clerks, err := repos.Profile.ListActiveClerks()
	require.NoError(t, err)
	require.Len(t, clerks, 1)
	assert.Equal(t, active.ID, clerks[0].ID)
}

func TestCountByRequestIDs_GroupsPerRequest(t *testing.T) {
	repos := newTestRepos(t)

	reqA := seedRequest(t, repos, request.StatusDraft)
	reqB := seedRequest(t, repos, request.StatusDraft)

	for i := 0; i < 2; i++ {
		doc := &document.Document{RequestID: reqA.ID, FileName: "a.pdf", ValidationStatus: document.ValidationPending}
		require.NoError(t, repos.Document.Create(doc))
	}

	counts, err := repos.Document.CountByRequestIDs([]uuid.UUID{reqA.ID, reqB.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[reqA.ID])
	assert.Equal(t, int64(0), counts[reqB.ID])
}

func TestDeleteOlderThan_PrunesOnlyStale(t *testing.T) {
	repos := newTestRepos(t)

	stale := &activity.Log{UserID: uuid.New(), ActionType: activity.ActionDocumentApprove, CreatedAt: time.Now().AddDate(0, 0, -100)}
	fresh := &activity.Log{UserID: uuid.New(), ActionType: activity.ActionDocumentApprove}
	require.NoError(t, repos.Activity.CreateLog(stale))
	require.NoError(t, repos.Activity.CreateLog(fresh))

	removed, err := repos.Activity.DeleteOlderThan(time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	remaining, err := repos.Activity.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}

// --------------------- transactions ---------------------
func TestExecTx_RollsBackOnError(t *testing.T) {
	repos := newTestRepos(t)

	err := repos.ExecTx(func(tx *Repos) error {
		seedRequest(t, tx, request.StatusDraft)
		return assert.AnError
	})
	assert.Error(t, err)

	reqs, err := repos.Request.ListFiltered(request.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, reqs)
}
