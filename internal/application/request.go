package application

import (
	"errors"
	"math"
	"time"

	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrNotRequestOwner = errors.New("request belongs to another user")
	ErrForbidden       = errors.New("not allowed to view this request")
)

// timeframeDays maps the statistics timeframe parameter to a day offset.
// Unknown values fall back to 30d.
var timeframeDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

type RequestService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewRequestService(repos *repository.Repos) *RequestService {
	return &RequestService{Repos: repos, now: time.Now}
}

// List returns enriched requests matching the filter, newest first.
func (s *RequestService) List(filter request.ListFilter) ([]request.Enriched, error) {
	reqs, err := s.Repos.Request.ListFiltered(filter)
	if err != nil {
		return nil, err
	}
	return enrichRequests(s.Repos, reqs, s.now())
}

// Get loads one request; citizens may only see their own.
func (s *RequestService) Get(id, actorID uuid.UUID, isStaff bool) (*request.Enriched, error) {
	req, err := s.Repos.Request.FindByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if !isStaff && (req.UserID == nil || *req.UserID != actorID) {
		return nil, ErrForbidden
	}

	enriched, err := enrichRequests(s.Repos, []request.Request{req}, s.now())
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// Create opens a new request for the citizen, in draft unless submitted.
func (s *RequestService) Create(userID uuid.UUID, input request.CreateRequestDTO) (*request.Request, error) {
	status := request.StatusDraft
	if input.Submit {
		status = request.StatusPendingValidation
	}

	req := &request.Request{
		UserID:            &userID,
		RequestType:       request.RequestType(input.RequestType),
		Status:            status,
		LegalDeadline:     input.LegalDeadline,
		ExtractedMetadata: input.Metadata,
	}
	if err := s.Repos.Request.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Cancel hard-deletes a citizen's own request regardless of status, along
// with its documents and chat messages, in one transaction.
func (s *RequestService) Cancel(id, userID uuid.UUID) error {
	req, err := s.Repos.Request.FindByID(id)
	if err != nil {
		return ErrRequestNotFound
	}
	if req.UserID == nil || *req.UserID != userID {
		return ErrNotRequestOwner
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		ids := []uuid.UUID{req.ID}
		if err := tx.Document.DeleteByRequestIDs(ids); err != nil {
			return err
		}
		if err := tx.Chat.DeleteByRequestIDs(ids); err != nil {
			return err
		}
		return tx.Request.Delete(req.ID)
	})
}

// Statistics aggregates request counts over the timeframe. The approval
// rate is approved/total as a percentage rounded to one decimal, 0 when
// the window is empty.
func (s *RequestService) Statistics(timeframe string) (*request.Statistics, error) {
	days, ok := timeframeDays[timeframe]
	if !ok {
		days = timeframeDays["30d"]
	}
	since := s.now().AddDate(0, 0, -days)

	reqs, err := s.Repos.Request.ListCreatedSince(since)
	if err != nil {
		return nil, err
	}

	stats := &request.Statistics{
		Total:  int64(len(reqs)),
		ByType: make(map[string]int64),
	}
	for _, req := range reqs {
		switch req.Status {
		case request.StatusPendingValidation, request.StatusInReview:
			stats.Pending++
		case request.StatusApproved:
			stats.Approved++
		case request.StatusRejected:
			stats.Rejected++
		}
		stats.ByType[string(req.RequestType)]++
	}
	if stats.Total > 0 {
		rate := float64(stats.Approved) / float64(stats.Total) * 100
		stats.ApprovalRate = math.Round(rate*10) / 10
	}
	return stats, nil
}

// ListMine returns the citizen's own requests, enriched.
func (s *RequestService) ListMine(userID uuid.UUID) ([]request.Enriched, error) {
	reqs, err := s.Repos.Request.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return enrichRequests(s.Repos, reqs, s.now())
}
