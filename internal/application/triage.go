package application

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrNoEligibleClerks  = errors.New("no eligible clerks available")
	ErrAlreadyAssigned   = errors.New("request is already claimed or no longer pending")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotAssignedClerk  = errors.New("request is assigned to another clerk")
	ErrReasonRequired    = errors.New("rejection reason is required")
	ErrInvalidPriority   = errors.New("priority must be between 0 and 10")
)

// TriageService owns the clerk work queue: workload-balanced auto-assignment,
// the request status state machine, and deadline-driven urgency.
type TriageService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewTriageService(repos *repository.Repos) *TriageService {
	return &TriageService{Repos: repos, now: time.Now}
}

type clerkLoad struct {
	clerkID  uuid.UUID
	workload int64
}

// AutoAssignPending distributes every unassigned pending_validation request
// across active clerks, least-loaded first. Assignment only sets
// assigned_clerk_id; the request stays pending_validation until the clerk
// claims it. Each row is taken with a conditional update, so concurrent
// sweeps cannot double-assign. Returns the number of requests assigned.
func (s *TriageService) AutoAssignPending() (int, error) {
	assigned := 0

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		pending, err := tx.Request.FindUnassignedPending()
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		clerks, err := tx.Profile.ListActiveClerks()
		if err != nil {
			return err
		}
		if len(clerks) == 0 {
			return ErrNoEligibleClerks
		}

		loads := make([]clerkLoad, 0, len(clerks))
		for _, clerk := range clerks {
			count, err := tx.Request.CountOpenByClerk(clerk.ID)
			if err != nil {
				return err
			}
			loads = append(loads, clerkLoad{clerkID: clerk.ID, workload: count})
		}

		// Least-loaded first; ties broken by clerk id so repeated runs on
		// the same snapshot produce the same plan.
		sort.Slice(loads, func(i, j int) bool {
			if loads[i].workload != loads[j].workload {
				return loads[i].workload < loads[j].workload
			}
			return loads[i].clerkID.String() < loads[j].clerkID.String()
		})

		for i, req := range pending {
			target := &loads[i%len(loads)]
			ok, err := tx.Request.AssignIfUnassigned(req.ID, target.clerkID)
			if err != nil {
				return err
			}
			if !ok {
				// Lost the row to a concurrent claim; skip it.
				continue
			}
			target.workload++
			assigned++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}

// Claim moves a pending_validation request into review under the given
// clerk. The guard (pending and unassigned) is enforced atomically; exactly
// one of several concurrent claimers wins.
func (s *TriageService) Claim(requestID, clerkID uuid.UUID) (*request.Request, error) {
	ok, err := s.Repos.Request.ClaimIfPending(requestID, clerkID)
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, findErr := s.Repos.Request.FindByID(requestID); findErr != nil {
			return nil, ErrRequestNotFound
		}
		return nil, ErrAlreadyAssigned
	}

	req, err := s.Repos.Request.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Unassign releases an in_review request back to the pending queue and
// clears the clerk.
func (s *TriageService) Unassign(requestID uuid.UUID) (*request.Request, error) {
	req, err := s.Repos.Request.FindByID(requestID)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if !req.CanTransitionTo(request.StatusPendingValidation) {
		return nil, ErrInvalidTransition
	}

	req.Status = request.StatusPendingValidation
	req.AssignedClerkID = nil
	if err := s.Repos.Request.Save(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Approve closes an in_review request. Only the assigned clerk (or an
// admin) may decide; approval notes and timestamp land in the metadata.
func (s *TriageService) Approve(requestID, actorID uuid.UUID, isAdmin bool, notes string) (*request.Request, error) {
	req, err := s.decidable(requestID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	if req.ExtractedMetadata == nil {
		req.ExtractedMetadata = map[string]interface{}{}
	}
	if notes != "" {
		req.ExtractedMetadata[request.MetaApprovalNotes] = notes
	}
	req.ExtractedMetadata[request.MetaApprovedAt] = s.now().UTC().Format(time.RFC3339)
	req.Status = request.StatusApproved

	if err := s.Repos.Request.Save(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Reject closes an in_review request with a mandatory reason. Nothing is
// mutated when the reason is empty.
func (s *TriageService) Reject(requestID, actorID uuid.UUID, isAdmin bool, reason string) (*request.Request, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	req, err := s.decidable(requestID, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	if req.ExtractedMetadata == nil {
		req.ExtractedMetadata = map[string]interface{}{}
	}
	req.ExtractedMetadata[request.MetaRejectionReason] = reason
	req.ExtractedMetadata[request.MetaRejectedAt] = s.now().UTC().Format(time.RFC3339)
	req.Status = request.StatusRejected

	if err := s.Repos.Request.Save(req); err != nil {
		return nil, err
	}
	return req, nil
}

// decidable loads a request and checks the decision guard: in_review and
// assigned to the acting clerk (admins may override the assignment check).
func (s *TriageService) decidable(requestID, actorID uuid.UUID, isAdmin bool) (*request.Request, error) {
	req, err := s.Repos.Request.FindByID(requestID)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if req.Status != request.StatusInReview {
		return nil, ErrInvalidTransition
	}
	if !isAdmin && (req.AssignedClerkID == nil || *req.AssignedClerkID != actorID) {
		return nil, ErrNotAssignedClerk
	}
	return &req, nil
}

// SetPriority updates a request's priority independently of its status.
func (s *TriageService) SetPriority(requestID uuid.UUID, priority int) (*request.Request, error) {
	if priority < request.PriorityMin || priority > request.PriorityMax {
		return nil, ErrInvalidPriority
	}

	req, err := s.Repos.Request.FindByID(requestID)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	req.Priority = priority
	if err := s.Repos.Request.Save(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Urgent returns open requests whose legal deadline falls within the next
// thresholdDays (overdue included), soonest first, enriched for display.
func (s *TriageService) Urgent(thresholdDays int) ([]request.Enriched, error) {
	deadline := s.now().AddDate(0, 0, thresholdDays)
	reqs, err := s.Repos.Request.ListUrgent(deadline)
	if err != nil {
		return nil, err
	}
	return enrichRequests(s.Repos, reqs, s.now())
}

// ClerkStats aggregates the clerk dashboard counters.
func (s *TriageService) ClerkStats(clerkID uuid.UUID) (*request.ClerkStats, error) {
	now := s.now()

	pending, err := s.Repos.Request.CountByStatus(request.StatusPendingValidation)
	if err != nil {
		return nil, err
	}
	inReview, err := s.Repos.Request.CountByStatus(request.StatusInReview)
	if err != nil {
		return nil, err
	}
	nearDeadline, err := s.Repos.Request.CountOpenWithDeadlineBefore(now.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	completed, err := s.Repos.Request.CountApprovedSince(startOfMonth)
	if err != nil {
		return nil, err
	}
	assignedToMe, err := s.Repos.Request.CountOpenByClerk(clerkID)
	if err != nil {
		return nil, err
	}

	return &request.ClerkStats{
		PendingValidation:  pending,
		InReview:           inReview,
		NearDeadline:       nearDeadline,
		CompletedThisMonth: completed,
		AssignedToMe:       assignedToMe,
	}, nil
}
