package application

import (
	"time"

	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/google/uuid"
)

// enrichRequests joins a page of requests with requester profiles, assigned
// clerk profiles and document counts using batched IN queries. A missing
// requester degrades to the "unknown" placeholder; a missing clerk to null.
func enrichRequests(repos *repository.Repos, reqs []request.Request, now time.Time) ([]request.Enriched, error) {
	if len(reqs) == 0 {
		return []request.Enriched{}, nil
	}

	profileIDs := make([]uuid.UUID, 0, len(reqs)*2)
	requestIDs := make([]uuid.UUID, 0, len(reqs))
	seen := make(map[uuid.UUID]bool)
	for _, req := range reqs {
		requestIDs = append(requestIDs, req.ID)
		if req.UserID != nil && !seen[*req.UserID] {
			seen[*req.UserID] = true
			profileIDs = append(profileIDs, *req.UserID)
		}
		if req.AssignedClerkID != nil && !seen[*req.AssignedClerkID] {
			seen[*req.AssignedClerkID] = true
			profileIDs = append(profileIDs, *req.AssignedClerkID)
		}
	}

	profiles, err := repos.Profile.FindByIDs(profileIDs)
	if err != nil {
		return nil, err
	}
	profileMap := make(map[uuid.UUID]*profile.Ref, len(profiles))
	for i := range profiles {
		profileMap[profiles[i].ID] = profiles[i].ToRef()
	}

	counts, err := repos.Document.CountByRequestIDs(requestIDs)
	if err != nil {
		return nil, err
	}

	enriched := make([]request.Enriched, 0, len(reqs))
	for _, req := range reqs {
		item := request.Enriched{Request: req, User: profile.UnknownRef()}

		if req.UserID != nil {
			if ref, ok := profileMap[*req.UserID]; ok {
				item.User = ref
			}
		}
		if req.AssignedClerkID != nil {
			item.AssignedClerk = profileMap[*req.AssignedClerkID]
		}
		item.DocumentsCount = counts[req.ID]
		if days, ok := req.DaysUntilDeadline(now); ok {
			item.DaysUntilDeadline = &days
		}

		enriched = append(enriched, item)
	}
	return enriched, nil
}
