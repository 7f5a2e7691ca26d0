package request

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusPendingValidation, true},
		{StatusDraft, StatusInReview, false},
		{StatusDraft, StatusApproved, false},
		{StatusPendingValidation, StatusInReview, true},
		{StatusPendingValidation, StatusApproved, false},
		{StatusPendingValidation, StatusDraft, false},
		{StatusInReview, StatusApproved, true},
		{StatusInReview, StatusRejected, true},
		{StatusInReview, StatusPendingValidation, true},
		{StatusInReview, StatusDraft, false},
		{StatusApproved, StatusPendingValidation, false},
		{StatusApproved, StatusInReview, false},
		{StatusRejected, StatusInReview, false},
		{StatusRejected, StatusPendingValidation, false},
	}

	for _, tc := range cases {
		req := &Request{Status: tc.from}
		assert.Equal(t, tc.allowed, req.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusPendingValidation.IsTerminal())
	assert.False(t, StatusInReview.IsTerminal())
}

func TestClaimable(t *testing.T) {
	clerkID := uuid.New()

	req := &Request{Status: StatusPendingValidation}
	assert.True(t, req.Claimable())

	req.AssignedClerkID = &clerkID
	assert.False(t, req.Claimable())

	req = &Request{Status: StatusInReview}
	assert.False(t, req.Claimable())
}

func TestDaysUntilDeadline(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	noDeadline := &Request{}
	_, ok := noDeadline.DaysUntilDeadline(now)
	assert.False(t, ok)

	cases := []struct {
		offset time.Duration
		want   int
	}{
		{0, 0},
		{2 * time.Hour, 1},
		{24 * time.Hour, 1},
		{36 * time.Hour, 2},
		{72 * time.Hour, 3},
		{-2 * time.Hour, 0},
		{-30 * time.Hour, -1},
	}
	for _, tc := range cases {
		deadline := now.Add(tc.offset)
		req := &Request{LegalDeadline: &deadline}
		days, ok := req.DaysUntilDeadline(now)
		assert.True(t, ok)
		assert.Equal(t, tc.want, days, "offset %s", tc.offset)
	}
}

func TestIsUrgent(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	threshold := 3

	today := now.Add(2 * time.Hour)
	soon := now.Add(71 * time.Hour)
	far := now.Add(10 * 24 * time.Hour)
	overdue := now.Add(-48 * time.Hour)

	cases := []struct {
		name     string
		status   Status
		deadline *time.Time
		want     bool
	}{
		{"deadline today", StatusPendingValidation, &today, true},
		{"inside window", StatusInReview, &soon, true},
		{"outside window", StatusPendingValidation, &far, false},
		{"overdue", StatusInReview, &overdue, true},
		{"no deadline", StatusPendingValidation, nil, false},
		{"closed request", StatusApproved, &today, false},
		{"draft", StatusDraft, &today, false},
	}
	for _, tc := range cases {
		req := &Request{Status: tc.status, LegalDeadline: tc.deadline}
		assert.Equal(t, tc.want, req.IsUrgent(now, threshold), tc.name)
	}
}

// Widening the deadline window never demotes an urgent request.
func TestIsUrgentMonotonicInThreshold(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for offset := -5; offset <= 10; offset++ {
		deadline := now.Add(time.Duration(offset) * 24 * time.Hour)
		req := &Request{Status: StatusPendingValidation, LegalDeadline: &deadline}

		for k := 0; k < 12; k++ {
			if req.IsUrgent(now, k) {
				assert.True(t, req.IsUrgent(now, k+1), "offset %d, threshold %d", offset, k)
			}
		}
	}
}
