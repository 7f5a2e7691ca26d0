package repository

import (
	"strings"
	"time"

	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepo interface {
	Create(req *request.Request) error
	FindByID(id uuid.UUID) (request.Request, error)
	FindByIDs(ids []uuid.UUID) ([]request.Request, error)
	Save(req *request.Request) error
	Delete(id uuid.UUID) error
	ListFiltered(filter request.ListFilter) ([]request.Request, error)
	ListByUser(userID uuid.UUID) ([]request.Request, error)
	ListCreatedSince(since time.Time) ([]request.Request, error)
	ListUrgent(deadlineBefore time.Time) ([]request.Request, error)

	// FindUnassignedPending returns the triage backlog in created_at order
	// so repeated sweeps assign deterministically and oldest-first.
	FindUnassignedPending() ([]request.Request, error)

	// AssignIfUnassigned sets assigned_clerk_id without touching status.
	// Returns false when another caller won the race.
	AssignIfUnassigned(id, clerkID uuid.UUID) (bool, error)

	// ClaimIfPending atomically moves pending_validation -> in_review and
	// records the clerk. Returns false when the guard fails.
	ClaimIfPending(id, clerkID uuid.UUID) (bool, error)

	CountOpenByClerk(clerkID uuid.UUID) (int64, error)
	CountByStatus(status request.Status) (int64, error)
	CountOpenWithDeadlineBefore(deadline time.Time) (int64, error)
	CountApprovedSince(since time.Time) (int64, error)

	DeleteByUserID(userID uuid.UUID) error
	WithTx(tx *gorm.DB) RequestRepo
}

type DBRequestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) *DBRequestRepo {
	return &DBRequestRepo{db: db}
}

var openStatuses = []request.Status{request.StatusPendingValidation, request.StatusInReview}

func (r *DBRequestRepo) Create(req *request.Request) error {
	return r.db.Create(req).Error
}

func (r *DBRequestRepo) FindByID(id uuid.UUID) (request.Request, error) {
	var req request.Request
	err := r.db.First(&req, "id = ?", id).Error
	return req, err
}

func (r *DBRequestRepo) FindByIDs(ids []uuid.UUID) ([]request.Request, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var reqs []request.Request
	err := r.db.Where("id IN ?", ids).Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) Save(req *request.Request) error {
	return r.db.Save(req).Error
}

func (r *DBRequestRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&request.Request{}, "id = ?", id).Error
}

func (r *DBRequestRepo) ListFiltered(filter request.ListFilter) ([]request.Request, error) {
	q := r.db.Model(&request.Request{}).Order("created_at DESC")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.RequestType != "" {
		q = q.Where("request_type = ?", filter.RequestType)
	}
	if filter.AssignedClerkID != nil {
		q = q.Where("assigned_clerk_id = ?", *filter.AssignedClerkID)
	}
	if filter.FromDate != nil {
		q = q.Where("created_at >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q = q.Where("created_at <= ?", *filter.ToDate)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(request_type) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var reqs []request.Request
	err := q.Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) ListByUser(userID uuid.UUID) ([]request.Request, error) {
	var reqs []request.Request
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) ListCreatedSince(since time.Time) ([]request.Request, error) {
	var reqs []request.Request
	err := r.db.Where("created_at >= ?", since).Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) ListUrgent(deadlineBefore time.Time) ([]request.Request, error) {
	var reqs []request.Request
	err := r.db.
		Where("legal_deadline IS NOT NULL").
		Where("legal_deadline <= ?", deadlineBefore).
		Where("status IN ?", openStatuses).
		Order("legal_deadline ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) FindUnassignedPending() ([]request.Request, error) {
	var reqs []request.Request
	err := r.db.
		Where("assigned_clerk_id IS NULL").
		Where("status = ?", request.StatusPendingValidation).
		Order("created_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) AssignIfUnassigned(id, clerkID uuid.UUID) (bool, error) {
	res := r.db.Model(&request.Request{}).
		Where("id = ?", id).
		Where("status = ?", request.StatusPendingValidation).
		Where("assigned_clerk_id IS NULL").
		Update("assigned_clerk_id", clerkID)
	return res.RowsAffected == 1, res.Error
}

func (r *DBRequestRepo) ClaimIfPending(id, clerkID uuid.UUID) (bool, error) {
	res := r.db.Model(&request.Request{}).
		Where("id = ?", id).
		Where("status = ?", request.StatusPendingValidation).
		Where("assigned_clerk_id IS NULL").
		Updates(map[string]interface{}{
			"assigned_clerk_id": clerkID,
			"status":            request.StatusInReview,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *DBRequestRepo) CountOpenByClerk(clerkID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&request.Request{}).
		Where("assigned_clerk_id = ?", clerkID).
		Where("status NOT IN ?", []request.Status{request.StatusApproved, request.StatusRejected}).
		Count(&count).Error
	return count, err
}

func (r *DBRequestRepo) CountByStatus(status request.Status) (int64, error) {
	var count int64
	err := r.db.Model(&request.Request{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *DBRequestRepo) CountOpenWithDeadlineBefore(deadline time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&request.Request{}).
		Where("status IN ?", openStatuses).
		Where("legal_deadline IS NOT NULL").
		Where("legal_deadline <= ?", deadline).
		Count(&count).Error
	return count, err
}

func (r *DBRequestRepo) CountApprovedSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&request.Request{}).
		Where("status = ?", request.StatusApproved).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *DBRequestRepo) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&request.Request{}).Error
}

func (r *DBRequestRepo) WithTx(tx *gorm.DB) RequestRepo {
	if tx == nil {
		return r
	}
	return &DBRequestRepo{db: tx}
}
