package repository

import (
	"time"

	"github.com/aduportal/portal-go/internal/domain/activity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepo interface {
	CreateLog(entry *activity.Log) error
	ListRecent(limit int) ([]activity.Log, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
	DeleteByUser(userID uuid.UUID) error
	WithTx(tx *gorm.DB) ActivityRepo
}

type DBActivityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) *DBActivityRepo {
	return &DBActivityRepo{db: db}
}

func (r *DBActivityRepo) CreateLog(entry *activity.Log) error {
	return r.db.Create(entry).Error
}

func (r *DBActivityRepo) ListRecent(limit int) ([]activity.Log, error) {
	var logs []activity.Log
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

func (r *DBActivityRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&activity.Log{})
	return res.RowsAffected, res.Error
}

func (r *DBActivityRepo) DeleteByUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&activity.Log{}).Error
}

func (r *DBActivityRepo) WithTx(tx *gorm.DB) ActivityRepo {
	if tx == nil {
		return r
	}
	return &DBActivityRepo{db: tx}
}
