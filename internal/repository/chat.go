package repository

import (
	"github.com/aduportal/portal-go/internal/domain/chat"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepo interface {
	Create(msg *chat.Message) error
	ListByUser(userID uuid.UUID) ([]chat.Message, error)
	ListByUserAndRequest(userID, requestID uuid.UUID) ([]chat.Message, error)
	DeleteByUser(userID uuid.UUID) error
	DeleteByRequestIDs(requestIDs []uuid.UUID) error
	WithTx(tx *gorm.DB) ChatRepo
}

type DBChatRepo struct {
	db *gorm.DB
}

func NewChatRepo(db *gorm.DB) *DBChatRepo {
	return &DBChatRepo{db: db}
}

func (r *DBChatRepo) Create(msg *chat.Message) error {
	return r.db.Create(msg).Error
}

func (r *DBChatRepo) ListByUser(userID uuid.UUID) ([]chat.Message, error) {
	var msgs []chat.Message
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&msgs).Error
	return msgs, err
}

func (r *DBChatRepo) ListByUserAndRequest(userID, requestID uuid.UUID) ([]chat.Message, error) {
	var msgs []chat.Message
	err := r.db.
		Where("user_id = ? AND request_id = ?", userID, requestID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *DBChatRepo) DeleteByUser(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&chat.Message{}).Error
}

func (r *DBChatRepo) DeleteByRequestIDs(requestIDs []uuid.UUID) error {
	if len(requestIDs) == 0 {
		return nil
	}
	return r.db.Where("request_id IN ?", requestIDs).Delete(&chat.Message{}).Error
}

func (r *DBChatRepo) WithTx(tx *gorm.DB) ChatRepo {
	if tx == nil {
		return r
	}
	return &DBChatRepo{db: tx}
}
