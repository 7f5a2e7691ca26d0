package repository

import (
	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepo interface {
	Create(p *profile.Profile) error
	FindByID(id uuid.UUID) (profile.Profile, error)
	FindByEmail(email string) (profile.Profile, error)
	FindByIDs(ids []uuid.UUID) ([]profile.Profile, error)
	Save(p *profile.Profile) error
	Delete(id uuid.UUID) error

	// ListActiveClerks returns the profiles eligible for auto-assignment,
	// ordered by id for deterministic tie-breaking.
	ListActiveClerks() ([]profile.Profile, error)

	WithTx(tx *gorm.DB) ProfileRepo
}

type DBProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *DBProfileRepo {
	return &DBProfileRepo{db: db}
}

func (r *DBProfileRepo) Create(p *profile.Profile) error {
	return r.db.Create(p).Error
}

func (r *DBProfileRepo) FindByID(id uuid.UUID) (profile.Profile, error) {
	var p profile.Profile
	err := r.db.First(&p, "id = ?", id).Error
	return p, err
}

func (r *DBProfileRepo) FindByEmail(email string) (profile.Profile, error) {
	var p profile.Profile
	err := r.db.First(&p, "email = ?", email).Error
	return p, err
}

func (r *DBProfileRepo) FindByIDs(ids []uuid.UUID) ([]profile.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var profiles []profile.Profile
	err := r.db.Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

func (r *DBProfileRepo) Save(p *profile.Profile) error {
	return r.db.Save(p).Error
}

func (r *DBProfileRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&profile.Profile{}, "id = ?", id).Error
}

func (r *DBProfileRepo) ListActiveClerks() ([]profile.Profile, error) {
	var clerks []profile.Profile
	err := r.db.
		Where("role = ?", profile.RoleClerk).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&clerks).Error
	return clerks, err
}

func (r *DBProfileRepo) WithTx(tx *gorm.DB) ProfileRepo {
	if tx == nil {
		return r
	}
	return &DBProfileRepo{db: tx}
}
