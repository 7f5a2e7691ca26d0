package application

import (
	"errors"
	"time"

	"github.com/aduportal/portal-go/internal/api/middleware"
	"github.com/aduportal/portal-go/internal/domain/activity"
	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/aduportal/portal-go/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrProfileNotFound    = errors.New("profile not found")
)

const tokenLifetime = 24 * time.Hour

type ProfileService struct {
	Repos *repository.Repos
}

func NewProfileService(repos *repository.Repos) *ProfileService {
	return &ProfileService{Repos: repos}
}

// Register creates a citizen account with a bcrypt-hashed password.
func (s *ProfileService) Register(input profile.RegisterDTO) (*profile.Profile, error) {
	_, err := s.Repos.Profile.FindByEmail(input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &profile.Profile{
		Email:        input.Email,
		FullName:     &input.FullName,
		Role:         profile.RoleCitizen,
		IsActive:     true,
		PasswordHash: string(hashed),
	}
	if err := s.Repos.Profile.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Login verifies credentials, stamps last_login and issues a JWT.
func (s *ProfileService) Login(email, password string) (profile.Profile, string, error) {
	p, err := s.Repos.Profile.FindByEmail(email)
	if err != nil {
		return profile.Profile{}, "", ErrInvalidCredentials
	}
	if !p.IsActive {
		return profile.Profile{}, "", ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return profile.Profile{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(&p, tokenLifetime)
	if err != nil {
		return profile.Profile{}, "", err
	}

	now := time.Now()
	p.LastLogin = &now
	if err := s.Repos.Profile.Save(&p); err != nil {
		return profile.Profile{}, "", err
	}

	return p, token, nil
}

func (s *ProfileService) Get(id uuid.UUID) (*profile.Profile, error) {
	p, err := s.Repos.Profile.FindByID(id)
	if err != nil {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (s *ProfileService) Update(id uuid.UUID, input profile.UpdateProfileDTO) (*profile.Profile, error) {
	p, err := s.Repos.Profile.FindByID(id)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	if input.FullName != nil {
		p.FullName = input.FullName
	}
	if input.Email != nil {
		p.Email = *input.Email
	}

	if err := s.Repos.Profile.Save(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteAccount removes a user and every dependent row in one transaction:
// documents and chat messages of their requests, the requests themselves,
// their activity entries and finally the profile. This replaces the
// store-side cascade triggers of the original deployment.
func (s *ProfileService) DeleteAccount(userID, actorID uuid.UUID) error {
	target, err := s.Repos.Profile.FindByID(userID)
	if err != nil {
		return ErrProfileNotFound
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		reqs, err := tx.Request.ListByUser(userID)
		if err != nil {
			return err
		}
		requestIDs := make([]uuid.UUID, 0, len(reqs))
		for _, req := range reqs {
			requestIDs = append(requestIDs, req.ID)
		}

		if err := tx.Document.DeleteByRequestIDs(requestIDs); err != nil {
			return err
		}
		if err := tx.Chat.DeleteByRequestIDs(requestIDs); err != nil {
			return err
		}
		if err := tx.Chat.DeleteByUser(userID); err != nil {
			return err
		}
		if err := tx.Request.DeleteByUserID(userID); err != nil {
			return err
		}
		if err := tx.Activity.DeleteByUser(userID); err != nil {
			return err
		}
		return tx.Profile.Delete(userID)
	})
	if err != nil {
		return err
	}

	utils.LogActivity(actorID, activity.ActionUserDelete, userID.String(), map[string]interface{}{
		"deleted_email": target.Email,
		"deleted_role":  string(target.Role),
	}, s.Repos.Activity)

	return nil
}
