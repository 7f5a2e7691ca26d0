package application

import (
	"testing"
	"time"

	"github.com/aduportal/portal-go/internal/api/middleware"
	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/aduportal/portal-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupProfileMocks(t *testing.T) (*ProfileService, *mock.MockProfileRepo, *repository.Repos, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProfile := mock.NewMockProfileRepo(ctrl)
	repos := &repository.Repos{
		Profile: mockProfile,
	}
	svc := NewProfileService(repos)
	return svc, mockProfile, repos, ctrl
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockProfile, _, _ := setupProfileMocks(t)

	mockProfile.EXPECT().FindByEmail("alice@example.com").Return(profile.Profile{}, gorm.ErrRecordNotFound)
	mockProfile.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *profile.Profile) error {
		assert.Equal(t, profile.RoleCitizen, p.Role)
		assert.True(t, p.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("123456")))
		return nil
	})

	p, err := svc.Register(profile.RegisterDTO{Email: "alice@example.com", Password: "123456", FullName: "Alice"})
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", p.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockProfile, _, _ := setupProfileMocks(t)

	mockProfile.EXPECT().FindByEmail("admin@example.com").Return(profile.Profile{ID: uuid.New()}, nil)

	_, err := svc.Register(profile.RegisterDTO{Email: "admin@example.com", Password: "123456"})
	assert.Equal(t, ErrEmailTaken, err)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockProfile, _, _ := setupProfileMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	p := profile.Profile{ID: uuid.New(), Email: "bob@example.com", Role: profile.RoleClerk, IsActive: true, PasswordHash: string(hashed)}

	mockProfile.EXPECT().FindByEmail("bob@example.com").Return(p, nil)
	mockProfile.EXPECT().Save(gomock.Any()).DoAndReturn(func(saved *profile.Profile) error {
		assert.NotNil(t, saved.LastLogin)
		return nil
	})

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(p *profile.Profile, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	logged, token, err := svc.Login("bob@example.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob@example.com", logged.Email)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockProfile, _, _ := setupProfileMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	p := profile.Profile{ID: uuid.New(), IsActive: true, PasswordHash: string(hashed)}

	mockProfile.EXPECT().FindByEmail("bob@example.com").Return(p, nil)

	_, _, err := svc.Login("bob@example.com", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, mockProfile, _, _ := setupProfileMocks(t)

	p := profile.Profile{ID: uuid.New(), IsActive: false}
	mockProfile.EXPECT().FindByEmail("gone@example.com").Return(p, nil)

	_, _, err := svc.Login("gone@example.com", "123456")
	assert.Equal(t, ErrAccountDisabled, err)
}

// --------------------- DeleteAccount ---------------------
func TestDeleteAccount_CascadesInOrder(t *testing.T) {
	svc, mockProfile, repos, ctrl := setupProfileMocks(t)

	mockRequest := mock.NewMockRequestRepo(ctrl)
	mockDocument := mock.NewMockDocumentRepo(ctrl)
	mockChat := mock.NewMockChatRepo(ctrl)
	mockActivity := mock.NewMockActivityRepo(ctrl)
	repos.Request = mockRequest
	repos.Document = mockDocument
	repos.Chat = mockChat
	repos.Activity = mockActivity

	userID := uuid.New()
	adminID := uuid.New()
	reqID := uuid.New()
	target := profile.Profile{ID: userID, Email: "gone@example.com", Role: profile.RoleCitizen}

	mockProfile.EXPECT().FindByID(userID).Return(target, nil)
	mockRequest.EXPECT().ListByUser(userID).Return([]request.Request{{ID: reqID, UserID: &userID}}, nil)

	gomock.InOrder(
		mockDocument.EXPECT().DeleteByRequestIDs([]uuid.UUID{reqID}).Return(nil),
		mockChat.EXPECT().DeleteByRequestIDs([]uuid.UUID{reqID}).Return(nil),
		mockChat.EXPECT().DeleteByUser(userID).Return(nil),
		mockRequest.EXPECT().DeleteByUserID(userID).Return(nil),
		mockActivity.EXPECT().DeleteByUser(userID).Return(nil),
		mockProfile.EXPECT().Delete(userID).Return(nil),
	)
	mockActivity.EXPECT().CreateLog(gomock.Any()).Return(nil)

	err := svc.DeleteAccount(userID, adminID)
	assert.NoError(t, err)
}

func TestDeleteAccount_MissingProfile(t *testing.T) {
	svc, mockProfile, _, _ := setupProfileMocks(t)

	userID := uuid.New()
	mockProfile.EXPECT().FindByID(userID).Return(profile.Profile{}, gorm.ErrRecordNotFound)

	err := svc.DeleteAccount(userID, uuid.New())
	assert.Equal(t, ErrProfileNotFound, err)
}
