package application

import (
	"context"
	"errors"
	"testing"

	"github.com/aduportal/portal-go/internal/domain/chat"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/aduportal/portal-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
type stubAssistant struct {
	reply *chat.AssistantReply
	err   error

	gotMessage   string
	gotRequestID string
}

func (s *stubAssistant) Ask(ctx context.Context, message, requestID string) (*chat.AssistantReply, error) {
	s.gotMessage = message
	s.gotRequestID = requestID
	return s.reply, s.err
}

func setupChatMocks(t *testing.T, assistant *stubAssistant) (*ChatService, *mock.MockChatRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockChat := mock.NewMockChatRepo(ctrl)
	repos := &repository.Repos{
		Chat: mockChat,
	}
	svc := NewChatService(repos, assistant)
	return svc, mockChat
}

// --------------------- Send ---------------------
func TestSend_PersistsBothTurns(t *testing.T) {
	assistant := &stubAssistant{reply: &chat.AssistantReply{
		Answer:    "You need a building permit.",
		Checklist: []string{"site plan", "ownership deed"},
	}}
	svc, mockChat := setupChatMocks(t, assistant)

	userID := uuid.New()
	var roles []chat.MessageRole
	mockChat.EXPECT().Create(gomock.Any()).DoAndReturn(func(msg *chat.Message) error {
		roles = append(roles, msg.Role)
		if msg.Role == chat.RoleAssistant {
			assert.Equal(t, "You need a building permit.", msg.Content)
			assert.NotEmpty(t, msg.Checklist)
		}
		return nil
	}).Times(2)

	reply, err := svc.Send(context.Background(), userID, chat.SendMessageDTO{Message: "what do I need?"})
	assert.NoError(t, err)
	assert.Equal(t, []chat.MessageRole{chat.RoleUser, chat.RoleAssistant}, roles)
	assert.Equal(t, []string{"site plan", "ownership deed"}, reply.Checklist)
	assert.Equal(t, "what do I need?", assistant.gotMessage)
}

func TestSend_BackendFailureKeepsUserMessage(t *testing.T) {
	assistant := &stubAssistant{err: errors.New("assistant unavailable")}
	svc, mockChat := setupChatMocks(t, assistant)

	// Only the user's turn is written.
	mockChat.EXPECT().Create(gomock.Any()).DoAndReturn(func(msg *chat.Message) error {
		assert.Equal(t, chat.RoleUser, msg.Role)
		return nil
	})

	_, err := svc.Send(context.Background(), uuid.New(), chat.SendMessageDTO{Message: "hello"})
	assert.Error(t, err)
}

func TestSend_ForwardsRequestScope(t *testing.T) {
	assistant := &stubAssistant{reply: &chat.AssistantReply{Answer: "ok"}}
	svc, mockChat := setupChatMocks(t, assistant)

	requestID := uuid.New()
	mockChat.EXPECT().Create(gomock.Any()).DoAndReturn(func(msg *chat.Message) error {
		assert.Equal(t, requestID, *msg.RequestID)
		return nil
	}).Times(2)

	_, err := svc.Send(context.Background(), uuid.New(), chat.SendMessageDTO{Message: "status?", RequestID: requestID.String()})
	assert.NoError(t, err)
	assert.Equal(t, requestID.String(), assistant.gotRequestID)
}

func TestSend_InvalidRequestID(t *testing.T) {
	svc, _ := setupChatMocks(t, &stubAssistant{})

	_, err := svc.Send(context.Background(), uuid.New(), chat.SendMessageDTO{Message: "hi", RequestID: "not-a-uuid"})
	assert.Error(t, err)
}

// --------------------- History ---------------------
func TestHistory_ScopedToRequest(t *testing.T) {
	svc, mockChat := setupChatMocks(t, &stubAssistant{})

	userID := uuid.New()
	requestID := uuid.New()
	mockChat.EXPECT().ListByUserAndRequest(userID, requestID).Return([]chat.Message{{Role: chat.RoleUser}}, nil)

	msgs, err := svc.History(userID, requestID.String())
	assert.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestHistory_AllMessages(t *testing.T) {
	svc, mockChat := setupChatMocks(t, &stubAssistant{})

	userID := uuid.New()
	mockChat.EXPECT().ListByUser(userID).Return(nil, nil)

	_, err := svc.History(userID, "")
	assert.NoError(t, err)
}
