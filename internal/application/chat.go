package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aduportal/portal-go/internal/domain/chat"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Assistant is the external chatbot backend seen by the chat service.
type Assistant interface {
	Ask(ctx context.Context, message, requestID string) (*chat.AssistantReply, error)
}

type ChatService struct {
	Repos     *repository.Repos
	Assistant Assistant
}

func NewChatService(repos *repository.Repos, assistant Assistant) *ChatService {
	return &ChatService{Repos: repos, Assistant: assistant}
}

// Send persists the user's message, forwards it to the assistant backend
// and persists the reply. The user message survives even when the backend
// call fails, so the conversation shows what was asked.
func (s *ChatService) Send(ctx context.Context, userID uuid.UUID, input chat.SendMessageDTO) (*chat.AssistantReply, error) {
	var requestID *uuid.UUID
	if input.RequestID != "" {
		parsed, err := uuid.Parse(input.RequestID)
		if err != nil {
			return nil, fmt.Errorf("invalid request id: %w", err)
		}
		requestID = &parsed
	}

	userMsg := &chat.Message{
		UserID:    userID,
		RequestID: requestID,
		Role:      chat.RoleUser,
		Content:   input.Message,
	}
	if err := s.Repos.Chat.Create(userMsg); err != nil {
		return nil, err
	}

	reply, err := s.Assistant.Ask(ctx, input.Message, input.RequestID)
	if err != nil {
		return nil, err
	}

	assistantMsg := &chat.Message{
		UserID:    userID,
		RequestID: requestID,
		Role:      chat.RoleAssistant,
		Content:   reply.Answer,
	}
	if len(reply.Checklist) > 0 {
		raw, err := json.Marshal(reply.Checklist)
		if err != nil {
			return nil, err
		}
		assistantMsg.Checklist = datatypes.JSON(raw)
	}
	if err := s.Repos.Chat.Create(assistantMsg); err != nil {
		return nil, err
	}

	return reply, nil
}

// History returns the user's conversation, oldest first, optionally scoped
// to one request.
func (s *ChatService) History(userID uuid.UUID, requestID string) ([]chat.Message, error) {
	if requestID != "" {
		parsed, err := uuid.Parse(requestID)
		if err != nil {
			return nil, fmt.Errorf("invalid request id: %w", err)
		}
		return s.Repos.Chat.ListByUserAndRequest(userID, parsed)
	}
	return s.Repos.Chat.ListByUser(userID)
}

// Clear deletes the user's entire conversation.
func (s *ChatService) Clear(userID uuid.UUID) error {
	return s.Repos.Chat.DeleteByUser(userID)
}
