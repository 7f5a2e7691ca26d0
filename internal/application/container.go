package application

import (
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/aduportal/portal-go/internal/storage"
)

type Services struct {
	Triage   *TriageService
	Request  *RequestService
	Profile  *ProfileService
	Document *DocumentService
	Chat     *ChatService
}

func New(repos *repository.Repos, store storage.ObjectStore, assistant Assistant) *Services {
	return &Services{
		Triage:   NewTriageService(repos),
		Request:  NewRequestService(repos),
		Profile:  NewProfileService(repos),
		Document: NewDocumentService(repos, store),
		Chat:     NewChatService(repos, assistant),
	}
}
