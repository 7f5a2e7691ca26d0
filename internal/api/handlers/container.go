package handlers

import "github.com/aduportal/portal-go/internal/application"

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Request  *RequestHandler
	Document *DocumentHandler
	User     *UserHandler
	Chat     *ChatHandler
}

func NewHandlers(services *application.Services) *Handlers {
	return &Handlers{
		Request:  NewRequestHandler(services.Request, services.Triage),
		Document: NewDocumentHandler(services.Document),
		User:     NewUserHandler(services.Profile),
		Chat:     NewChatHandler(services.Chat),
	}
}
