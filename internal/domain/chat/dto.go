package chat

type SendMessageDTO struct {
	Message   string `json:"message" binding:"required"`
	RequestID string `json:"request_id,omitempty"`
}

type AssistantReply struct {
	Answer    string   `json:"answer"`
	Checklist []string `json:"checklist,omitempty"`
}
