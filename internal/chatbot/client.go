package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aduportal/portal-go/internal/domain/chat"
)

// Client talks to the external assistant backend. The backend is a black
// box: one message in, an answer plus an optional document checklist out.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type askRequest struct {
	Message   string `json:"message"`
	DossierID string `json:"dossier_id,omitempty"`
}

// Ask sends a message to the assistant, optionally scoped to a request.
func (c *Client) Ask(ctx context.Context, message, requestID string) (*chat.AssistantReply, error) {
	body, err := json.Marshal(askRequest{Message: message, DossierID: requestID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chatbot", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chatbot API error: %s", resp.Status)
	}

	var reply chat.AssistantReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
