package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/aduportal/portal-go/internal/application"
	"github.com/aduportal/portal-go/internal/domain/chat"
	"github.com/aduportal/portal-go/pkg/response"
	"github.com/aduportal/portal-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ChatHandler struct {
	svc      *application.ChatService
	upgrader websocket.Upgrader
}

func NewChatHandler(svc *application.ChatService) *ChatHandler {
	return &ChatHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Send godoc
// @Summary Send a message to the assistant
// @Tags chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.DataResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /chat/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input chat.SendMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	reply, err := h.svc.Send(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: reply})
}

// History godoc
// @Summary Conversation history, oldest first
// @Tags chat
// @Security BearerAuth
// @Produce json
// @Param request_id query string false "Scope to one request"
// @Success 200 {object} response.DataResponse
// @Router /chat/messages [get]
func (h *ChatHandler) History(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	messages, err := h.svc.History(userID, c.Query("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.DataResponse{Data: messages})
}

// Clear godoc
// @Summary Delete the user's conversation
// @Tags chat
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Router /chat/messages [delete]
func (h *ChatHandler) Clear(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.Clear(userID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "conversation cleared"})
}

// Stream upgrades the connection and relays chat messages over a
// websocket. Each inbound frame carries the same payload as POST
// /chat/messages; each outbound frame is the assistant's reply.
func (h *ChatHandler) Stream(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var input chat.SendMessageDTO
		if err := conn.ReadJSON(&input); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read failed: %v", err)
			}
			return
		}
		if input.Message == "" {
			if err := conn.WriteJSON(response.ErrorResponse{Error: "message is required"}); err != nil {
				return
			}
			continue
		}

		reply, err := h.svc.Send(c.Request.Context(), userID, input)
		if err != nil {
			if werr := conn.WriteJSON(response.ErrorResponse{Error: err.Error()}); werr != nil {
				return
			}
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
