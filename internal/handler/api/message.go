package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "unistay/internal/handler/dto/request"
	resdto "unistay/internal/handler/dto/response"
	"unistay/internal/handler/middleware"
	"unistay/internal/usecase/commands"
	"unistay/internal/usecase/queries"
)

type MessageHandler struct {
	messageCommands     commands.MessageCommands
	conversationQueries queries.ConversationQueries
}

func NewMessageHandler(messageCommands commands.MessageCommands, conversationQueries queries.ConversationQueries) *MessageHandler {
	return &MessageHandler{
		messageCommands:     messageCommands,
		conversationQueries: conversationQueries,
	}
}

// @Summary Start conversation
// @Description Send a message to a property's host, creating the thread on first contact
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartConversationRequest true "First message"
// @Success 201 {object} resdto.MessageSentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations [post]
func (h *MessageHandler) StartConversation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.messageCommands.StartConversation(c.Request.Context(), commands.SendMessageRequest{
		PropertyID: req.PropertyID,
		Body:       req.Body,
	}, userID)
	if err != nil {
		h.writeMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.MessageSentResponse{
		ConversationID: result.ConversationID,
		MessageID:      result.MessageID,
	})
}

// @Summary Reply to conversation
// @Description Append a message to an existing thread; participants only
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param request body reqdto.SendMessageRequest true "Message body"
// @Success 201 {object} resdto.MessageSentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations/{id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conversation ID format",
		})
		return
	}

	var req reqdto.SendMessageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.messageCommands.ReplyTo(c.Request.Context(), conversationID, req.Body, userID)
	if err != nil {
		h.writeMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.MessageSentResponse{
		ConversationID: result.ConversationID,
		MessageID:      result.MessageID,
	})
}

// @Summary List conversations
// @Description All threads the current user participates in, most recent activity first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ConversationView
// @Failure 401 {object} map[string]string
// @Router /conversations [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.conversationQueries.ListConversations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List messages
// @Description Messages in a thread, oldest first; participants only
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Success 200 {array} queries.MessageView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /conversations/{id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	conversationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conversation ID format",
		})
		return
	}

	items, err := h.conversationQueries.ListMessages(c.Request.Context(), conversationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrConversationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Conversation not found",
			})
		case errors.Is(err, queries.ErrConversationAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *MessageHandler) writeMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPropertyNotFoundWrite):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Property not found",
		})
	case errors.Is(err, commands.ErrConversationAccess):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case errors.Is(err, commands.ErrMessagingSelf):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You cannot message your own listing",
		})
	case errors.Is(err, commands.ErrEmptyMessage), errors.Is(err, commands.ErrMessageTooLong):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid message body",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
