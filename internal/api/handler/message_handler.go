package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"messagely/internal/api/dto"
	"messagely/internal/api/middleware"
	"messagely/internal/api/service"
	"messagely/pkg/apperror"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func messageID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError("invalid message id", err)
	}
	return id, nil
}

// Get returns the full message detail. Only the sender or the recipient
// may see it.
// GET /messages/:id
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	message, err := h.messageService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	username := middleware.CurrentUsername(c)
	if username != message.FromUsername && username != message.ToUsername {
		writeError(c, apperror.NewUnauthorizedError("not a participant in this message", nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.FromModelToMessageDetail(message)})
}

// Create sends a message from the authenticated user.
// POST /messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	message, err := h.messageService.Create(middleware.CurrentUsername(c), req.ToUsername, req.Body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": dto.FromModelToCreatedMessage(message)})
}

// MarkRead stamps the read timestamp. Only the recipient may do this.
// POST /messages/:id/read
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		writeError(c, err)
		return
	}

	// authorization first: confirm the caller is the recipient before
	// touching anything
	message, err := h.messageService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	if middleware.CurrentUsername(c) != message.ToUsername {
		writeError(c, apperror.NewUnauthorizedError("only the recipient may mark a message read", nil))
		return
	}

	message, err = h.messageService.MarkRead(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.ReadReceipt{ID: message.ID, ReadAt: message.ReadAt}})
}
