package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"messagely/internal/api/dto"
	"messagely/internal/api/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every registered user.
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListAll()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": dto.FromModelsToUserSummaries(users)})
}

// Get returns one user's detail.
// GET /users/:username
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": dto.FromModelToUserSummary(user)})
}

// MessagesTo returns the user's inbox.
// GET /users/:username/to
func (h *UserHandler) MessagesTo(c *gin.Context) {
	messages, err := h.userService.MessagesTo(c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": dto.FromModelsToReceivedMessages(messages)})
}

// MessagesFrom returns the user's outbox.
// GET /users/:username/from
func (h *UserHandler) MessagesFrom(c *gin.Context) {
	messages, err := h.userService.MessagesFrom(c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": dto.FromModelsToSentMessages(messages)})
}
