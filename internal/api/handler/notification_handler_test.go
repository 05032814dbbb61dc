package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"messagely/internal/api/dto"
	"messagely/internal/api/models"
	"messagely/pkg/apperror"
)

func TestListUnreadNotifications(t *testing.T) {
	mockNotificationService := new(MockNotificationService)
	h := NewNotificationHandler(mockNotificationService)
	router := setupRouter()
	router.GET("/notifications", asUser("bob"), h.ListUnread)

	mockNotificationService.On("Unread", "bob").Return([]models.Notification{
		{
			ID:        7,
			Username:  "bob",
			MessageID: 1,
			CreatedAt: time.Now(),
			Message:   &models.Message{ID: 1, FromUsername: "alice", ToUsername: "bob", Body: "hello"},
		},
	}, nil)

	req, _ := http.NewRequest("GET", "/notifications", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Results []dto.NotificationResponse `json:"results"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.Results, 1)
	assert.Equal(t, int64(7), response.Results[0].ID)
	assert.Equal(t, int64(1), response.Results[0].MessageID)
	assert.Equal(t, "alice", response.Results[0].FromUsername)
}

func TestListUnreadNotifications_Empty(t *testing.T) {
	mockNotificationService := new(MockNotificationService)
	h := NewNotificationHandler(mockNotificationService)
	router := setupRouter()
	router.GET("/notifications", asUser("bob"), h.ListUnread)

	mockNotificationService.On("Unread", "bob").Return([]models.Notification{}, nil)

	req, _ := http.NewRequest("GET", "/notifications", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results": []}`, w.Body.String())
}

func TestMarkNotificationRead(t *testing.T) {
	mockNotificationService := new(MockNotificationService)
	h := NewNotificationHandler(mockNotificationService)
	router := setupRouter()
	router.POST("/notifications/:id/read", asUser("bob"), h.MarkRead)

	mockNotificationService.On("MarkRead", "bob", int64(7)).Return(nil)

	req, _ := http.NewRequest("POST", "/notifications/7/read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockNotificationService.AssertExpectations(t)
}

func TestMarkNotificationRead_NotOwned(t *testing.T) {
	mockNotificationService := new(MockNotificationService)
	h := NewNotificationHandler(mockNotificationService)
	router := setupRouter()
	router.POST("/notifications/:id/read", asUser("carol"), h.MarkRead)

	mockNotificationService.On("MarkRead", "carol", int64(7)).
		Return(apperror.NewNotFoundError("notification not found", nil))

	req, _ := http.NewRequest("POST", "/notifications/7/read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkNotificationRead_BadID(t *testing.T) {
	mockNotificationService := new(MockNotificationService)
	h := NewNotificationHandler(mockNotificationService)
	router := setupRouter()
	router.POST("/notifications/:id/read", asUser("bob"), h.MarkRead)

	req, _ := http.NewRequest("POST", "/notifications/abc/read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockNotificationService.AssertNotCalled(t, "MarkRead")
}

func TestMarkAllNotificationsRead(t *testing.T) {
	mockNotificationService := new(MockNotificationService)
	h := NewNotificationHandler(mockNotificationService)
	router := setupRouter()
	router.POST("/notifications/read-all", asUser("bob"), h.MarkAllRead)

	mockNotificationService.On("MarkAllRead", "bob").Return(nil)

	req, _ := http.NewRequest("POST", "/notifications/read-all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockNotificationService.AssertExpectations(t)
}
