package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/service"
)

func TestAddCommentHandler_Success(t *testing.T) {
	// Arrange
	f := newHandlerFixture()

	f.engagement.On("AddComment", mock.Anything, "user-2", "p1", "Nice shot!").
		Return(&models.Comment{
			CommentID: "c1",
			PostID:    "p1",
			UserID:    "user-2",
			Text:      "Nice shot!",
		}, &models.Notification{NotificationID: "n1"}, nil)
	f.feed.On("GetPost", mock.Anything, "p1").Return(&models.PostView{
		PostID:   "p1",
		Comments: []models.CommentView{{CommentID: "c1", Text: "Nice shot!"}},
	}, nil)

	body, _ := json.Marshal(map[string]string{"text": "Nice shot!"})
	req := httptest.NewRequest(http.MethodPost, "/api/posts/p1/comment", bytes.NewReader(body))
	req = withCaller(req, "user-2")
	req = mux.SetURLVars(req, map[string]string{"id": "p1"})
	rr := httptest.NewRecorder()

	// Act
	f.h.AddComment(rr, req)

	// Assert
	response := assertJSONSuccess(t, rr, http.StatusCreated)

	comment, ok := response["comment"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "c1", comment["commentId"])
	assert.Equal(t, "Nice shot!", comment["text"])

	post, ok := response["post"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "p1", post["postId"])
}

func TestAddCommentHandler_EmptyText(t *testing.T) {
	f := newHandlerFixture()

	body, _ := json.Marshal(map[string]string{"text": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/posts/p1/comment", bytes.NewReader(body))
	req = withCaller(req, "user-2")
	req = mux.SetURLVars(req, map[string]string{"id": "p1"})
	rr := httptest.NewRecorder()

	f.h.AddComment(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Comment text is required")
	f.engagement.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeCommentHandler_Success(t *testing.T) {
	f := newHandlerFixture()

	f.engagement.On("ToggleCommentLike", mock.Anything, "user-1", "c1").Return(&service.ToggleResult{
		Liked: true,
		Likes: []models.UserRef{{UserID: "user-1", Username: "alice"}},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/comments/c1/like", nil)
	req = withCaller(req, "user-1")
	req = mux.SetURLVars(req, map[string]string{"id": "c1"})
	rr := httptest.NewRecorder()

	f.h.LikeComment(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, true, response["liked"])

	likes, ok := response["likes"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, likes, 1)
}

func TestUpdateCommentHandler_NotOwner(t *testing.T) {
	f := newHandlerFixture()

	f.engagement.On("UpdateComment", mock.Anything, "intruder", "c1", "edited").
		Return(nil, service.ErrForbidden)

	body, _ := json.Marshal(map[string]string{"text": "edited"})
	req := httptest.NewRequest(http.MethodPatch, "/api/comments/c1", bytes.NewReader(body))
	req = withCaller(req, "intruder")
	req = mux.SetURLVars(req, map[string]string{"id": "c1"})
	rr := httptest.NewRecorder()

	f.h.UpdateComment(rr, req)

	assertJSONError(t, rr, http.StatusForbidden, "Not authorized")
}

func TestDeleteCommentHandler_Success(t *testing.T) {
	f := newHandlerFixture()

	f.engagement.On("DeleteComment", mock.Anything, "user-2", "c1").Return("p1", nil)
	f.feed.On("GetPost", mock.Anything, "p1").Return(&models.PostView{PostID: "p1"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/c1", nil)
	req = withCaller(req, "user-2")
	req = mux.SetURLVars(req, map[string]string{"id": "c1"})
	rr := httptest.NewRecorder()

	f.h.DeleteComment(rr, req)

	response := assertJSONSuccess(t, rr, http.StatusOK)
	assert.Equal(t, "p1", response["postId"])
	f.engagement.AssertExpectations(t)
}
