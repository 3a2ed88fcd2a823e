package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Comment text is required", http.StatusBadRequest)
		return
	}

	comment, _, err := h.EngagementService.AddComment(r.Context(), userID, postID, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	view, err := h.FeedService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"comment": comment,
		"post":    view,
	}, http.StatusCreated)
}

func (h *Handlers) LikeComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["id"]

	result, err := h.EngagementService.ToggleCommentLike(r.Context(), userID, commentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, result, http.StatusOK)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["id"]

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Comment text is required", http.StatusBadRequest)
		return
	}

	comment, err := h.EngagementService.UpdateComment(r.Context(), userID, commentID, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	commentID := mux.Vars(r)["id"]

	postID, err := h.EngagementService.DeleteComment(r.Context(), userID, commentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	view, err := h.FeedService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, view, http.StatusOK)
}
