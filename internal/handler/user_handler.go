package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/faaaroooqi/Feedstagram-app/internal/service"
)

type UpdateProfileRequest struct {
	Username   string `json:"username" validate:"omitempty,min=3,max=64"`
	Bio        string `json:"bio" validate:"max=500"`
	ProfilePic string `json:"profilePic" validate:"omitempty,url"`
	Password   string `json:"password" validate:"omitempty,min=6"`
}

func (h *Handlers) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["id"]

	user, posts, err := h.FeedService.GetUserProfile(r.Context(), targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"user":  user,
		"posts": posts,
	}, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	targetID := mux.Vars(r)["id"]

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Invalid profile fields", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), userID, targetID, service.UpdateProfileRequest{
		Username:   req.Username,
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
		Password:   req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}
