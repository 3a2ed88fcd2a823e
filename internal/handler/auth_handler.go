package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/faaaroooqi/Feedstagram-app/internal/models"
	"github.com/faaaroooqi/Feedstagram-app/internal/service"
)

type SignupRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=64"`
	Password   string `json:"password" validate:"required,min=6"`
	Bio        string `json:"bio" validate:"max=500"`
	ProfilePic string `json:"profilePic" validate:"omitempty,url"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Username is required and password must be at least 6 characters", http.StatusBadRequest)
		return
	}

	serviceReq := service.SignupRequest{
		Username:   req.Username,
		Password:   req.Password,
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
	}

	user, err := h.AuthService.Signup(r.Context(), serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, AuthResponse{Token: token, User: *user}, http.StatusOK)
}
