package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	notifications, err := h.NotificationService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, notifications, http.StatusOK)
}

func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	notificationID := mux.Vars(r)["id"]

	notification, err := h.NotificationService.MarkRead(r.Context(), notificationID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, notification, http.StatusOK)
}
