package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/faaaroooqi/Feedstagram-app/internal/config"
	"github.com/faaaroooqi/Feedstagram-app/internal/database"
	"github.com/faaaroooqi/Feedstagram-app/internal/service"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UsernameKey ContextKey = "username"
)

// CallerID returns the authenticated user id placed in the context by the
// auth middleware.
func CallerID(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(UserIDKey).(string)
	return userID, ok
}

type Handlers struct {
	AuthService         service.AuthService
	FeedService         service.FeedService
	EngagementService   service.EngagementService
	PostService         service.PostService
	NotificationService service.NotificationService
	UserService         service.UserService
	DB                  database.MethodsDB
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(services *service.Service, db database.MethodsDB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:         services.Auth,
		FeedService:         services.Feed,
		EngagementService:   services.Engagement,
		PostService:         services.Post,
		NotificationService: services.Notification,
		UserService:         services.User,
		DB:                  db,
		Cfg:                 config,
		Validate:            validator.New(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "ok"}
	code := http.StatusOK

	if h.DB != nil {
		if err := h.DB.HealthCheck(); err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			code = http.StatusServiceUnavailable
		}
	}

	WriteSuccess(w, status, code)
}
