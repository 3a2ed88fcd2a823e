package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faaaroooqi/Feedstagram-app/internal/service"
)

type UpdatePostRequest struct {
	Caption string `json:"caption" validate:"required"`
}

// GetFeed handles GET /api/posts?limit=&lastId= and returns one cursor page.
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	lastID := r.URL.Query().Get("lastId")

	page, err := h.FeedService.ListFeed(r.Context(), lastID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, page, http.StatusOK)
}

// CreatePost handles the multipart form: a caption field plus one or more
// image files under "images".
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	caption := r.FormValue("caption")
	if caption == "" {
		WriteError(w, "Caption is required", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		WriteError(w, "At least one image is required", http.StatusBadRequest)
		return
	}
	if len(files) > 5 {
		WriteError(w, "At most 5 images per post", http.StatusBadRequest)
		return
	}

	uploads := make([]service.ImageUpload, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			WriteError(w, "Failed to read uploaded file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		uploads = append(uploads, service.ImageUpload{
			FileName: fileHeader.Filename,
			File:     file,
			Size:     fileHeader.Size,
		})
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, caption, uploads)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	view, err := h.FeedService.GetPost(r.Context(), post.PostID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, view, http.StatusCreated)
}

func (h *Handlers) GetMyPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	views, err := h.FeedService.ListUserPosts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, views, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Caption is required", http.StatusBadRequest)
		return
	}

	if err := h.PostService.UpdatePost(r.Context(), userID, postID, req.Caption); err != nil {
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

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), userID, postID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Post deleted"}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := CallerID(r)
	if !ok {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	result, err := h.EngagementService.TogglePostLike(r.Context(), userID, postID)
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
		"liked": result.Liked,
		"post":  view,
	}, http.StatusOK)
}
