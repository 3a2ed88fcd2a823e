package models

import (
	"time"
)

const (
	NotificationLikePost    = "like_post"
	NotificationCommentPost = "comment_post"
	NotificationLikeComment = "like_comment"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Bio          string    `json:"bio" db:"bio"`
	ProfilePic   string    `json:"profilePic" db:"profile_pic"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// UserRef is the public slice of a user embedded in feed responses.
type UserRef struct {
	UserID     string `json:"userId" db:"user_id"`
	Username   string `json:"username" db:"username"`
	ProfilePic string `json:"profilePic" db:"profile_pic"`
}

func (u *User) Ref() UserRef {
	return UserRef{
		UserID:     u.UserID,
		Username:   u.Username,
		ProfilePic: u.ProfilePic,
	}
}

type Post struct {
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Caption   string    `json:"caption" db:"caption"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Image struct {
	ImageID   string    `json:"imageId" db:"image_id"`
	PostID    string    `json:"postId" db:"post_id"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type Notification struct {
	NotificationID string    `json:"notificationId" db:"notification_id"`
	RecipientID    string    `json:"recipientId" db:"recipient_id"`
	SenderID       string    `json:"senderId" db:"sender_id"`
	Kind           string    `json:"kind" db:"kind"`
	PostID         *string   `json:"postId" db:"post_id"`
	CommentID      *string   `json:"commentId" db:"comment_id"`
	Read           bool      `json:"read" db:"read"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// CommentView is a comment denormalized with its author and liking users.
type CommentView struct {
	CommentID string    `json:"commentId"`
	Text      string    `json:"text"`
	User      UserRef   `json:"user"`
	Likes     []UserRef `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostView is the feed shape: the post with its author, images, liking
// users, comments and the selected top comment.
type PostView struct {
	PostID     string        `json:"postId"`
	Caption    string        `json:"caption"`
	Images     []string      `json:"images"`
	User       UserRef       `json:"user"`
	Likes      []UserRef     `json:"likes"`
	Comments   []CommentView `json:"comments"`
	TopComment *CommentView  `json:"topComment,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type FeedPage struct {
	Posts      []PostView `json:"posts"`
	HasMore    bool       `json:"hasMore"`
	NextCursor *string    `json:"nextCursor"`
}

// NotificationView inlines the sender and the referenced post/comment text.
type NotificationView struct {
	NotificationID string    `json:"notificationId"`
	Kind           string    `json:"kind"`
	Sender         UserRef   `json:"sender"`
	PostID         *string   `json:"postId,omitempty"`
	PostText       *string   `json:"postText,omitempty"`
	CommentID      *string   `json:"commentId,omitempty"`
	CommentText    *string   `json:"commentText,omitempty"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}
