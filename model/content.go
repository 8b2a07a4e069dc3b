package model

import (
	"time"

	"github.com/ShohjahonSohibov/Aberno/constant"
)

type AuthorRef struct {
	ID       string `db:"id" json:"_id"`
	Username string `db:"username" json:"username"`
}

type UserRef struct {
	ID       string `db:"id" json:"_id"`
	Fullname string `db:"fullname" json:"fullname"`
	Email    string `db:"email" json:"email"`
	Phone    string `db:"phone" json:"phone"`
}

type Post struct {
	ID          string              `db:"id" json:"_id"`
	Title       LocalizedText       `db:"title" json:"title"`
	Content     LocalizedText       `db:"content" json:"content"`
	Image       string              `db:"image" json:"image"`
	PublishedAt *time.Time          `db:"published_at" json:"publishedAt"`
	ScheduledAt *time.Time          `db:"scheduled_at" json:"scheduledAt"`
	Status      constant.PostStatus `db:"status" json:"status"`
	IsActive    bool                `db:"is_active" json:"isActive"`
	Timestamps

	Authors    []AuthorRef `db:"-" json:"author"`
	Categories []Ref       `db:"-" json:"category"`
	Brands     []Ref       `db:"-" json:"brand"`
	Tags       []Ref       `db:"-" json:"tags"`
	Comments   []Comment   `db:"-" json:"comments,omitempty"`
}

// PostRefs are the multi-valued references of a post, by id.
type PostRefs struct {
	Authors    []string
	Categories []string
	Brands     []string
	Tags       []string
}

type PostRequest struct {
	Title       LocalizedText `json:"title"`
	Content     LocalizedText `json:"content"`
	Image       string        `json:"image"`
	Author      []string      `json:"author"`
	Category    []string      `json:"category"`
	Brand       []string      `json:"brand"`
	Tags        []string      `json:"tags"`
	PublishedAt *time.Time    `json:"publishedAt"`
	ScheduledAt *time.Time    `json:"scheduledAt"`
	Status      string        `json:"status" validate:"omitempty,post_status"`
	IsActive    *bool         `json:"isActive"`
}

type Comment struct {
	ID        string   `db:"id" json:"_id"`
	Content   string   `db:"content" json:"content"`
	Rate      float64  `db:"rate" json:"rate"`
	IsActive  bool     `db:"is_active" json:"isActive"`
	AuthorID  string   `db:"author_id" json:"-"`
	Author    *UserRef `db:"-" json:"author"`
	PostID    string   `db:"post_id" json:"post,omitempty"`
	ProductID string   `db:"product_id" json:"product,omitempty"`
	Timestamps
}

type CommentRequest struct {
	Content string   `json:"content" validate:"required"`
	Rate    *float64 `json:"rate" validate:"omitempty,gte=0,lte=5"`
	Post    string   `json:"post"`
	Product string   `json:"product"`
}

type UpdateCommentRequest struct {
	Content  string   `json:"content"`
	Rate     *float64 `json:"rate" validate:"omitempty,gte=0,lte=5"`
	IsActive *bool    `json:"isActive"`
}

type Lead struct {
	ID       string              `db:"id" json:"_id"`
	Name     string              `db:"name" json:"name"`
	Text     string              `db:"text" json:"text"`
	Phone    string              `db:"phone" json:"phone"`
	Email    string              `db:"email" json:"email"`
	Status   constant.LeadStatus `db:"status" json:"status"`
	IsActive bool                `db:"is_active" json:"isActive"`
	Timestamps
}

type CreateLeadRequest struct {
	Name   string `json:"name" validate:"required"`
	Text   string `json:"text"`
	Phone  string `json:"phone"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,lead_status"`
}

type UpdateLeadRequest struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Status   string `json:"status" validate:"omitempty,lead_status"`
	IsActive *bool  `json:"isActive"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,lead_status"`
}

type Notification struct {
	ID       string `db:"id" json:"_id"`
	Message  string `db:"message" json:"message"`
	SenderID string `db:"sender_id" json:"sender,omitempty"`
	Timestamps
}

type NotificationRequest struct {
	Message string `json:"message" validate:"required"`
}
