package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxCaptionLen bounds the post caption length.
const MaxCaptionLen = 2200

// Post represents a photo post in the Aperture application.
type Post struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	UserID   uint     `gorm:"not null;index:idx_posts_author_created,priority:1" json:"user_id"`
	User     User     `gorm:"foreignKey:UserID" json:"user"`
	ImageURL string   `gorm:"not null" json:"image_url"`
	Caption  string   `gorm:"size:2200" json:"caption"`
	Location string   `json:"location"`
	Tags     []string `gorm:"serializer:json" json:"tags"`
	// LikesCount is not persisted; computed at query time
	LikesCount int64 `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int64 `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `gorm:"index:idx_posts_author_created,priority:2" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// LikeState is the result of a like toggle.
type LikeState struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// FeedPage is one page of the home feed.
type FeedPage struct {
	Posts       []*Post `json:"posts"`
	TotalPages  int     `json:"total_pages"`
	CurrentPage int     `json:"current_page"`
}
