package models

import "time"

// MaxCommentLen bounds the comment text length.
const MaxCommentLen = 1000

// Comment represents a comment on a post. Comments are append-only and
// listed in creation order.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Text      string    `gorm:"size:1000;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
