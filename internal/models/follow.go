package models

import "time"

// Follow is a directed edge in the social graph: follower follows followee.
// Both directions of the relation ("a follows b" and "b is followed by a")
// are projections of this single row, so follower/following symmetry can
// never be observed half-applied. The composite unique index gives the edge
// set semantics at the storage layer.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_edge;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}

// FollowState is the result of a follow toggle.
type FollowState struct {
	Following      bool  `json:"following"`
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}
