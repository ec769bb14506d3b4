// Package repository implements the data access layer for the application.
package repository

import (
	"context"

	"aperture/internal/cache"
	"aperture/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence operations on the follow graph.
// An edge is a single row, so both directions of the relation are always
// updated together; Follow and Unfollow are atomic set operations.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followeeID uint) (created bool, err error)
	Unfollow(ctx context.Context, followerID, followeeID uint) (removed bool, err error)
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
	ListFollowers(ctx context.Context, userID uint) ([]models.User, error)
	ListFollowing(ctx context.Context, userID uint) ([]models.User, error)
	ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	// Conflict-ignoring insert keeps the edge a set even under concurrent
	// toggles; RowsAffected == 0 means the edge already existed.
	edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followee_id"}},
			DoNothing: true,
		}).
		Create(&edge)
	if res.Error != nil {
		return false, storeError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateUser(ctx, followerID)
		cache.InvalidateUser(ctx, followeeID)
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, storeError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateUser(ctx, followerID)
		cache.InvalidateUser(ctx, followeeID)
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, storeError(err)
	}
	return count > 0, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, storeError(err)
	}
	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, storeError(err)
	}
	return count, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.follower_id").
		Where("f.followee_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	users := make([]models.User, 0)
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.followee_id").
		Where("f.follower_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, storeError(err)
	}
	return ids, nil
}
